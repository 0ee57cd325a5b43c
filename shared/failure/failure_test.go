package failure_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"adscape/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("start_date is required")), wantCode: http.StatusBadRequest, wantMsg: "start_date is required"},
		{name: "bad request from string", err: failure.BadRequestFromString("invalid range"), wantCode: http.StatusBadRequest, wantMsg: "invalid range"},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantMsg: "booking not found"},
		{name: "conflict", err: failure.Conflict("billboard is not available"), wantCode: http.StatusConflict, wantMsg: "billboard is not available"},
		{name: "storage failure", err: failure.StorageFailure(sql.ErrConnDone), wantCode: http.StatusInternalServerError, wantMsg: "storage failure: " + sql.ErrConnDone.Error()},
		{name: "forbidden", err: failure.ForbiddenError, wantCode: http.StatusForbidden, wantMsg: "You don't have the required permissions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, failure.IsFailure(tt.err))
		})
	}
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.StorageFailure(nil))
}

func TestStorageFailureKeepsCause(t *testing.T) {
	err := failure.StorageFailure(sql.ErrTxDone)

	assert.ErrorIs(t, err, sql.ErrTxDone)
}

func TestWrapped(t *testing.T) {
	err := fmt.Errorf("cancel booking: %w", failure.Conflict("booking already cancelled"))

	assert.True(t, failure.IsFailure(err))
	assert.True(t, failure.HasCode(err, http.StatusConflict))
	assert.False(t, failure.HasCode(err, http.StatusNotFound))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestPlainErrors(t *testing.T) {
	err := errors.New("connection refused")

	assert.False(t, failure.IsFailure(err))
	assert.False(t, failure.HasCode(err, http.StatusInternalServerError))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
