package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// ErrorCode returns the SQLSTATE carried by err, or an empty string when err did not come from the server.
func ErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
