package response

import (
	"encoding/json"
	"net/http"

	"adscape/shared/constant"
	"adscape/shared/failure"

	"github.com/rs/zerolog/log"
)

const messageInternalError = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON wraps payload in a {"data": ...} envelope.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the status carried by a failure. Anything else is reported as a
// 500 without leaking its text.
func WithError(writer http.ResponseWriter, err error) {
	msg := err.Error()
	if !failure.IsFailure(err) {
		msg = messageInternalError
	}

	write(writer, failure.GetCode(err), Error{Error: &msg})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Int("status", code).Msg("failed to encode response")

		code = http.StatusInternalServerError
		body = []byte(`{"error":"` + messageInternalError + `"}`)
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		log.Debug().Err(err).Msg("client went away before the response was written")
	}
}
