package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/chartstyle/pkg/errors"
)

type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps error codes to HTTP status codes. Configuration mistakes
// are the client's; everything unclassified is a server error.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnknownPalette, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDuplicateColumnKey,
		errors.ErrCodeMissingColumnStyle,
		errors.ErrCodeStyleCallback,
		errors.ErrCodeUnknownColumn,
		errors.ErrCodeInvalidConfig:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidColumn,
		errors.ErrCodeInvalidPalette:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorBody{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeBytes(w, status, "application/json", append(data, '\n'))
}

func writeBytes(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
