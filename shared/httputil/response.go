// Package httputil holds the JSON request and response helpers used by the HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse is a body carrying only a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, logger *zerolog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// WriteError writes an ErrorResponse with the given status code.
func WriteError(w http.ResponseWriter, logger *zerolog.Logger, status int, message string) {
	WriteJSON(w, logger, status, ErrorResponse{Error: message})
}

// WriteInternalError logs err and writes a generic 500 response.
func WriteInternalError(w http.ResponseWriter, logger *zerolog.Logger, err error, msg string) {
	if logger != nil {
		logger.Error().Err(err).Msg(msg)
	}
	WriteError(w, logger, http.StatusInternalServerError, "something went wrong")
}

// WriteValidationError writes a 400 for a failed payload validation.
// Errors other than *validator.ValidationError are treated as internal.
func WriteValidationError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	var verr *validator.ValidationError
	if !errors.As(err, &verr) {
		WriteInternalError(w, logger, err, "failed to validate request")
		return
	}

	WriteJSON(w, logger, http.StatusBadRequest, ErrorResponse{
		Error:  verr.Error(),
		Fields: verr.Fields,
	})
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst untouched.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	return nil
}
