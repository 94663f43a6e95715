package server

import (
	"encoding/json"
	"net/http"

	"bizforge/internal/common/errors"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError maps a StandardError onto an HTTP status and JSON body.
func respondError(w http.ResponseWriter, err error) {
	stdErr := errors.AsStandardError(err)
	respondJSON(w, statusFor(stdErr.Code), map[string]interface{}{
		"error":     stdErr.Message,
		"code":      stdErr.Code,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})
}

func respondBadRequest(w http.ResponseWriter, message string, err error) {
	body := map[string]interface{}{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	respondJSON(w, http.StatusBadRequest, body)
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeProfileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeProfileValidationFailed:
		return http.StatusBadRequest
	case errors.ErrCodeDeployTokenMissing:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
