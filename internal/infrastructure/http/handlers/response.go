// Package handlers provides HTTP handlers for the REST API and pages
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/moodrecipe/api/pkg/errors"
)

// APIResponse represents a standard API response envelope
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError translates an application error into its HTTP status and the
// standard error envelope. Unknown errors are logged and masked as 500.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		logger.Error("Unhandled error", zap.Error(err))
		appErr = apperrors.NewInternalError("Server error")
	} else if appErr.Code == apperrors.CodeInternal {
		logger.Error("Internal error", zap.Error(appErr))
	}

	writeJSON(w, logger, appErr.StatusCode(), APIResponse{
		Success: false,
		Error:   appErr.Message,
	})
}

// writeErrorMessage writes the standard error envelope with an explicit status
func writeErrorMessage(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, APIResponse{
		Success: false,
		Error:   message,
	})
}
