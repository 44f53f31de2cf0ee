package config

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode JSON response")
	}
}

// Error writes the failure envelope for status, using the standard status text as message.
func Error(w http.ResponseWriter, status int) {
	JSON(w, status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: http.StatusText(status),
	})
}

func BadRequest(w http.ResponseWriter)          { Error(w, http.StatusBadRequest) }
func NotFound(w http.ResponseWriter)            { Error(w, http.StatusNotFound) }
func UnprocessableEntity(w http.ResponseWriter) { Error(w, http.StatusUnprocessableEntity) }
func InternalServerError(w http.ResponseWriter) { Error(w, http.StatusInternalServerError) }
