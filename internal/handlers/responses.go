package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imovelBack/internal/models"
)

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(successEnvelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorEnvelope{Success: false, Error: message})
}

// respondServiceError maps the model sentinels onto HTTP statuses. Unknown
// errors become opaque 500s so internals never leak to clients.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPropertyNotFound),
		errors.Is(err, models.ErrCompanyNotFound),
		errors.Is(err, models.ErrNoRecord):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrSessionNotFound):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, models.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicateLicense),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrUserHasRecords):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
