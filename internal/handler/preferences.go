package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// PreferencesHandler handles HTTP requests for saved generator settings.
type PreferencesHandler struct {
	service *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(svc *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: svc}
}

// HandleSave handles POST /api/v1/preferences requests.
func (h *PreferencesHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	var req model.Preferences
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Save(req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrSecretRequired):
			writeJSON(w, http.StatusServiceUnavailable, errorResponse("preferences are disabled"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
