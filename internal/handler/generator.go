package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const maxBodyBytes = 1 << 16 // 64KB

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
// An empty body generates with saved preferences or the defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	if prefs, ok := middleware.PreferencesFromContext(r.Context()); ok {
		req = service.ApplyPreferences(req, prefs)
	}
	req.ClientAddr = middleware.ClientIP(r)

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// HandleScore handles POST /api/v1/score requests.
func (h *GeneratorHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Score(req))
}

// HandleStats handles GET /api/v1/stats requests.
func (h *GeneratorHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Stats(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrStatsUnavailable) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrLengthOutOfRange) ||
		errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrInvalidConfiguration)
}

// decodeJSON reads a size-limited JSON body into v, writing an error response
// and returning false on failure. allowEmpty accepts a missing body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if r.Body == nil {
		if allowEmpty {
			return true
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF) && allowEmpty:
			return true
		case errors.As(err, &tooLarge):
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		}
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
