package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/inkpost/inkpost-be/internal/validation"
	"github.com/rs/zerolog/log"
)

// GenerateHandler handles AI draft generation requests.
type GenerateHandler struct {
	service services.GenerateServiceProvider
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(service services.GenerateServiceProvider) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// GeneratePayload defines the structure for generation requests.
type GeneratePayload struct {
	Topic string `json:"topic" validate:"required,min=3"`
	Style string `json:"style" validate:"required,min=3"`
}

// Generate produces an AI-written draft for the authenticated caller.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	var payload GeneratePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Check(payload); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	post, err := h.service.GenerateDraft(r.Context(), userID, payload.Topic, payload.Style)
	if err != nil {
		if errors.Is(err, services.ErrGenerationFailed) {
			writeMessage(w, http.StatusInternalServerError, "Error generating content, please try again")
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to persist generated draft")
		writeMessage(w, http.StatusInternalServerError, "Failed to save generated draft")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}
