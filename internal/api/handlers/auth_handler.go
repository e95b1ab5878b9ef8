package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/inkpost/inkpost-be/internal/validation"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupPayload defines the structure for registration requests.
type SignupPayload struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Check(payload); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	token, err := h.service.Signup(r.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeMessage(w, http.StatusConflict, "Email already in use")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Check(payload); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
		writeMessage(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
