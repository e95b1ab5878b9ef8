package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/inkpost/inkpost-be/internal/auth"
	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/inkpost/inkpost-be/internal/services"
	"github.com/inkpost/inkpost-be/internal/validation"
	"github.com/rs/zerolog/log"
)

// PostHandler handles HTTP requests for post management.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// SavePayload defines the structure for manual save requests.
type SavePayload struct {
	Title       string     `json:"title" validate:"required,min=3"`
	Content     string     `json:"content" validate:"required,min=10"`
	IsDraft     *bool      `json:"isDraft"`
	IsPublic    *bool      `json:"isPublic"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// UpdatePayload defines the structure for partial update requests. Absent
// fields keep their stored values; supplied empty or false values are
// applied.
type UpdatePayload struct {
	Title       *string    `json:"title" validate:"omitempty,min=3"`
	Content     *string    `json:"content" validate:"omitempty,min=10"`
	IsDraft     *bool      `json:"isDraft"`
	IsPublic    *bool      `json:"isPublic"`
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// Save handles the request to create a post from caller-supplied content.
func (h *PostHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	var payload SavePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Check(payload); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	post, err := h.service.Save(r.Context(), userID, services.SavePostInput{
		Title:       payload.Title,
		Content:     payload.Content,
		IsDraft:     payload.IsDraft,
		IsPublic:    payload.IsPublic,
		ScheduledAt: payload.ScheduledAt,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save post")
		writeMessage(w, http.StatusInternalServerError, "Failed to save post")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"post": post})
}

// GetUserPosts returns every post owned by the authenticated caller,
// drafts included.
func (h *PostHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	posts, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list user posts")
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// GetPublicPosts returns every externally readable post.
func (h *PostHandler) GetPublicPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPublic(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch public posts")
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch public posts")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

// GetByID returns a single post to an anonymous reader. Hidden posts are
// indistinguishable from missing ones.
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.service.GetPublicByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		log.Error().Err(err).Str("post_id", id).Msg("Failed to fetch post")
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": post})
}

// Update handles a partial update of a post by its owner.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}
	id := chi.URLParam(r, "id")

	var payload UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validation.Check(payload); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	post, err := h.service.Update(r.Context(), id, userID, models.PostUpdate{
		Title:       payload.Title,
		Content:     payload.Content,
		IsDraft:     payload.IsDraft,
		IsPublic:    payload.IsPublic,
		ScheduledAt: payload.ScheduledAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrForbidden):
			writeMessage(w, http.StatusForbidden, "Unauthorized: You cannot edit this post")
		default:
			log.Error().Err(err).Str("post_id", id).Msg("Failed to update post")
			writeMessage(w, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// Delete handles the permanent deletion of a post by its owner.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, services.ErrForbidden):
			writeMessage(w, http.StatusForbidden, "Unauthorized: You cannot delete this post")
		default:
			log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
			writeMessage(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	writeMessage(w, http.StatusOK, "Post deleted successfully")
}
