package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/inkpost/inkpost-be/internal/storage"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog/log"
)

// SavePostInput is the input for a manual save. Nil flags take the save
// defaults: not a draft, publicly visible.
type SavePostInput struct {
	Title       string
	Content     string
	IsDraft     *bool
	IsPublic    *bool
	ScheduledAt *time.Time
}

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	Save(ctx context.Context, userID string, in SavePostInput) (models.Post, error)
	CreateDraft(ctx context.Context, userID, title, content string) (models.Post, error)
	GetPublicByID(ctx context.Context, id string) (models.Post, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Post, error)
	ListPublic(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id, callerID string, in models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, id, callerID string) error
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

// PostService enforces ownership and visibility policy on top of the post
// store.
type PostService struct {
	posts     storage.PostStore
	sanitizer *bluemonday.Policy
}

// NewPostService creates a new PostService.
func NewPostService(posts storage.PostStore) *PostService {
	return &PostService{
		posts:     posts,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Save creates a new post owned by userID. The content is sanitized
// against HTML/script injection before storage.
func (s *PostService) Save(ctx context.Context, userID string, in SavePostInput) (models.Post, error) {
	isDraft := false
	if in.IsDraft != nil {
		isDraft = *in.IsDraft
	}
	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       in.Title,
		Content:     s.sanitizer.Sanitize(in.Content),
		IsDraft:     isDraft,
		IsPublic:    isPublic,
		ScheduledAt: in.ScheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// CreateDraft creates an unpublished draft owned by userID. Used by the
// generation flow: generated content is never auto-published, regardless of
// anything the caller supplied.
func (s *PostService) CreateDraft(ctx context.Context, userID, title, content string) (models.Post, error) {
	now := time.Now().UTC()
	post := models.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		IsDraft:   true,
		IsPublic:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("create draft: %w", err)
	}
	return post, nil
}

// GetPublicByID fetches a post for an anonymous reader. Drafts and private
// posts are reported as not found: callers cannot tell "hidden" apart from
// "absent".
func (s *PostService) GetPublicByID(ctx context.Context, id string) (models.Post, error) {
	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("find post: %w", err)
	}
	if !post.ExternallyReadable() {
		return models.Post{}, ErrNotFound
	}
	return post, nil
}

// ListByOwner returns every post owned by userID, drafts included, newest
// first.
func (s *PostService) ListByOwner(ctx context.Context, userID string) ([]models.Post, error) {
	return s.posts.ListPostsByOwner(ctx, userID)
}

// ListPublic returns every externally readable post, newest first.
func (s *PostService) ListPublic(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListPublicPosts(ctx)
}

// Update applies a partial update to a post owned by callerID. Fields left
// nil keep their stored values; supplied empty strings and explicit false
// are applied. The last-modified timestamp always advances.
func (s *PostService) Update(ctx context.Context, id, callerID string, in models.PostUpdate) (models.Post, error) {
	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("find post: %w", err)
	}

	if post.UserID != callerID {
		return models.Post{}, ErrForbidden
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = s.sanitizer.Sanitize(*in.Content)
	}
	if in.IsDraft != nil {
		post.IsDraft = *in.IsDraft
	}
	if in.IsPublic != nil {
		post.IsPublic = *in.IsPublic
	}
	if in.ScheduledAt != nil {
		post.ScheduledAt = in.ScheduledAt
	}
	post.UpdatedAt = time.Now().UTC()

	// The write is keyed on both id and owner so it only lands on the same
	// row the ownership check saw.
	if err := s.posts.UpdatePostOwned(ctx, id, callerID, post); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, fmt.Errorf("update post: %w", err)
	}
	return post, nil
}

// Delete permanently removes a post owned by callerID.
func (s *PostService) Delete(ctx context.Context, id, callerID string) error {
	post, err := s.posts.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.UserID != callerID {
		return ErrForbidden
	}

	if err := s.posts.DeletePostOwned(ctx, id, callerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// PublishDue promotes every post whose schedule has passed to published
// state. Returns the number of posts promoted.
func (s *PostService) PublishDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.posts.ListDueScheduled(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("list due posts: %w", err)
	}

	published := 0
	for _, post := range due {
		if err := s.posts.PublishScheduled(ctx, post.ID, now); err != nil {
			// A concurrently deleted post is not an error worth surfacing.
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return published, fmt.Errorf("publish post %s: %w", post.ID, err)
		}
		log.Info().Str("post_id", post.ID).Str("user_id", post.UserID).Msg("Published scheduled post")
		published++
	}
	return published, nil
}
