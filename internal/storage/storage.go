package storage

import (
	"context"
	"errors"
	"time"

	"github.com/inkpost/inkpost-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by the services.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// PostStore captures post persistence operations. All list operations
// return posts ordered by creation time, newest first.
type PostStore interface {
	CreatePost(ctx context.Context, post models.Post) error
	FindPostByID(ctx context.Context, id string) (models.Post, error)
	ListPostsByOwner(ctx context.Context, userID string) ([]models.Post, error)
	ListPublicPosts(ctx context.Context) ([]models.Post, error)

	// UpdatePostOwned writes the full post row conditional on both id and
	// owner, so the ownership check and the mutation hit a single
	// consistent row. Returns ErrNotFound when no such row matched.
	UpdatePostOwned(ctx context.Context, id, userID string, post models.Post) error

	// DeletePostOwned removes the row conditional on both id and owner.
	DeletePostOwned(ctx context.Context, id, userID string) error

	// ListDueScheduled returns unpublished posts whose scheduled_at is at
	// or before now.
	ListDueScheduled(ctx context.Context, now time.Time) ([]models.Post, error)

	// PublishScheduled flips a due post to published state and clears its
	// schedule.
	PublishScheduled(ctx context.Context, id string, now time.Time) error
}
