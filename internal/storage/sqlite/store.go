package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/inkpost/inkpost-be/internal/models"
	"github.com/inkpost/inkpost-be/internal/storage"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore = (*Store)(nil)
	_ storage.PostStore = (*Store)(nil)
)

// Store provides SQLite-backed persistence for users and posts.
type Store struct {
	db *sql.DB
}

// New creates a Store on top of an open database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts a new user. Returns storage.ErrAlreadyExists when the
// email is already registered.
func (s *Store) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(id, name, email, password_hash, created_at) VALUES(?, ?, ?, ?, ?)",
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt.UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindUserByID retrieves a single user by ID.
func (s *Store) FindUserByID(ctx context.Context, id string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?", id)
	return scanUser(row)
}

// FindUserByEmail retrieves a single user by email, including the password
// hash for credential verification.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

const postColumns = "id, user_id, title, content, is_draft, is_public, scheduled_at, created_at, updated_at"

// CreatePost inserts a new post row.
func (s *Store) CreatePost(ctx context.Context, post models.Post) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO posts("+postColumns+") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)",
		post.ID, post.UserID, post.Title, post.Content, post.IsDraft, post.IsPublic,
		nullableTime(post.ScheduledAt), post.CreatedAt.UTC(), post.UpdatedAt.UTC(),
	)
	return err
}

// FindPostByID retrieves a single post by ID regardless of visibility.
func (s *Store) FindPostByID(ctx context.Context, id string) (models.Post, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE id = ?", id)

	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Post{}, storage.ErrNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}

// ListPostsByOwner returns all posts owned by userID, newest first.
func (s *Store) ListPostsByOwner(ctx context.Context, userID string) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

// ListPublicPosts returns every externally readable post, newest first.
func (s *Store) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts WHERE is_public = 1 AND is_draft = 0 ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

// UpdatePostOwned writes the post row keyed on both id and owner.
func (s *Store) UpdatePostOwned(ctx context.Context, id, userID string, post models.Post) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, is_draft = ?, is_public = ?, scheduled_at = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		post.Title, post.Content, post.IsDraft, post.IsPublic,
		nullableTime(post.ScheduledAt), post.UpdatedAt.UTC(), id, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeletePostOwned removes the post row keyed on both id and owner.
func (s *Store) DeletePostOwned(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM posts WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListDueScheduled returns unpublished posts whose schedule has passed.
func (s *Store) ListDueScheduled(ctx context.Context, now time.Time) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+postColumns+` FROM posts
		 WHERE scheduled_at IS NOT NULL AND scheduled_at <= ? AND (is_draft = 1 OR is_public = 0)`,
		now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPosts(rows)
}

// PublishScheduled promotes a due post to published state.
func (s *Store) PublishScheduled(ctx context.Context, id string, now time.Time) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE posts SET is_draft = 0, is_public = 1, scheduled_at = NULL, updated_at = ? WHERE id = ?",
		now.UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var scheduledAt sql.NullTime
	err := row.Scan(
		&post.ID, &post.UserID, &post.Title, &post.Content,
		&post.IsDraft, &post.IsPublic, &scheduledAt, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return models.Post{}, err
	}
	if scheduledAt.Valid {
		t := scheduledAt.Time
		post.ScheduledAt = &t
	}
	return post, nil
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
