package models

import "time"

// Post represents a content record owned by a single user.
type Post struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	IsDraft     bool       `json:"isDraft"`
	IsPublic    bool       `json:"isPublic"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ExternallyReadable reports whether anonymous callers may read the post.
// Visibility is derived from the two flags, never stored on its own.
func (p Post) ExternallyReadable() bool {
	return p.IsPublic && !p.IsDraft
}

// PostUpdate carries a partial update. Nil fields leave the stored value
// unchanged; a non-nil pointer is applied even when it points at an empty
// string or false.
type PostUpdate struct {
	Title       *string
	Content     *string
	IsDraft     *bool
	IsPublic    *bool
	ScheduledAt *time.Time
}
