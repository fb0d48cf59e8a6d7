package entity

import "time"

// BlogPost is a published article. UpdatedAt starts equal to CreatedAt and
// refreshes on every mutation.
type BlogPost struct {
	ID        string // Store-assigned identifier (hex).
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment belongs to a BlogPost. The referenced post must exist when the
// comment is created; it is not re-checked afterwards, so deleting a post
// orphans its comments.
type Comment struct {
	ID        string // Store-assigned identifier (hex).
	PostID    string // Hex id of the referenced BlogPost.
	Content   string
	AuthorID  string
	CreatedAt time.Time
}

// PostUpdate is a partial update: nil fields are left untouched.
type PostUpdate struct {
	Title     *string
	Content   *string
	AuthorID  *string
	UpdatedAt *time.Time
}

// IsEmpty reports whether the update carries no caller-provided fields.
func (u *PostUpdate) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Content == nil && u.AuthorID == nil && u.UpdatedAt == nil)
}

// CommentUpdate is a partial update: nil fields are left untouched.
type CommentUpdate struct {
	Content  *string
	AuthorID *string
}

// IsEmpty reports whether the update carries no caller-provided fields.
func (u *CommentUpdate) IsEmpty() bool {
	return u == nil || (u.Content == nil && u.AuthorID == nil)
}
