package repository

import (
	"context"
	"errors"

	"blogd/internal/domain/entity"
)

// ErrCommentNotFound is returned when no comment matches the given id.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment and fills in its store-assigned id.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByPostID retrieves all comments referencing the given post.
	FindByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)

	// FindByID retrieves a single comment by its hex id.
	FindByID(ctx context.Context, id string) (*entity.Comment, error)

	// Update applies a partial update and returns the resulting comment.
	Update(ctx context.Context, id string, update *entity.CommentUpdate) (*entity.Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id string) error
}
