package repository

import (
	"context"
	"errors"

	"blogd/internal/domain/entity"
)

// ErrPostNotFound is returned when no post matches the given id.
var ErrPostNotFound = errors.New("post not found")

// ErrMalformedID is returned when an identifier cannot be parsed by the store.
var ErrMalformedID = errors.New("malformed object id")

// ErrNoChange is returned when an update produced no field delta.
var ErrNoChange = errors.New("update produced no change")

// PostRepository defines the standard operations for blog post persistence.
type PostRepository interface {
	// Create persists a new post and fills in its store-assigned id.
	Create(ctx context.Context, post *entity.BlogPost) error

	// FindAll retrieves every post in store-native order.
	FindAll(ctx context.Context) ([]*entity.BlogPost, error)

	// FindByID retrieves a single post by its hex id.
	FindByID(ctx context.Context, id string) (*entity.BlogPost, error)

	// Update applies a partial update and returns the resulting post.
	Update(ctx context.Context, id string, update *entity.PostUpdate) (*entity.BlogPost, error)

	// Delete removes a post. Its comments are left in place.
	Delete(ctx context.Context, id string) error
}
