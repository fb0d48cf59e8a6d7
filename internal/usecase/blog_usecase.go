package usecase

import (
	"context"
	"time"

	"blogd/internal/domain/entity"
)

// --- Input DTOs ---

// CreatePostInput defines the draft for a new blog post. Timestamps are
// optional; the service assigns them when absent.
type CreatePostInput struct {
	Title     string
	Content   string
	AuthorID  string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// UpdatePostInput is a partial update: nil fields are left untouched.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	AuthorID  *string
	UpdatedAt *time.Time
}

// CreateCommentInput defines the draft for a new comment. The referenced post
// must exist at creation time.
type CreateCommentInput struct {
	PostID    string
	Content   string
	AuthorID  string
	CreatedAt *time.Time
}

// UpdateCommentInput is a partial update: nil fields are left untouched.
type UpdateCommentInput struct {
	Content  *string
	AuthorID *string
}

// --- Output DTOs ---

// PostView is the public projection of a blog post.
type PostView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostView projects a post entity into its public view.
func NewPostView(post *entity.BlogPost) *PostView {
	if post == nil {
		return nil
	}

	return &PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// CommentView is the public projection of a comment.
type CommentView struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCommentView projects a comment entity into its public view.
func NewCommentView(comment *entity.Comment) *CommentView {
	if comment == nil {
		return nil
	}

	return &CommentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}
}

// BlogUsecase defines the interface for post and comment operations.
type BlogUsecase interface {
	CreatePost(ctx context.Context, input *CreatePostInput) (*PostView, error)
	ListPosts(ctx context.Context) ([]*PostView, error)
	GetPost(ctx context.Context, id string) (*PostView, error)
	UpdatePost(ctx context.Context, id string, input *UpdatePostInput) (*PostView, error)
	DeletePost(ctx context.Context, id string) error

	CreateComment(ctx context.Context, input *CreateCommentInput) (*CommentView, error)
	ListComments(ctx context.Context, postID string) ([]*CommentView, error)
	GetComment(ctx context.Context, id string) (*CommentView, error)
	UpdateComment(ctx context.Context, id string, input *UpdateCommentInput) (*CommentView, error)
	DeleteComment(ctx context.Context, id string) error
}
