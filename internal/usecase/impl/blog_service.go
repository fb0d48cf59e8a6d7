package impl

import (
	"context"
	"time"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	"blogd/internal/errors"
	"blogd/internal/usecase"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewBlogService creates a new blog service instance.
func NewBlogService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) usecase.BlogUsecase {
	return &blogService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost persists a new post. created_at defaults to now; updated_at
// starts equal to created_at unless the draft supplies one.
func (s *blogService) CreatePost(ctx context.Context, input *usecase.CreatePostInput) (*usecase.PostView, error) {
	createdAt := time.Now().UTC()
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}

	updatedAt := createdAt
	if input.UpdatedAt != nil {
		updatedAt = *input.UpdatedAt
	}

	post := &entity.BlogPost{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	return usecase.NewPostView(post), nil
}

// ListPosts returns all posts in store-native order.
func (s *blogService) ListPosts(ctx context.Context) ([]*usecase.PostView, error) {
	posts, err := s.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, usecase.NewPostView(post))
	}

	return views, nil
}

// GetPost retrieves a single post by id.
func (s *blogService) GetPost(ctx context.Context, id string) (*usecase.PostView, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapPostError(err, "failed to get post")
	}

	return usecase.NewPostView(post), nil
}

// UpdatePost applies only the provided fields. updated_at is refreshed unless
// the caller supplies one. A partial with no fields at all is a no-change
// client error, not a success.
func (s *blogService) UpdatePost(ctx context.Context, id string, input *usecase.UpdatePostInput) (*usecase.PostView, error) {
	if input == nil {
		return nil, domainerrors.ErrNoChange.WrapMessage("empty update for post")
	}

	update := &entity.PostUpdate{
		Title:     input.Title,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		UpdatedAt: input.UpdatedAt,
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrNoChange.WrapMessage("empty update for post")
	}

	if update.UpdatedAt == nil {
		updatedAt := time.Now().UTC()
		update.UpdatedAt = &updatedAt
	}

	post, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		return nil, mapPostError(err, "failed to update post")
	}

	return usecase.NewPostView(post), nil
}

// DeletePost removes a post. Its comments are orphaned, not cascaded:
// referential integrity is only checked at comment creation time.
func (s *blogService) DeletePost(ctx context.Context, id string) error {
	if err := s.postRepo.Delete(ctx, id); err != nil {
		return mapPostError(err, "failed to delete post")
	}

	return nil
}

// CreateComment persists a new comment after checking the referenced post
// exists. The check happens only here; a later post deletion leaves the
// comment dangling.
func (s *blogService) CreateComment(ctx context.Context, input *usecase.CreateCommentInput) (*usecase.CommentView, error) {
	if _, err := s.postRepo.FindByID(ctx, input.PostID); err != nil {
		return nil, mapPostError(err, "failed to verify post for comment")
	}

	createdAt := time.Now().UTC()
	if input.CreatedAt != nil {
		createdAt = *input.CreatedAt
	}

	comment := &entity.Comment{
		PostID:    input.PostID,
		Content:   input.Content,
		AuthorID:  input.AuthorID,
		CreatedAt: createdAt,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	return usecase.NewCommentView(comment), nil
}

// ListComments returns all comments referencing a post.
func (s *blogService) ListComments(ctx context.Context, postID string) ([]*usecase.CommentView, error) {
	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	views := make([]*usecase.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, usecase.NewCommentView(comment))
	}

	return views, nil
}

// GetComment retrieves a single comment by id.
func (s *blogService) GetComment(ctx context.Context, id string) (*usecase.CommentView, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCommentError(err, "failed to get comment")
	}

	return usecase.NewCommentView(comment), nil
}

// UpdateComment mirrors post update semantics. Comments carry no updated_at.
func (s *blogService) UpdateComment(ctx context.Context, id string, input *usecase.UpdateCommentInput) (*usecase.CommentView, error) {
	if input == nil {
		return nil, domainerrors.ErrNoChange.WrapMessage("empty update for comment")
	}

	update := &entity.CommentUpdate{
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrNoChange.WrapMessage("empty update for comment")
	}

	comment, err := s.commentRepo.Update(ctx, id, update)
	if err != nil {
		return nil, mapCommentError(err, "failed to update comment")
	}

	return usecase.NewCommentView(comment), nil
}

// DeleteComment removes a comment.
func (s *blogService) DeleteComment(ctx context.Context, id string) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return mapCommentError(err, "failed to delete comment")
	}

	return nil
}

// mapPostError converts repository sentinels into client-facing error kinds;
// anything else stays an internal store failure.
func mapPostError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrMalformedID):
		return domainerrors.ErrMalformedID.WrapMessage(message)
	case errors.Is(err, repository.ErrPostNotFound):
		return domainerrors.ErrPostNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrNoChange):
		return domainerrors.ErrNoChange.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}

// mapCommentError mirrors mapPostError for the comment aggregate.
func mapCommentError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrMalformedID):
		return domainerrors.ErrMalformedID.WrapMessage(message)
	case errors.Is(err, repository.ErrCommentNotFound):
		return domainerrors.ErrCommentNotFound.WrapMessage(message)
	case errors.Is(err, repository.ErrNoChange):
		return domainerrors.ErrNoChange.WrapMessage(message)
	default:
		return errors.Wrap(err, message)
	}
}
