package handler

import (
	"net/http"
	"time"

	"blogd/internal/delivery/http/response"
	"blogd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createPostRequest is the JSON draft for a new post. Timestamps are optional
// and default server-side.
type createPostRequest struct {
	Title     string     `json:"title" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	AuthorID  string     `json:"author_id"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// updatePostRequest is a partial update; absent fields are left untouched.
type updatePostRequest struct {
	Title     *string    `json:"title"`
	Content   *string    `json:"content"`
	AuthorID  *string    `json:"author_id"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type createCommentRequest struct {
	PostID    string     `json:"post_id" validate:"required"`
	Content   string     `json:"content" validate:"required"`
	AuthorID  string     `json:"author_id"`
	CreatedAt *time.Time `json:"created_at"`
}

type updateCommentRequest struct {
	Content  *string `json:"content"`
	AuthorID *string `json:"author_id"`
}

// BlogHandler holds dependencies for post and comment handlers.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(blogUC usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{blogUC: blogUC}
}

// CreatePost handles the post creation request.
func (h *BlogHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post draft")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.blogUC.CreatePost(c.Request().Context(), &usecase.CreatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Post created successfully")
}

// ListPosts returns every post.
func (h *BlogHandler) ListPosts(c echo.Context) error {
	views, err := h.blogUC.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetPost returns a single post by id.
func (h *BlogHandler) GetPost(c echo.Context) error {
	view, err := h.blogUC.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdatePost applies a partial update to a post.
func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post update")
	}

	view, err := h.blogUC.UpdatePost(c.Request().Context(), c.Param("id"), &usecase.UpdatePostInput{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		UpdatedAt: req.UpdatedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Post updated successfully")
}

// DeletePost removes a post by id.
func (h *BlogHandler) DeletePost(c echo.Context) error {
	if err := h.blogUC.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Post deleted successfully")
}

// CreateComment handles the comment creation request.
func (h *BlogHandler) CreateComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment draft")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.blogUC.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		PostID:    req.PostID,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Comment created successfully")
}

// ListComments returns the comments referencing the post named by ?post_id=.
func (h *BlogHandler) ListComments(c echo.Context) error {
	postID := c.QueryParam("post_id")
	if postID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "post_id query parameter is required")
	}

	views, err := h.blogUC.ListComments(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "")
}

// GetComment returns a single comment by id.
func (h *BlogHandler) GetComment(c echo.Context) error {
	view, err := h.blogUC.GetComment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateComment applies a partial update to a comment.
func (h *BlogHandler) UpdateComment(c echo.Context) error {
	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment update")
	}

	view, err := h.blogUC.UpdateComment(c.Request().Context(), c.Param("id"), &usecase.UpdateCommentInput{
		Content:  req.Content,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Comment updated successfully")
}

// DeleteComment removes a comment by id.
func (h *BlogHandler) DeleteComment(c echo.Context) error {
	if err := h.blogUC.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
