package impl

import (
	"context"
	"testing"
	"time"

	"blogd/internal/domain/entity"
	domainerrors "blogd/internal/domain/errors"
	"blogd/internal/domain/repository"
	mockRepo "blogd/internal/mocks/repository"
	"blogd/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPostID    = "68a1f0c2b7e4d9a3c5f10234"
	testCommentID = "68a1f0c2b7e4d9a3c5f10235"
	zeroObjectID  = "000000000000000000000000"
)

type blogServiceFixtures struct {
	service     usecase.BlogUsecase
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	service := NewBlogService(postRepo, commentRepo)

	return blogServiceFixtures{
		service:     service,
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func strPtr(s string) *string { return &s }

func TestBlogService_CreatePost_DefaultsTimestamps(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	before := time.Now().UTC()

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BlogPost")).
		Run(func(_ context.Context, post *entity.BlogPost) {
			post.ID = testPostID
		}).
		Return(nil)

	view, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
		Title:    "First",
		Content:  "hello",
		AuthorID: "alice",
	})
	require.NoError(t, err)
	assert.Equal(t, testPostID, view.ID)
	assert.False(t, view.CreatedAt.Before(before))
	// An unedited post reports the same instant for both timestamps.
	assert.Equal(t, view.CreatedAt, view.UpdatedAt)
}

func TestBlogService_CreatePost_ExplicitTimestamps(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BlogPost")).
		Return(nil)

	view, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{
		Title:     "Dated",
		Content:   "hello",
		AuthorID:  "alice",
		CreatedAt: &createdAt,
		UpdatedAt: &updatedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, createdAt, view.CreatedAt)
	assert.Equal(t, updatedAt, view.UpdatedAt)
}

func TestBlogService_CreatePost_StoreError(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BlogPost")).
		Return(errors.New("write concern failed"))

	view, err := fx.service.CreatePost(ctx, &usecase.CreatePostInput{Title: "x"})
	assert.Nil(t, view)
	assert.Contains(t, err.Error(), "failed to create post")
}

func TestBlogService_ListPosts(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	posts := []*entity.BlogPost{
		{ID: testPostID, Title: "one"},
		{ID: testCommentID, Title: "two"},
	}

	fx.postRepo.EXPECT().
		FindAll(ctx).
		Return(posts, nil)

	views, err := fx.service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "one", views[0].Title)
	assert.Equal(t, "two", views[1].Title)
}

func TestBlogService_ListPosts_Empty(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.BlogPost{}, nil)

	views, err := fx.service.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.NotNil(t, views)
}

func TestBlogService_GetPost_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindByID(ctx, testPostID).
		Return(nil, repository.ErrPostNotFound)

	view, err := fx.service.GetPost(ctx, testPostID)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

// Malformed ids are indistinguishable from missing documents at the API level.
func TestBlogService_GetPost_MalformedID(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindByID(ctx, "not-an-object-id").
		Return(nil, repository.ErrMalformedID)

	view, err := fx.service.GetPost(ctx, "not-an-object-id")
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedID)
}

func TestBlogService_UpdatePost_EmptyPartial(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	// An empty partial never reaches the store.
	view, err := fx.service.UpdatePost(ctx, testPostID, &usecase.UpdatePostInput{})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNoChange)

	view, err = fx.service.UpdatePost(ctx, testPostID, nil)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNoChange)
}

func TestBlogService_UpdatePost_RefreshesUpdatedAt(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	before := time.Now().UTC()

	fx.postRepo.EXPECT().
		Update(ctx, testPostID, mock.AnythingOfType("*entity.PostUpdate")).
		Run(func(_ context.Context, _ string, update *entity.PostUpdate) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "renamed", *update.Title)
			assert.Nil(t, update.Content)
			require.NotNil(t, update.UpdatedAt)
			assert.False(t, update.UpdatedAt.Before(before))
		}).
		Return(&entity.BlogPost{ID: testPostID, Title: "renamed"}, nil)

	view, err := fx.service.UpdatePost(ctx, testPostID, &usecase.UpdatePostInput{
		Title: strPtr("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", view.Title)
}

func TestBlogService_UpdatePost_NoEffectiveChange(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		Update(ctx, testPostID, mock.AnythingOfType("*entity.PostUpdate")).
		Return(nil, repository.ErrNoChange)

	view, err := fx.service.UpdatePost(ctx, testPostID, &usecase.UpdatePostInput{
		Title: strPtr("same title"),
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNoChange)
}

func TestBlogService_UpdatePost_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		Update(ctx, zeroObjectID, mock.AnythingOfType("*entity.PostUpdate")).
		Return(nil, repository.ErrPostNotFound)

	view, err := fx.service.UpdatePost(ctx, zeroObjectID, &usecase.UpdatePostInput{
		Title: strPtr("renamed"),
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestBlogService_DeletePost(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		Delete(ctx, testPostID).
		Return(nil)

	require.NoError(t, fx.service.DeletePost(ctx, testPostID))
}

func TestBlogService_DeletePost_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		Delete(ctx, testPostID).
		Return(repository.ErrPostNotFound)

	err := fx.service.DeletePost(ctx, testPostID)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestBlogService_CreateComment_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	before := time.Now().UTC()

	fx.postRepo.EXPECT().
		FindByID(ctx, testPostID).
		Return(&entity.BlogPost{ID: testPostID}, nil)

	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(_ context.Context, comment *entity.Comment) {
			comment.ID = testCommentID
			assert.Equal(t, testPostID, comment.PostID)
			assert.False(t, comment.CreatedAt.Before(before))
		}).
		Return(nil)

	view, err := fx.service.CreateComment(ctx, &usecase.CreateCommentInput{
		PostID:   testPostID,
		Content:  "nice post",
		AuthorID: "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, testCommentID, view.ID)
	assert.Equal(t, testPostID, view.PostID)
}

// The all-zero object id parses fine but matches no post, so commenting on it
// is a post-not-found, never a comment error.
func TestBlogService_CreateComment_PostMissing(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindByID(ctx, zeroObjectID).
		Return(nil, repository.ErrPostNotFound)

	view, err := fx.service.CreateComment(ctx, &usecase.CreateCommentInput{
		PostID:  zeroObjectID,
		Content: "into the void",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestBlogService_CreateComment_MalformedPostID(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindByID(ctx, "garbage").
		Return(nil, repository.ErrMalformedID)

	view, err := fx.service.CreateComment(ctx, &usecase.CreateCommentInput{
		PostID:  "garbage",
		Content: "into the void",
	})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedID)
}

func TestBlogService_ListComments(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	comments := []*entity.Comment{
		{ID: testCommentID, PostID: testPostID, Content: "first"},
	}

	fx.commentRepo.EXPECT().
		FindByPostID(ctx, testPostID).
		Return(comments, nil)

	views, err := fx.service.ListComments(ctx, testPostID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "first", views[0].Content)
}

func TestBlogService_GetComment_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.commentRepo.EXPECT().
		FindByID(ctx, testCommentID).
		Return(nil, repository.ErrCommentNotFound)

	view, err := fx.service.GetComment(ctx, testCommentID)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

func TestBlogService_UpdateComment_EmptyPartial(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	view, err := fx.service.UpdateComment(ctx, testCommentID, &usecase.UpdateCommentInput{})
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrNoChange)
}

func TestBlogService_UpdateComment_Success(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.commentRepo.EXPECT().
		Update(ctx, testCommentID, mock.AnythingOfType("*entity.CommentUpdate")).
		Run(func(_ context.Context, _ string, update *entity.CommentUpdate) {
			require.NotNil(t, update.Content)
			assert.Equal(t, "edited", *update.Content)
			assert.Nil(t, update.AuthorID)
		}).
		Return(&entity.Comment{ID: testCommentID, PostID: testPostID, Content: "edited"}, nil)

	view, err := fx.service.UpdateComment(ctx, testCommentID, &usecase.UpdateCommentInput{
		Content: strPtr("edited"),
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", view.Content)
}

func TestBlogService_DeleteComment_NotFound(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()

	fx.commentRepo.EXPECT().
		Delete(ctx, testCommentID).
		Return(repository.ErrCommentNotFound)

	err := fx.service.DeleteComment(ctx, testCommentID)
	assert.ErrorIs(t, err, domainerrors.ErrCommentNotFound)
}

// Store failures reported by the repository keep their error identity through
// the service's wrapping, so the delivery layer can map them to a 500.
func TestBlogService_GetPost_StoreFailureKeepsAppError(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	storeErr := domainerrors.NewDatabaseExecuteError(errors.New("cursor timeout"), "failed to find post by id")

	fx.postRepo.EXPECT().
		FindByID(ctx, testPostID).
		Return(nil, storeErr)

	view, err := fx.service.GetPost(ctx, testPostID)
	assert.Nil(t, view)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
