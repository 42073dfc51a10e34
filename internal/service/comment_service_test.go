package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"playto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	insertFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	topLevelFn   func(context.Context, uint) ([]*models.Comment, error)
	subtreeFn    func(context.Context, uint, int) ([]*models.Comment, error)
	listThreadFn func(context.Context, uint, int) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Insert(ctx context.Context, comment *models.Comment) error {
	return s.insertFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) TopLevel(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.topLevelFn(ctx, postID)
}
func (s *commentRepoStub) Subtree(ctx context.Context, commentID uint, maxDepth int) ([]*models.Comment, error) {
	return s.subtreeFn(ctx, commentID, maxDepth)
}
func (s *commentRepoStub) ListThread(ctx context.Context, postID uint, maxDepth int) ([]*models.Comment, error) {
	return s.listThreadFn(ctx, postID, maxDepth)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		insertFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		topLevelFn:   func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		subtreeFn:    func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) { return nil, nil },
		listThreadFn: func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_CreateComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{UserID: 1, PostID: 1})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateComment(ctx, CreateCommentInput{
			UserID:  1,
			PostID:  1,
			Content: strings.Repeat("x", maxCommentLen+1),
		})
		assertValidationError(t, err)
	})
}

func TestCommentService_CreateComment_Success(t *testing.T) {
	t.Parallel()

	parentID := uint(3)
	repo := noopCommentRepo()
	repo.insertFn = func(_ context.Context, c *models.Comment) error {
		assert.Equal(t, &parentID, c.ParentID)
		c.ID = 42
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "hello", UserID: 1, PostID: 1}, nil
	}

	svc := NewCommentService(repo, noopPostRepo())
	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:   1,
		PostID:   1,
		ParentID: &parentID,
		Content:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
}

func TestCommentService_CreateComment_InsertErrorPropagates(t *testing.T) {
	t.Parallel()

	repoErr := models.NewConstraintViolationError("parent comment belongs to a different post")
	repo := noopCommentRepo()
	repo.insertFn = func(_ context.Context, _ *models.Comment) error { return repoErr }

	svc := NewCommentService(repo, noopPostRepo())
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 1, Content: "hi"})
	assert.ErrorIs(t, err, repoErr)
}

func TestCommentService_GetSubtree(t *testing.T) {
	t.Parallel()

	parent := uint(2)
	repo := noopCommentRepo()
	repo.subtreeFn = func(_ context.Context, commentID uint, maxDepth int) ([]*models.Comment, error) {
		assert.Equal(t, uint(2), commentID)
		assert.Equal(t, 3, maxDepth)
		grandparent := uint(1)
		return []*models.Comment{
			{ID: 2, ParentID: &grandparent, TreePath: "1/2/", Depth: 1},
			{ID: 5, ParentID: &parent, TreePath: "1/2/5/", Depth: 2},
		}, nil
	}

	svc := NewCommentService(repo, noopPostRepo())
	root, err := svc.GetSubtree(context.Background(), SubtreeInput{CommentID: 2, MaxDepth: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(2), root.ID)
	require.Len(t, root.Replies, 1)
	assert.Equal(t, uint(5), root.Replies[0].ID)
}

func TestCommentService_GetSubtree_RootMissing(t *testing.T) {
	t.Parallel()

	repoErr := models.NewNotFoundError("Comment", 99)
	repo := noopCommentRepo()
	repo.subtreeFn = func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) {
		return nil, repoErr
	}

	svc := NewCommentService(repo, noopPostRepo())
	_, err := svc.GetSubtree(context.Background(), SubtreeInput{CommentID: 99})
	assert.ErrorIs(t, err, repoErr)
}

func TestCommentService_UpdateComment_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 10}, nil
		}
		svc := NewCommentService(repo, noopPostRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Content: "new"})
		assertUnauthorizedError(t, err)
	})

	t.Run("empty content is invalid", func(t *testing.T) {
		t.Parallel()
		repo := noopCommentRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 1}, nil
		}
		svc := NewCommentService(repo, noopPostRepo())
		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1})
		assertValidationError(t, err)
	})
}

func TestCommentService_DeleteComment_Ownership(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := noopCommentRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: 1, UserID: 10}, nil
	}
	repo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := NewCommentService(repo, noopPostRepo())
	_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 1})
	assertUnauthorizedError(t, err)
	assert.False(t, deleted)
}

func TestCommentService_ListTopLevel_PostMissing(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("post not found")
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, repoErr
	}

	svc := NewCommentService(noopCommentRepo(), postRepo)
	_, err := svc.ListTopLevel(context.Background(), 99)
	assert.ErrorIs(t, err, repoErr)
}
