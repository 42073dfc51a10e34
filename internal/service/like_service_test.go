package service

import (
	"context"
	"testing"

	"playto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeOnFn   func(context.Context, uint, models.LikeTarget) (*models.LikeOnResult, error)
	likeOffFn  func(context.Context, uint, models.LikeTarget) (*models.LikeOffResult, error)
	countForFn func(context.Context, models.LikeTarget) (int64, error)
	isLikedFn  func(context.Context, uint, models.LikeTarget) (bool, error)
}

func (s *likeRepoStub) LikeOn(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOnResult, error) {
	return s.likeOnFn(ctx, userID, target)
}
func (s *likeRepoStub) LikeOff(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOffResult, error) {
	return s.likeOffFn(ctx, userID, target)
}
func (s *likeRepoStub) CountFor(ctx context.Context, target models.LikeTarget) (int64, error) {
	return s.countForFn(ctx, target)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID uint, target models.LikeTarget) (bool, error) {
	return s.isLikedFn(ctx, userID, target)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeOnFn: func(_ context.Context, _ uint, _ models.LikeTarget) (*models.LikeOnResult, error) {
			return &models.LikeOnResult{Created: true, LikeCount: 1}, nil
		},
		likeOffFn: func(_ context.Context, _ uint, _ models.LikeTarget) (*models.LikeOffResult, error) {
			return &models.LikeOffResult{Removed: true, LikeCount: 0}, nil
		},
		countForFn: func(_ context.Context, _ models.LikeTarget) (int64, error) { return 0, nil },
		isLikedFn:  func(_ context.Context, _ uint, _ models.LikeTarget) (bool, error) { return false, nil },
	}
}

func TestLikeService_InputValidation(t *testing.T) {
	t.Parallel()

	svc := NewLikeService(noopLikeRepo())
	ctx := context.Background()

	t.Run("unknown target kind", func(t *testing.T) {
		t.Parallel()
		_, err := svc.LikeOn(ctx, LikeInput{UserID: 1, TargetKind: "story", TargetID: 1})
		assertValidationError(t, err)
	})

	t.Run("zero target id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.LikeOff(ctx, LikeInput{UserID: 1, TargetKind: models.LikeTargetPost})
		assertValidationError(t, err)
	})
}

func TestLikeService_LikeOn_PassesTarget(t *testing.T) {
	t.Parallel()

	repo := noopLikeRepo()
	repo.likeOnFn = func(_ context.Context, userID uint, target models.LikeTarget) (*models.LikeOnResult, error) {
		assert.Equal(t, uint(7), userID)
		assert.Equal(t, models.LikeTargetComment, target.Kind)
		assert.Equal(t, uint(12), target.ID)
		return &models.LikeOnResult{Created: false, LikeCount: 4}, nil
	}

	svc := NewLikeService(repo)
	result, err := svc.LikeOn(context.Background(), LikeInput{
		UserID:     7,
		TargetKind: models.LikeTargetComment,
		TargetID:   12,
	})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, 4, result.LikeCount)
}

func TestLikeService_LikeOff_RepoErrorPropagates(t *testing.T) {
	t.Parallel()

	repoErr := models.NewNotFoundError("Post", 9)
	repo := noopLikeRepo()
	repo.likeOffFn = func(_ context.Context, _ uint, _ models.LikeTarget) (*models.LikeOffResult, error) {
		return nil, repoErr
	}

	svc := NewLikeService(repo)
	_, err := svc.LikeOff(context.Background(), LikeInput{
		UserID:     1,
		TargetKind: models.LikeTargetPost,
		TargetID:   9,
	})
	assert.ErrorIs(t, err, repoErr)
}
