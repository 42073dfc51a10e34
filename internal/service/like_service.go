package service

import (
	"context"

	"playto/internal/models"
	"playto/internal/observability"
	"playto/internal/repository"
)

type LikeService struct {
	likeRepo repository.LikeRepository
}

type LikeInput struct {
	UserID     uint
	TargetKind models.LikeTargetKind
	TargetID   uint
}

func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

func (in LikeInput) target() (models.LikeTarget, error) {
	switch in.TargetKind {
	case models.LikeTargetPost, models.LikeTargetComment:
	default:
		return models.LikeTarget{}, models.NewValidationError("target must be 'post' or 'comment'")
	}
	if in.TargetID == 0 {
		return models.LikeTarget{}, models.NewValidationError("target id is required")
	}
	return models.LikeTarget{Kind: in.TargetKind, ID: in.TargetID}, nil
}

// LikeOn records a like. Liking something already liked is not an error:
// the result reports Created=false and the count is unchanged.
func (s *LikeService) LikeOn(ctx context.Context, in LikeInput) (*models.LikeOnResult, error) {
	target, err := in.target()
	if err != nil {
		return nil, err
	}

	result, err := s.likeRepo.LikeOn(ctx, in.UserID, target)
	if err != nil {
		return nil, err
	}

	outcome := "created"
	if !result.Created {
		outcome = "duplicate"
	}
	observability.RecordLikeToggle(string(target.Kind), outcome)
	return result, nil
}

// LikeOff removes a like. Unliking something never liked is not an error:
// the result reports Removed=false and the count is unchanged.
func (s *LikeService) LikeOff(ctx context.Context, in LikeInput) (*models.LikeOffResult, error) {
	target, err := in.target()
	if err != nil {
		return nil, err
	}

	result, err := s.likeRepo.LikeOff(ctx, in.UserID, target)
	if err != nil {
		return nil, err
	}

	outcome := "removed"
	if !result.Removed {
		outcome = "absent"
	}
	observability.RecordLikeToggle(string(target.Kind), outcome)
	return result, nil
}

func (s *LikeService) IsLiked(ctx context.Context, in LikeInput) (bool, error) {
	target, err := in.target()
	if err != nil {
		return false, err
	}
	return s.likeRepo.IsLiked(ctx, in.UserID, target)
}
