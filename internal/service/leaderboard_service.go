package service

import (
	"context"
	"time"

	"playto/internal/models"
	"playto/internal/repository"
)

const maxLeaderboardLimit = 100

type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	window          time.Duration
	defaultLimit    int
	now             func() time.Time
}

type LeaderboardInput struct {
	// Limit is how many users to return. Zero means the configured default.
	Limit int
}

type Leaderboard struct {
	Since   time.Time                 `json:"since"`
	Until   time.Time                 `json:"until"`
	Entries []models.LeaderboardEntry `json:"entries"`
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository, window time.Duration, defaultLimit int) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		window:          window,
		defaultLimit:    defaultLimit,
		now:             time.Now,
	}
}

// TopUsers ranks users by karma earned from likes created inside the rolling
// window ending now. Likes older than the window stop counting; likes on old
// posts still count as long as the like itself is recent.
func (s *LeaderboardService) TopUsers(ctx context.Context, in LeaderboardInput) (*Leaderboard, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxLeaderboardLimit {
		return nil, models.NewValidationError("limit too large (max 100)")
	}

	until := s.now()
	since := until.Add(-s.window)

	entries, err := s.leaderboardRepo.TopUsers(ctx, since, until, limit)
	if err != nil {
		return nil, err
	}

	return &Leaderboard{
		Since:   since,
		Until:   until,
		Entries: entries,
	}, nil
}
