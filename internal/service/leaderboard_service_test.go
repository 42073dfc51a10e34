package service

import (
	"context"
	"testing"
	"time"

	"playto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leaderboardRepoStub is a stub for repository.LeaderboardRepository.
type leaderboardRepoStub struct {
	topUsersFn func(context.Context, time.Time, time.Time, int) ([]models.LeaderboardEntry, error)
}

func (s *leaderboardRepoStub) TopUsers(ctx context.Context, since, until time.Time, limit int) ([]models.LeaderboardEntry, error) {
	return s.topUsersFn(ctx, since, until, limit)
}

func TestLeaderboardService_WindowAndDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var gotSince, gotUntil time.Time
	var gotLimit int

	repo := &leaderboardRepoStub{
		topUsersFn: func(_ context.Context, since, until time.Time, limit int) ([]models.LeaderboardEntry, error) {
			gotSince, gotUntil, gotLimit = since, until, limit
			return []models.LeaderboardEntry{{UserID: 1, Username: "alice", Karma: 6}}, nil
		},
	}

	svc := NewLeaderboardService(repo, 24*time.Hour, 5)
	svc.now = func() time.Time { return now }

	board, err := svc.TopUsers(context.Background(), LeaderboardInput{})
	require.NoError(t, err)

	assert.Equal(t, now, gotUntil)
	assert.Equal(t, now.Add(-24*time.Hour), gotSince)
	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, now, board.Until)
	require.Len(t, board.Entries, 1)
	assert.Equal(t, "alice", board.Entries[0].Username)
}

func TestLeaderboardService_ExplicitLimit(t *testing.T) {
	t.Parallel()

	repo := &leaderboardRepoStub{
		topUsersFn: func(_ context.Context, _, _ time.Time, limit int) ([]models.LeaderboardEntry, error) {
			assert.Equal(t, 20, limit)
			return nil, nil
		},
	}

	svc := NewLeaderboardService(repo, 24*time.Hour, 5)
	board, err := svc.TopUsers(context.Background(), LeaderboardInput{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, board.Entries)
}

func TestLeaderboardService_LimitTooLarge(t *testing.T) {
	t.Parallel()

	repo := &leaderboardRepoStub{
		topUsersFn: func(_ context.Context, _, _ time.Time, _ int) ([]models.LeaderboardEntry, error) {
			t.Fatal("repository must not be called for invalid input")
			return nil, nil
		},
	}

	svc := NewLeaderboardService(repo, 24*time.Hour, 5)
	_, err := svc.TopUsers(context.Background(), LeaderboardInput{Limit: maxLeaderboardLimit + 1})
	assertValidationError(t, err)
}
