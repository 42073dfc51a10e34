package repository

import (
	"context"
	"time"

	"playto/internal/models"
	"playto/internal/observability"

	"gorm.io/gorm"
)

// LeaderboardRepository computes karma rankings from the like ledger.
type LeaderboardRepository interface {
	// TopUsers returns up to limit users ranked by karma earned from likes
	// created in [since, until). Karma weights post likes and comment likes
	// differently; users with zero karma in the window are excluded.
	TopUsers(ctx context.Context, since, until time.Time, limit int) ([]models.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// Karma is aggregated in a single pass over the ledger: post likes and
// comment likes are normalized into (author, weight) events and summed per
// author. HAVING repeats the SUM expression because postgres does not allow
// the output alias there.
const topUsersQuery = `
SELECT
    u.id AS user_id,
    u.username AS username,
    SUM(e.weight) AS karma,
    SUM(CASE WHEN e.kind = 'post' THEN 1 ELSE 0 END) AS post_likes,
    SUM(CASE WHEN e.kind = 'comment' THEN 1 ELSE 0 END) AS comment_likes
FROM (
    SELECT p.user_id AS author_id, ? AS weight, 'post' AS kind
    FROM likes l
    JOIN posts p ON p.id = l.post_id
    WHERE l.post_id IS NOT NULL AND l.created_at >= ? AND l.created_at < ?
    UNION ALL
    SELECT c.user_id AS author_id, ? AS weight, 'comment' AS kind
    FROM likes l
    JOIN comments c ON c.id = l.comment_id
    WHERE l.comment_id IS NOT NULL AND l.created_at >= ? AND l.created_at < ?
) e
JOIN users u ON u.id = e.author_id
GROUP BY u.id, u.username
HAVING SUM(e.weight) > 0
ORDER BY karma DESC, user_id ASC
LIMIT ?`

func (r *leaderboardRepository) TopUsers(ctx context.Context, since, until time.Time, limit int) ([]models.LeaderboardEntry, error) {
	defer observability.TrackQuery("leaderboard", "likes")()

	start := time.Now()
	entries := []models.LeaderboardEntry{}
	err := r.db.WithContext(ctx).Raw(topUsersQuery,
		models.PostKarmaWeight, since, until,
		models.CommentKarmaWeight, since, until,
		limit,
	).Scan(&entries).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	observability.LeaderboardQueryLatency.Observe(time.Since(start).Seconds())
	return entries, nil
}
