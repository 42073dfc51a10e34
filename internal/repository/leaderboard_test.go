package repository

import (
	"context"
	"testing"
	"time"

	"playto/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func likeAsUser(t *testing.T, db *gorm.DB, userID uint, target models.LikeTarget) {
	t.Helper()
	repo := NewLikeRepository(db)
	result, err := repo.LikeOn(context.Background(), userID, target)
	require.NoError(t, err)
	require.True(t, result.Created)
}

// backdateLikes rewrites created_at on every like for the target so the like
// falls outside (or inside) the karma window under test.
func backdateLikes(t *testing.T, db *gorm.DB, target models.LikeTarget, to time.Time) {
	t.Helper()
	column := "post_id"
	if target.Kind == models.LikeTargetComment {
		column = "comment_id"
	}
	err := db.Model(&models.Like{}).
		Where(column+" = ?", target.ID).
		UpdateColumn("created_at", to).Error
	require.NoError(t, err)
}

func window() (time.Time, time.Time) {
	until := time.Now().Add(time.Minute)
	return until.Add(-24 * time.Hour), until
}

func TestLeaderboardRepository_KarmaWeights(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	author := createTestUser(t, db)
	post := createTestPost(t, db, author.ID)
	comment := createTestComment(t, db, author.ID, post.ID, nil)

	fan := createTestUser(t, db)
	likeAsUser(t, db, fan.ID, postTarget(post.ID))
	likeAsUser(t, db, fan.ID, commentTarget(comment.ID))

	// A second author whose only like is 25 hours old must not rank.
	stale := createTestUser(t, db)
	stalePost := createTestPost(t, db, stale.ID)
	likeAsUser(t, db, fan.ID, postTarget(stalePost.ID))
	backdateLikes(t, db, postTarget(stalePost.ID), time.Now().Add(-25*time.Hour))

	since, until := window()
	repo := NewLeaderboardRepository(db)
	entries, err := repo.TopUsers(context.Background(), since, until, 10)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, author.ID, entries[0].UserID)
	assert.Equal(t, author.Username, entries[0].Username)
	// One post like and one comment like: 5 + 1.
	assert.Equal(t, 6, entries[0].Karma)
	assert.Equal(t, 1, entries[0].PostLikes)
	assert.Equal(t, 1, entries[0].CommentLikes)
}

func TestLeaderboardRepository_WindowExcludesOldLikes(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	author := createTestUser(t, db)
	post := createTestPost(t, db, author.ID)

	fan := createTestUser(t, db)
	likeAsUser(t, db, fan.ID, postTarget(post.ID))
	backdateLikes(t, db, postTarget(post.ID), time.Now().Add(-25*time.Hour))

	since, until := window()
	repo := NewLeaderboardRepository(db)
	entries, err := repo.TopUsers(context.Background(), since, until, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// A fresh like on an old post counts: the window filters on the like's
// timestamp, never the post's.
func TestLeaderboardRepository_FreshLikeOnOldPost(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	author := createTestUser(t, db)
	post := createTestPost(t, db, author.ID)
	err := db.Model(&models.Post{}).Where("id = ?", post.ID).
		UpdateColumn("created_at", time.Now().Add(-30*24*time.Hour)).Error
	require.NoError(t, err)

	fan := createTestUser(t, db)
	likeAsUser(t, db, fan.ID, postTarget(post.ID))

	since, until := window()
	repo := NewLeaderboardRepository(db)
	entries, err := repo.TopUsers(context.Background(), since, until, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.PostKarmaWeight, entries[0].Karma)
}

func TestLeaderboardRepository_RankingAndTieBreak(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	// first and second tie on karma; third leads. Ties resolve by lower
	// user ID so the order is stable across runs.
	first := createTestUser(t, db)
	second := createTestUser(t, db)
	third := createTestUser(t, db)

	firstPost := createTestPost(t, db, first.ID)
	secondPost := createTestPost(t, db, second.ID)
	thirdPost := createTestPost(t, db, third.ID)

	fanA := createTestUser(t, db)
	fanB := createTestUser(t, db)

	likeAsUser(t, db, fanA.ID, postTarget(firstPost.ID))
	likeAsUser(t, db, fanA.ID, postTarget(secondPost.ID))
	likeAsUser(t, db, fanA.ID, postTarget(thirdPost.ID))
	likeAsUser(t, db, fanB.ID, postTarget(thirdPost.ID))

	since, until := window()
	repo := NewLeaderboardRepository(db)
	entries, err := repo.TopUsers(context.Background(), since, until, 10)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, third.ID, entries[0].UserID)
	assert.Equal(t, 2*models.PostKarmaWeight, entries[0].Karma)
	assert.Equal(t, first.ID, entries[1].UserID)
	assert.Equal(t, second.ID, entries[2].UserID)

	// Limit truncates after ranking.
	top1, err := repo.TopUsers(context.Background(), since, until, 1)
	require.NoError(t, err)
	require.Len(t, top1, 1)
	assert.Equal(t, third.ID, top1[0].UserID)
}

func TestLeaderboardRepository_EmptyWindow(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	since, until := window()
	repo := NewLeaderboardRepository(db)
	entries, err := repo.TopUsers(context.Background(), since, until, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
