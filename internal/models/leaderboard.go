package models

// Karma weights. A like on a post is worth five times a like on a comment.
const (
	PostKarmaWeight    = 5
	CommentKarmaWeight = 1
)

// LeaderboardEntry is one ranked row of the karma leaderboard: a user and
// the in-window like counts backing their score. Karma is always recomputed
// from the Like ledger filtered by timestamp; the cached LikeCount columns
// are global, not windowed, and are never consulted here.
type LeaderboardEntry struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Karma        int    `json:"karma"`
	PostLikes    int    `json:"post_likes"`
	CommentLikes int    `json:"comment_likes"`
}
