package models

import (
	"time"
)

// Like is one row of the like ledger: user X likes target Y, where Y is
// exactly one of a post or a comment. The ledger is the source of truth for
// all like state; the LikeCount columns on Post and Comment are derived
// caches maintained in the same transaction as each ledger mutation.
//
// The composite unique indexes are the race guard: two concurrent inserts
// for the same (user, target) pair conflict at the storage layer, and the
// loser is reported as "already liked" rather than creating a duplicate.
// Rows are hard-deleted on unlike; a soft-deleted ledger would break the
// counter/ledger equality invariant.
type Like struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    uint     `gorm:"not null;uniqueIndex:uniq_likes_user_post;uniqueIndex:uniq_likes_user_comment" json:"user_id"`
	User      User     `gorm:"foreignKey:UserID" json:"user"`
	PostID    *uint    `gorm:"uniqueIndex:uniq_likes_user_post;check:chk_likes_single_target,(post_id IS NULL) <> (comment_id IS NULL)" json:"post_id"`
	Post      *Post    `gorm:"foreignKey:PostID" json:"-"`
	CommentID *uint    `gorm:"uniqueIndex:uniq_likes_user_comment" json:"comment_id"`
	Comment   *Comment `gorm:"foreignKey:CommentID" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// LikeTargetKind discriminates what a like points at.
type LikeTargetKind string

const (
	LikeTargetPost    LikeTargetKind = "post"
	LikeTargetComment LikeTargetKind = "comment"
)

// LikeTarget identifies a likeable entity.
type LikeTarget struct {
	Kind LikeTargetKind
	ID   uint
}

// LikeOnResult reports the outcome of a like toggle-on.
// Created=false means the pair was already in the ledger; that is a normal
// outcome, not an error.
type LikeOnResult struct {
	Created   bool `json:"created"`
	LikeCount int  `json:"like_count"`
}

// LikeOffResult reports the outcome of a like toggle-off.
// Removed=false means there was nothing to remove.
type LikeOffResult struct {
	Removed   bool `json:"removed"`
	LikeCount int  `json:"like_count"`
}
