// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a post in the Playto community feed.
//
// LikeCount is a persisted, denormalized counter. The Like ledger is the
// source of truth; every ledger mutation adjusts this column inside the
// same transaction, so the two can never drift.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	LikeCount int    `gorm:"not null;default:0" json:"like_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `gorm:"index:idx_posts_created_at,sort:desc" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Comments is populated by the nested-tree read path; top-level
	// comments only, with replies threaded underneath.
	Comments []*Comment `gorm:"-" json:"comments,omitempty"`
}
