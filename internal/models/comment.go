package models

import (
	"fmt"
	"time"
)

// Comment represents a comment on a post or a reply to another comment.
//
// Nesting is unbounded. Instead of walking parent pointers, every comment
// stores a materialized TreePath of the form "1/3/5/" (ancestor ids from the
// thread root down to itself), so an entire subtree is one prefix query.
// TreePath and Depth are assigned once at insert time, inside the same
// transaction as the row itself, and never change: comments are never
// re-parented.
type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	PostID   uint     `gorm:"not null;index:idx_comments_post_parent;index:idx_comments_post_path" json:"post_id"`
	Post     Post     `gorm:"foreignKey:PostID" json:"-"`
	UserID   uint     `gorm:"not null;index" json:"user_id"`
	User     User     `gorm:"foreignKey:UserID" json:"user"`
	ParentID *uint    `gorm:"index:idx_comments_post_parent" json:"parent_id"`
	Parent   *Comment `gorm:"foreignKey:ParentID" json:"-"`
	Content  string   `gorm:"type:text;not null" json:"content"`

	// TreePath is "<rootID>/.../<selfID>/"; Depth is the distance from the
	// thread root (root = 0). Invariant: TreePath equals the parent's
	// TreePath with the own id appended, and Depth equals the number of
	// ids in TreePath minus one.
	TreePath string `gorm:"size:500;index:idx_comments_post_path" json:"tree_path"`
	Depth    int    `gorm:"not null;default:0" json:"depth"`

	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Replies is populated by the nested-tree read path.
	Replies []*Comment `gorm:"-" json:"replies,omitempty"`
}

// PathSegment is the TreePath contribution of this comment alone.
func (c *Comment) PathSegment() string {
	return fmt.Sprintf("%d/", c.ID)
}
