package repository

import (
	"context"

	"playto/internal/cache"
	"playto/internal/models"
	"playto/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment operations, including
// materialized-path tree placement and subtree retrieval.
type CommentRepository interface {
	// Insert creates the comment and assigns its tree placement. PostID,
	// UserID, Content, and optionally ParentID must be set; TreePath and
	// Depth are computed here and are immutable afterwards.
	Insert(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	// TopLevel returns the parentless comments of a post, newest first.
	TopLevel(ctx context.Context, postID uint) ([]*models.Comment, error)
	// Subtree returns the comment and its descendants in path order.
	// maxDepthFromRoot counts levels from the subtree root: 1 returns just
	// the root, 2 adds its direct replies. <= 0 means the whole subtree.
	Subtree(ctx context.Context, commentID uint, maxDepthFromRoot int) ([]*models.Comment, error)
	// ListThread returns every comment of a post below the depth cutoff in
	// path order. One query regardless of comment count; callers thread the
	// flat slice into a tree.
	ListThread(ctx context.Context, postID uint, maxDepth int) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "comments")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).Count(&postCount).Error; err != nil {
			return models.NewStorageError(err)
		}
		if postCount == 0 {
			return models.NewNotFoundError("Post", comment.PostID)
		}

		parentPath := ""
		if comment.ParentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, *comment.ParentID).Error; err != nil {
				return translateError(err, "Comment", *comment.ParentID)
			}
			if parent.PostID != comment.PostID {
				return models.NewConstraintViolationError("parent comment belongs to a different post")
			}
			comment.Depth = parent.Depth + 1
			parentPath = parent.TreePath
		} else {
			comment.Depth = 0
		}

		if err := tx.Create(comment).Error; err != nil {
			return translateError(err, "Comment", comment.ID)
		}

		// The id is only known after the insert, so the path is finalized
		// in a second statement of the same transaction. No reader ever
		// observes the empty path.
		comment.TreePath = parentPath + comment.PathSegment()
		if err := tx.Model(&models.Comment{}).Where("id = ?", comment.ID).
			UpdateColumn("tree_path", comment.TreePath).Error; err != nil {
			return models.NewStorageError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidatePost(ctx, comment.PostID)
	observability.CommentDepth.Observe(float64(comment.Depth))
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	defer observability.TrackQuery("get", "comments")()

	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		return nil, translateError(err, "Comment", id)
	}
	return &comment, nil
}

func (r *commentRepository) TopLevel(ctx context.Context, postID uint) ([]*models.Comment, error) {
	defer observability.TrackQuery("list", "comments")()

	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return comments, nil
}

func (r *commentRepository) Subtree(ctx context.Context, commentID uint, maxDepthFromRoot int) ([]*models.Comment, error) {
	defer observability.TrackQuery("subtree", "comments")()

	var root models.Comment
	if err := r.db.WithContext(ctx).First(&root, commentID).Error; err != nil {
		return nil, translateError(err, "Comment", commentID)
	}

	// A single prefix scan over tree_path covers the whole subtree; tree
	// path ids are numeric so the prefix needs no LIKE escaping.
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND tree_path LIKE ?", root.PostID, root.TreePath+"%")
	if maxDepthFromRoot > 0 {
		q = q.Where("depth < ?", root.Depth+maxDepthFromRoot)
	}

	var comments []*models.Comment
	if err := q.Order("tree_path").Find(&comments).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListThread(ctx context.Context, postID uint, maxDepth int) ([]*models.Comment, error) {
	defer observability.TrackQuery("thread", "comments")()

	q := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID)
	if maxDepth > 0 {
		q = q.Where("depth < ?", maxDepth)
	}

	var comments []*models.Comment
	if err := q.Order("tree_path").Find(&comments).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("update", "comments")()

	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return translateError(err, "Comment", comment.ID)
	}
	cache.InvalidatePost(ctx, comment.PostID)
	return nil
}

// Delete removes the comment, its entire reply subtree, and all likes on
// those comments in one transaction, using the same path prefix that serves
// subtree reads.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "comments")()

	var postID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			return translateError(err, "Comment", id)
		}
		postID = comment.PostID
		prefix := comment.TreePath + "%"

		if err := tx.Exec(
			"DELETE FROM likes WHERE comment_id IN (SELECT id FROM comments WHERE post_id = ? AND tree_path LIKE ?)",
			comment.PostID, prefix,
		).Error; err != nil {
			return models.NewStorageError(err)
		}
		if err := tx.Where("post_id = ? AND tree_path LIKE ?", comment.PostID, prefix).
			Delete(&models.Comment{}).Error; err != nil {
			return models.NewStorageError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
