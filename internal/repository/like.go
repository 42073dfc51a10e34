package repository

import (
	"context"

	"playto/internal/cache"
	"playto/internal/models"
	"playto/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository is the like ledger: it toggles likes while keeping the
// denormalized counters on posts and comments exactly in sync with the
// ledger rows, and it resolves duplicate inserts at the storage layer.
type LikeRepository interface {
	LikeOn(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOnResult, error)
	LikeOff(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOffResult, error)
	// CountFor recomputes the like count for a target from the ledger rows.
	// Always equal to the cached counter; kept as a reconciliation primitive.
	CountFor(ctx context.Context, target models.LikeTarget) (int64, error)
	IsLiked(ctx context.Context, userID uint, target models.LikeTarget) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// likeTargetSchema maps a target kind onto its table and ledger column.
func likeTargetSchema(target models.LikeTarget) (table, column, resource string, err error) {
	switch target.Kind {
	case models.LikeTargetPost:
		return "posts", "post_id", "Post", nil
	case models.LikeTargetComment:
		return "comments", "comment_id", "Comment", nil
	default:
		return "", "", "", models.NewValidationError("like target must be a post or a comment")
	}
}

func (r *likeRepository) LikeOn(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOnResult, error) {
	defer observability.TrackQuery("like_on", "likes")()

	table, _, resource, err := likeTargetSchema(target)
	if err != nil {
		return nil, err
	}

	result := &models.LikeOnResult{}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireTarget(tx, table, resource, target.ID); err != nil {
			return err
		}

		like := &models.Like{UserID: userID}
		targetID := target.ID
		if target.Kind == models.LikeTargetPost {
			like.PostID = &targetID
		} else {
			like.CommentID = &targetID
		}

		// The unique index is the race guard: of two concurrent inserts for
		// the same pair exactly one lands, the other is a clean no-op and
		// is reported as already-liked rather than an error.
		ins := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if ins.Error != nil {
			return models.NewStorageError(ins.Error)
		}
		result.Created = ins.RowsAffected == 1

		if result.Created {
			if err := tx.Table(table).Where("id = ?", target.ID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return models.NewStorageError(err)
			}
		}

		count, err := readLikeCount(tx, table, target.ID)
		if err != nil {
			return err
		}
		result.LikeCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if target.Kind == models.LikeTargetPost {
		cache.InvalidatePost(ctx, target.ID)
	}
	return result, nil
}

func (r *likeRepository) LikeOff(ctx context.Context, userID uint, target models.LikeTarget) (*models.LikeOffResult, error) {
	defer observability.TrackQuery("like_off", "likes")()

	table, column, resource, err := likeTargetSchema(target)
	if err != nil {
		return nil, err
	}

	result := &models.LikeOffResult{}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireTarget(tx, table, resource, target.ID); err != nil {
			return err
		}

		del := tx.Where("user_id = ? AND "+column+" = ?", userID, target.ID).Delete(&models.Like{})
		if del.Error != nil {
			return models.NewStorageError(del.Error)
		}
		result.Removed = del.RowsAffected == 1

		if result.Removed {
			if err := tx.Table(table).Where("id = ?", target.ID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return models.NewStorageError(err)
			}
		}

		count, err := readLikeCount(tx, table, target.ID)
		if err != nil {
			return err
		}
		result.LikeCount = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	if target.Kind == models.LikeTargetPost {
		cache.InvalidatePost(ctx, target.ID)
	}
	return result, nil
}

func (r *likeRepository) CountFor(ctx context.Context, target models.LikeTarget) (int64, error) {
	defer observability.TrackQuery("count", "likes")()

	_, column, _, err := likeTargetSchema(target)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where(column+" = ?", target.ID).Count(&count).Error; err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID uint, target models.LikeTarget) (bool, error) {
	defer observability.TrackQuery("get", "likes")()

	_, column, _, err := likeTargetSchema(target)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND "+column+" = ?", userID, target.ID).
		Count(&count).Error; err != nil {
		return false, models.NewStorageError(err)
	}
	return count > 0, nil
}

func requireTarget(tx *gorm.DB, table, resource string, id uint) error {
	var count int64
	if err := tx.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return models.NewStorageError(err)
	}
	if count == 0 {
		return models.NewNotFoundError(resource, id)
	}
	return nil
}

func readLikeCount(tx *gorm.DB, table string, id uint) (int, error) {
	var count int
	if err := tx.Table(table).Select("like_count").Where("id = ?", id).
		Scan(&count).Error; err != nil {
		return 0, models.NewStorageError(err)
	}
	return count, nil
}
