package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"playto/internal/database"
	"playto/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq atomic.Uint64

// setupTestDB opens a fresh in-memory SQLite database per test. The DSN is
// unique per call so parallel tests never share state; shared cache plus a
// single connection keeps the in-memory database alive and makes concurrent
// access from multiple goroutines serialize instead of erroring.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		Username:    gofakeit.Username(),
		DisplayName: gofakeit.Name(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, userID uint) *models.Post {
	t.Helper()

	post := &models.Post{
		Content: gofakeit.Sentence(8),
		UserID:  userID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func createTestComment(t *testing.T, db *gorm.DB, userID, postID uint, parentID *uint) *models.Comment {
	t.Helper()

	repo := NewCommentRepository(db)
	comment := &models.Comment{
		Content:  gofakeit.Sentence(5),
		UserID:   userID,
		PostID:   postID,
		ParentID: parentID,
	}
	if err := repo.Insert(context.Background(), comment); err != nil {
		t.Fatalf("insert comment: %v", err)
	}
	return comment
}
