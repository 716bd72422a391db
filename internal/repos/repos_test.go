package repos

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.Contact{}, &types.Address{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func seedUser(t *testing.T, db *gorm.DB, username string) *types.User {
	t.Helper()
	user := &types.User{Username: username, Password: "hashed", Name: username}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func seedContact(t *testing.T, db *gorm.DB, username, firstName string) *types.Contact {
	t.Helper()
	contact := &types.Contact{Username: username, FirstName: firstName}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("seed contact %s: %v", firstName, err)
	}
	return contact
}

func strPtr(s string) *string {
	return &s
}
