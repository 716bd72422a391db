package services

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/repos"
	"github.com/contactdesk/contactdesk-backend/internal/requestdata"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

type testEnv struct {
	db      *gorm.DB
	auth    AuthService
	user    UserService
	contact ContactService
	address AddressService
}

func newTestEnv(t *testing.T) *testEnv {
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

	log := logger.NewNop()
	userRepo := repos.NewUserRepo(db, log)
	contactRepo := repos.NewContactRepo(db, log)
	addressRepo := repos.NewAddressRepo(db, log)

	// Cost 4 (bcrypt minimum) keeps the hashing in tests fast.
	return &testEnv{
		db:      db,
		auth:    NewAuthService(db, log, userRepo, 4),
		user:    NewUserService(db, log, userRepo, 4),
		contact: NewContactService(db, log, contactRepo),
		address: NewAddressService(db, log, contactRepo, addressRepo),
	}
}

// authedCtx builds a context carrying the given user, the way the auth
// middleware would.
func authedCtx(t *testing.T, env *testEnv, username string) context.Context {
	t.Helper()
	var user types.User
	if err := env.db.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("load user %s: %v", username, err)
	}
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{User: &user})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected status %d error, got nil", status)
	}
	apiErr, ok := apierr.From(err)
	if !ok {
		t.Fatalf("expected *apierr.Error, got %T: %v", err, err)
	}
	if apiErr.Status != status {
		t.Fatalf("expected status %d, got %d (%s)", status, apiErr.Status, apiErr.Message)
	}
}
