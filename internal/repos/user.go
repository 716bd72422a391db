package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/types"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *types.User) error
	GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.User, error)
	GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.User, error)
	CountByUsername(ctx context.Context, tx *gorm.DB, username string) (int64, error)
	// Patch updates only the given columns; everything else keeps its
	// stored value. Users are patched, never replaced.
	Patch(ctx context.Context, tx *gorm.DB, username string, columns map[string]any) error
	SetToken(ctx context.Context, tx *gorm.DB, username string, token string) error
	ClearToken(ctx context.Context, tx *gorm.DB, username string) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (ur *userRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return ur.db
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
	return ur.handle(tx).WithContext(ctx).Create(user).Error
}

func (ur *userRepo) GetByUsername(ctx context.Context, tx *gorm.DB, username string) (*types.User, error) {
	var user types.User
	err := ur.handle(tx).WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) GetByToken(ctx context.Context, tx *gorm.DB, token string) (*types.User, error) {
	var user types.User
	err := ur.handle(tx).WithContext(ctx).
		Where("token = ?", token).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) CountByUsername(ctx context.Context, tx *gorm.DB, username string) (int64, error) {
	var count int64
	err := ur.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (ur *userRepo) Patch(ctx context.Context, tx *gorm.DB, username string, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	return ur.handle(tx).WithContext(ctx).
		Model(&types.User{}).
		Where("username = ?", username).
		Updates(columns).Error
}

func (ur *userRepo) SetToken(ctx context.Context, tx *gorm.DB, username string, token string) error {
	return ur.Patch(ctx, tx, username, map[string]any{"token": token})
}

func (ur *userRepo) ClearToken(ctx context.Context, tx *gorm.DB, username string) error {
	return ur.Patch(ctx, tx, username, map[string]any{"token": nil})
}
