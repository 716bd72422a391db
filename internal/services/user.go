package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/repos"
	"github.com/contactdesk/contactdesk-backend/internal/types"
	"github.com/contactdesk/contactdesk-backend/internal/utils"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type UserService interface {
	GetCurrent(ctx context.Context) (types.UserResponse, error)
	// UpdateCurrent is a patch: only the supplied fields change.
	UpdateCurrent(ctx context.Context, req validation.UpdateUserRequest) (types.UserResponse, error)
}

type userService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   repos.UserRepo
	bcryptCost int
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, bcryptCost int) UserService {
	return &userService{
		db:         db,
		log:        baseLog.With("service", "UserService"),
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

func (us *userService) GetCurrent(ctx context.Context) (types.UserResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

func (us *userService) UpdateCurrent(ctx context.Context, req validation.UpdateUserRequest) (types.UserResponse, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return types.UserResponse{}, err
	}
	if err := validation.Check(req); err != nil {
		return types.UserResponse{}, err
	}

	columns := map[string]any{}
	if req.Name != "" {
		columns["name"] = req.Name
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password, us.bcryptCost)
		if err != nil {
			return types.UserResponse{}, err
		}
		columns["password"] = hashed
	}

	err = us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := us.userRepo.CountByUsername(ctx, tx, user.Username)
		if err != nil {
			return fmt.Errorf("check user: %w", err)
		}
		if count != 1 {
			return apierr.NotFound("user is not found")
		}
		return us.userRepo.Patch(ctx, tx, user.Username, columns)
	})
	if err != nil {
		return types.UserResponse{}, err
	}

	updated, err := us.userRepo.GetByUsername(ctx, nil, user.Username)
	if err != nil || updated == nil {
		return types.UserResponse{}, fmt.Errorf("reload user: %w", err)
	}
	return updated.ToResponse(), nil
}
