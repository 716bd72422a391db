package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/repos"
	"github.com/contactdesk/contactdesk-backend/internal/types"
	"github.com/contactdesk/contactdesk-backend/internal/utils"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type AuthService interface {
	Register(ctx context.Context, req validation.RegisterUserRequest) (types.UserResponse, error)
	Login(ctx context.Context, req validation.LoginUserRequest) (types.TokenResponse, error)
	Logout(ctx context.Context) error
	// ResolveToken maps a raw bearer token to its user. Used by the auth
	// middleware; unknown tokens are a generic 401.
	ResolveToken(ctx context.Context, token string) (*types.User, error)
}

type authService struct {
	db         *gorm.DB
	log        *logger.Logger
	userRepo   repos.UserRepo
	bcryptCost int
}

func NewAuthService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo, bcryptCost int) AuthService {
	return &authService{
		db:         db,
		log:        baseLog.With("service", "AuthService"),
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

func (as *authService) Register(ctx context.Context, req validation.RegisterUserRequest) (types.UserResponse, error) {
	if err := validation.Check(req); err != nil {
		return types.UserResponse{}, err
	}

	hashed, err := utils.HashPassword(req.Password, as.bcryptCost)
	if err != nil {
		return types.UserResponse{}, err
	}

	user := types.User{
		Username: req.Username,
		Password: hashed,
		Name:     req.Name,
	}

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		count, err := as.userRepo.CountByUsername(ctx, tx, req.Username)
		if err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if count > 0 {
			return apierr.BadRequest("Username already exists")
		}
		return as.userRepo.Create(ctx, tx, &user)
	})
	if err != nil {
		return types.UserResponse{}, err
	}

	as.log.Info("User registered", "username", user.Username)
	return user.ToResponse(), nil
}

func (as *authService) Login(ctx context.Context, req validation.LoginUserRequest) (types.TokenResponse, error) {
	if err := validation.Check(req); err != nil {
		return types.TokenResponse{}, err
	}

	user, err := as.userRepo.GetByUsername(ctx, nil, req.Username)
	if err != nil {
		return types.TokenResponse{}, fmt.Errorf("find user: %w", err)
	}
	// One message for both failure modes so callers cannot probe which
	// usernames exist.
	if user == nil || !utils.CheckPassword(user.Password, req.Password) {
		return types.TokenResponse{}, apierr.Unauthorized("Username or password wrong")
	}

	token := uuid.NewString()
	if err := as.userRepo.SetToken(ctx, nil, user.Username, token); err != nil {
		return types.TokenResponse{}, fmt.Errorf("store token: %w", err)
	}

	as.log.Info("User logged in", "username", user.Username)
	return types.TokenResponse{Token: token}, nil
}

func (as *authService) Logout(ctx context.Context) error {
	user, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := as.userRepo.ClearToken(ctx, nil, user.Username); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	as.log.Info("User logged out", "username", user.Username)
	return nil
}

func (as *authService) ResolveToken(ctx context.Context, token string) (*types.User, error) {
	if token == "" {
		return nil, apierr.Unauthorized("Unauthorized")
	}
	user, err := as.userRepo.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	if user == nil {
		return nil, apierr.Unauthorized("Unauthorized")
	}
	return user, nil
}
