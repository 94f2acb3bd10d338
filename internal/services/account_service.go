package services

import (
	"context"

	"github.com/google/uuid"

	"teampulse/internal/access"
	"teampulse/internal/models/db_models"
	"teampulse/internal/models/request_models"
	"teampulse/internal/models/response_models"
	"teampulse/internal/repositories"
	"teampulse/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error)
	GetSelf(ctx context.Context, principal access.Principal) (*response_models.UserResponse, error)
	ListTeam(ctx context.Context, principal access.Principal) ([]response_models.UserResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token, Role: user.Role}, nil
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.UserResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	var managerID *uuid.UUID
	if request.Role == db_models.RoleEmployee && request.ManagerID != nil {
		id, err := uuid.Parse(*request.ManagerID)
		if err != nil {
			return nil, utils.ErrInvalidManagerRef
		}
		// An employee's manager reference must point at a manager-role user.
		manager, err := a.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if manager == nil || manager.Role != db_models.RoleManager {
			return nil, utils.ErrInvalidManagerRef
		}
		managerID = &id
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         request.Role,
		ManagerID:    managerID,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toUserResponse(user), nil
}

func (a *AccountService) GetSelf(ctx context.Context, principal access.Principal) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func (a *AccountService) ListTeam(ctx context.Context, principal access.Principal) ([]response_models.UserResponse, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	team, err := a.userRepo.ListTeam(ctx, principal.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.UserResponse, 0, len(team))
	for i := range team {
		out = append(out, *toUserResponse(&team[i]))
	}
	return out, nil
}

func toUserResponse(user *db_models.User) *response_models.UserResponse {
	resp := &response_models.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.ManagerID != nil {
		id := user.ManagerID.String()
		resp.ManagerID = &id
	}
	return resp
}
