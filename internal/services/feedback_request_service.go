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

type FeedbackRequestServiceInterface interface {
	Create(ctx context.Context, principal access.Principal, payload request_models.FeedbackRequestPayload) (*response_models.FeedbackRequestResponse, error)
	ListForManager(ctx context.Context, principal access.Principal, fulfilled bool) ([]response_models.FeedbackRequestResponse, error)
	Fulfill(ctx context.Context, principal access.Principal, requestID uuid.UUID) (*response_models.FeedbackRequestResponse, error)
}

type FeedbackRequestService struct {
	requestRepo repositories.FeedbackRequestRepository
	userRepo    repositories.UserRepository
}

func NewFeedbackRequestService(
	requestRepo repositories.FeedbackRequestRepository,
	userRepo repositories.UserRepository,
) FeedbackRequestServiceInterface {
	return &FeedbackRequestService{requestRepo: requestRepo, userRepo: userRepo}
}

// Create addresses the request to the employee's own manager. An
// employee without a manager cannot request feedback.
func (s *FeedbackRequestService) Create(ctx context.Context, principal access.Principal, payload request_models.FeedbackRequestPayload) (*response_models.FeedbackRequestResponse, error) {
	if err := access.RequireEmployee(principal); err != nil {
		return nil, err
	}

	employee, err := s.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if employee == nil {
		return nil, utils.ErrUserNotFound
	}
	if employee.ManagerID == nil {
		return nil, utils.ErrNoManagerAssigned
	}

	request := &db_models.FeedbackRequest{
		EmployeeID: employee.ID,
		ManagerID:  *employee.ManagerID,
		Message:    payload.Message,
		Tags:       payload.Tags,
	}
	if err := s.requestRepo.Insert(ctx, request); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toRequestResponse(request), nil
}

func (s *FeedbackRequestService) ListForManager(ctx context.Context, principal access.Principal, fulfilled bool) ([]response_models.FeedbackRequestResponse, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByManager(ctx, principal.UserID, fulfilled)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FeedbackRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *toRequestResponse(&requests[i]))
	}
	return out, nil
}

// Fulfill is idempotent; not-owned collapses into not-found.
func (s *FeedbackRequestService) Fulfill(ctx context.Context, principal access.Principal, requestID uuid.UUID) (*response_models.FeedbackRequestResponse, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if request == nil || !access.OwnsRequest(principal, request) {
		return nil, utils.ErrRequestNotFound
	}

	if !request.Fulfilled {
		request.Fulfilled = true
		if err := s.requestRepo.Update(ctx, request); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return toRequestResponse(request), nil
}

func toRequestResponse(request *db_models.FeedbackRequest) *response_models.FeedbackRequestResponse {
	return &response_models.FeedbackRequestResponse{
		ID:         request.ID.String(),
		EmployeeID: request.EmployeeID.String(),
		ManagerID:  request.ManagerID.String(),
		Message:    request.Message,
		Tags:       request.Tags,
		Fulfilled:  request.Fulfilled,
		CreatedAt:  request.CreatedAt,
	}
}
