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

type FeedbackServiceInterface interface {
	Create(ctx context.Context, principal access.Principal, payload request_models.FeedbackPayload) (*response_models.FeedbackResponse, error)
	ListForEmployee(ctx context.Context, principal access.Principal, employeeID uuid.UUID) ([]response_models.FeedbackResponse, error)
	Update(ctx context.Context, principal access.Principal, feedbackID uuid.UUID, payload request_models.FeedbackPayload) (*response_models.FeedbackResponse, error)
	Acknowledge(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) (*response_models.FeedbackResponse, error)
	Delete(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) error
	AddComment(ctx context.Context, principal access.Principal, feedbackID uuid.UUID, payload request_models.CommentPayload) (*response_models.CommentResponse, error)
	ListComments(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) ([]response_models.CommentResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	commentRepo  repositories.FeedbackCommentRepository
	userRepo     repositories.UserRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	commentRepo repositories.FeedbackCommentRepository,
	userRepo repositories.UserRepository,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

// Create stamps the principal as the feedback's manager. Any
// caller-supplied manager id is ignored.
func (s *FeedbackService) Create(ctx context.Context, principal access.Principal, payload request_models.FeedbackPayload) (*response_models.FeedbackResponse, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	employeeID, err := uuid.Parse(payload.EmployeeID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	feedback := &db_models.Feedback{
		EmployeeID:     employeeID,
		ManagerID:      principal.UserID,
		Strengths:      payload.Strengths,
		AreasToImprove: payload.AreasToImprove,
		Sentiment:      payload.Sentiment,
		Tags:           payload.Tags,
	}
	if err := s.feedbackRepo.Insert(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toFeedbackResponse(feedback), nil
}

func (s *FeedbackService) ListForEmployee(ctx context.Context, principal access.Principal, employeeID uuid.UUID) ([]response_models.FeedbackResponse, error) {
	employee, err := s.userRepo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if employee == nil {
		return nil, utils.ErrUserNotFound
	}
	if err := access.CanReadEmployeeFeedback(principal, employee); err != nil {
		return nil, err
	}

	feedbacks, err := s.feedbackRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, *toFeedbackResponse(&feedbacks[i]))
	}
	return out, nil
}

// Update is full-replace over the mutable field set; an empty tags
// value clears stored tags. Not-owned collapses into not-found.
func (s *FeedbackService) Update(ctx context.Context, principal access.Principal, feedbackID uuid.UUID, payload request_models.FeedbackPayload) (*response_models.FeedbackResponse, error) {
	if err := access.RequireManager(principal); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil || !access.OwnsFeedback(principal, feedback) {
		return nil, utils.ErrFeedbackNotFound
	}

	employeeID, err := uuid.Parse(payload.EmployeeID)
	if err != nil {
		return nil, utils.ErrUserNotFound
	}

	feedback.EmployeeID = employeeID
	feedback.Strengths = payload.Strengths
	feedback.AreasToImprove = payload.AreasToImprove
	feedback.Sentiment = payload.Sentiment
	feedback.Tags = payload.Tags
	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toFeedbackResponse(feedback), nil
}

// Acknowledge is idempotent: re-acknowledging succeeds with no change.
func (s *FeedbackService) Acknowledge(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) (*response_models.FeedbackResponse, error) {
	if err := access.RequireEmployee(principal); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil || !access.CanAcknowledge(principal, feedback) {
		return nil, utils.ErrFeedbackNotFound
	}

	if !feedback.Acknowledged {
		feedback.Acknowledged = true
		if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return toFeedbackResponse(feedback), nil
}

func (s *FeedbackService) Delete(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) error {
	if err := access.RequireManager(principal); err != nil {
		return err
	}

	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if feedback == nil || !access.OwnsFeedback(principal, feedback) {
		return utils.ErrFeedbackNotFound
	}

	if err := s.feedbackRepo.DeleteWithComments(ctx, feedbackID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AddComment is deliberately open: any authenticated user may comment
// on any existing feedback.
func (s *FeedbackService) AddComment(ctx context.Context, principal access.Principal, feedbackID uuid.UUID, payload request_models.CommentPayload) (*response_models.CommentResponse, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil {
		return nil, utils.ErrFeedbackNotFound
	}

	comment := &db_models.FeedbackComment{
		FeedbackID: feedbackID,
		UserID:     principal.UserID,
		Comment:    payload.Comment,
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toCommentResponse(comment), nil
}

func (s *FeedbackService) ListComments(ctx context.Context, principal access.Principal, feedbackID uuid.UUID) ([]response_models.CommentResponse, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if feedback == nil {
		return nil, utils.ErrFeedbackNotFound
	}

	comments, err := s.commentRepo.ListByFeedback(ctx, feedbackID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, *toCommentResponse(&comments[i]))
	}
	return out, nil
}

func toFeedbackResponse(feedback *db_models.Feedback) *response_models.FeedbackResponse {
	return &response_models.FeedbackResponse{
		ID:             feedback.ID.String(),
		EmployeeID:     feedback.EmployeeID.String(),
		ManagerID:      feedback.ManagerID.String(),
		Strengths:      feedback.Strengths,
		AreasToImprove: feedback.AreasToImprove,
		Sentiment:      feedback.Sentiment,
		Tags:           feedback.Tags,
		Acknowledged:   feedback.Acknowledged,
		CreatedAt:      feedback.CreatedAt,
		UpdatedAt:      feedback.UpdatedAt,
	}
}

func toCommentResponse(comment *db_models.FeedbackComment) *response_models.CommentResponse {
	return &response_models.CommentResponse{
		ID:         comment.ID.String(),
		FeedbackID: comment.FeedbackID.String(),
		UserID:     comment.UserID.String(),
		Comment:    comment.Comment,
		CreatedAt:  comment.CreatedAt,
	}
}
