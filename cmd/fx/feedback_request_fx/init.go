package feedback_request_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"teampulse/internal/repositories"
	"teampulse/internal/services"
)

var Module = fx.Provide(
	provideRequestRepo, provideRequestService)

func provideRequestRepo(db *gorm.DB) repositories.FeedbackRequestRepository {
	return repositories.NewFeedbackRequestRepository(db)
}

func provideRequestService(
	requestRepo repositories.FeedbackRequestRepository,
	userRepo repositories.UserRepository,
) services.FeedbackRequestServiceInterface {
	return services.NewFeedbackRequestService(requestRepo, userRepo)
}
