package feedback_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"teampulse/internal/repositories"
	"teampulse/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideCommentRepo, provideFeedbackService)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepository {
	return repositories.NewFeedbackRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.FeedbackCommentRepository {
	return repositories.NewFeedbackCommentRepository(db)
}

func provideFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	commentRepo repositories.FeedbackCommentRepository,
	userRepo repositories.UserRepository,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(feedbackRepo, commentRepo, userRepo)
}
