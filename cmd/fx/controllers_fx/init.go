package controllers_fx

import (
	"go.uber.org/fx"

	"teampulse/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewFeedbackController),
	fx.Provide(controllers.NewFeedbackRequestController),
	fx.Provide(controllers.NewDashboardController))
