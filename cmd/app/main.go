package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"teampulse/cmd/fx/account_fx"
	"teampulse/cmd/fx/controllers_fx"
	"teampulse/cmd/fx/dashboard_fx"
	"teampulse/cmd/fx/db_fx"
	"teampulse/cmd/fx/feedback_fx"
	"teampulse/cmd/fx/feedback_request_fx"
	"teampulse/internal/api/controllers"
	"teampulse/internal/models/db_models"
	"teampulse/pkg/logger"
	"teampulse/pkg/middleware"
	"teampulse/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer logger.Sync()

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		feedback_fx.Module,
		feedback_request_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logger.Infof("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					logger.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	feedbackController *controllers.FeedbackController,
	requestController *controllers.FeedbackRequestController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, feedbackController, requestController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	feedbackController *controllers.FeedbackController,
	requestController *controllers.FeedbackRequestController,
	dashboardController *controllers.DashboardController) {

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "Feedback service is running")
	})

	auth := r.Group("/auth")
	auth.POST("/login", accountController.Login)
	auth.POST("/register", accountController.Register)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		authed.GET("/me", accountController.GetMe)

		// open comment policy: any authenticated user
		authed.POST("/feedback/:id/comment", feedbackController.AddComment)
		authed.GET("/feedback/:id/comments", feedbackController.ListComments)

		// visibility is decided per caller inside the service
		authed.GET("/feedback/:id", feedbackController.ListFeedback)
	}

	managers := r.Group("/")
	managers.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleManager))
	{
		managers.GET("/team", accountController.GetTeam)
		managers.POST("/feedback", feedbackController.CreateFeedback)
		managers.PUT("/feedback/:id", feedbackController.UpdateFeedback)
		managers.DELETE("/feedback/:id", feedbackController.DeleteFeedback)
		managers.GET("/dashboard/manager", dashboardController.ManagerDashboard)
		managers.GET("/feedback-requests", requestController.ListRequests)
		managers.POST("/feedback-request/:id/fulfill", requestController.FulfillRequest)
	}

	employees := r.Group("/")
	employees.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleEmployee))
	{
		employees.POST("/feedback/:id/acknowledge", feedbackController.AcknowledgeFeedback)
		employees.POST("/feedback-request", requestController.CreateRequest)
	}
}
