package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"deenly-backend/config"
	"deenly-backend/controllers"
	"deenly-backend/services"
	"deenly-backend/utils"
)

func SetupRouter(log *zap.Logger, dispatch *services.DispatchService, nudge *services.NudgeService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Client-Info", "Apikey"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger(log))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		notifications := api.Group("/notifications")
		{
			notifications.GET("/settings", controllers.GetNotificationSettings)
			notifications.PUT("/settings", controllers.UpdateNotificationSettings)
			notifications.POST("/subscriptions", controllers.RegisterSubscription)
			notifications.DELETE("/subscriptions", controllers.DeactivateSubscription)
			notifications.POST("/expo-token", controllers.SetExpoToken)
		}
	}

	// Scheduled-job triggers, hit by the external cron scheduler.
	notify := controllers.NotifyController{Dispatch: dispatch, Nudge: nudge}
	jobs := r.Group("/jobs")
	jobs.Use(utils.CronAuthMiddleware(log))
	{
		jobs.POST("/send-scheduled-notifications", notify.SendScheduledNotifications)
		jobs.POST("/send-daily-nudge", notify.SendDailyNudge)
	}

	return r
}
