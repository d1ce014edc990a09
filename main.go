package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"deenly-backend/config"
	"deenly-backend/models"
	"deenly-backend/routes"
	"deenly-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Profile{},
		&models.NotificationSetting{},
		&models.PushSubscription{},
		&models.NotificationLog{},
	)
}

func main() {
	logger, err := config.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	store := services.NewStore(config.DB)
	catalog := services.NewMessageCatalog()
	times := services.NewAladhanClient(os.Getenv("ALADHAN_URL"))
	expo := services.NewExpoClient(os.Getenv("EXPO_PUSH_URL"))
	webpush := services.NewWebPushClient(logger)
	sms := services.NewSMSClient()
	generator := services.NewOpenAIGenerator(os.Getenv("OPENAI_API_KEY"))

	dispatch := services.NewDispatchService(store, times, catalog, expo, webpush, sms, logger)
	nudge := services.NewNudgeService(store, generator, expo, logger)

	scheduler := services.NewScheduler(dispatch, nudge, logger)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(logger, dispatch, nudge)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
