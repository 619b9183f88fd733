package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"coursehub/config"
	aiController "coursehub/controllers/ai"
	"coursehub/utils"
)

// SetupAIRoutes registers the AI course-suggestion endpoint.
func SetupAIRoutes(app *fiber.App) {
	cfg := config.AppConfig
	client := utils.NewChatClient(
		cfg.OpenAIKey,
		cfg.OpenAIBaseURL,
		cfg.OpenAIModel,
		time.Duration(cfg.AITimeoutSec)*time.Second,
	)
	ctrl := aiController.NewGenerateController(client)
	app.Group("/api").Post("/ai/generate-course", ctrl.GenerateCourse)
}
