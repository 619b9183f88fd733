package analyticsController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub/middleware"
	"coursehub/services"
)

// DashboardController exposes the analytics aggregates.
type DashboardController struct {
	analytics *services.AnalyticsService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{analytics: services.NewAnalyticsService(db)}
}

// GetDashboard computes totals, category distribution, the 30-day
// enrollment trend and the top courses, freshly per request.
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := ctrl.analytics.Dashboard()
	if err != nil {
		return middleware.ServiceError(c, err)
	}
	return c.JSON(dashboard)
}
