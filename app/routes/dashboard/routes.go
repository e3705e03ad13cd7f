package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/dashboard", auth.AuthMiddleware, ShowDashboardPage)

	api := app.Group("/api/dashboard", auth.AuthMiddleware)
	api.Get("/stats", GetStatsAPI)

	app.Get("/api/search", auth.AuthMiddleware, SearchAPI)
}
