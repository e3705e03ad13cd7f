package alerts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func SetupAlertsRoutes(app *fiber.App) {
	api := app.Group("/api/alerts", auth.AuthMiddleware)

	api.Get("/", GetAlertsAPI)
	api.Post("/", CreateAlertAPI)
	api.Put("/:id", UpdateAlertAPI)
	api.Delete("/:id", DeleteAlertAPI)
}
