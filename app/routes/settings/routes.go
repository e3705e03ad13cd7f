package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func SetupSettingsRoutes(app *fiber.App) {
	api := app.Group("/api/settings", auth.AuthMiddleware)

	api.Get("/preferences", GetPreferencesAPI)
	api.Put("/preferences", UpdatePreferencesAPI)
}
