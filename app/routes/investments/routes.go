package investments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func SetupInvestmentsRoutes(app *fiber.App) {
	api := app.Group("/api/investments", auth.AuthMiddleware)

	api.Get("/", GetInvestmentsAPI)
	api.Post("/", CreateInvestmentAPI)
	api.Delete("/:id", DeleteInvestmentAPI)
}
