package policies

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func SetupPoliciesRoutes(app *fiber.App) {
	api := app.Group("/api/policies", auth.AuthMiddleware)

	api.Get("/", GetPoliciesAPI)
	api.Post("/", CreatePolicyAPI)
	api.Delete("/:id", DeletePolicyAPI)
}
