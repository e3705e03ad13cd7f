package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/alerts"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/dashboard"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/documents"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/investments"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/policies"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/settings"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/services"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/storage"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Policy Pal",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Policy Pal",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Policy Pal",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize configuration and database
	config.Init()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Document payload storage backend
	blobs, err := storage.NewFromConfig(context.Background(), config.AppConfig.Storage)
	if err != nil {
		log.Fatal("Failed to initialize document storage:", err)
	}

	// Watch row changes and keep alert priorities current
	watcher, err := database.NewWatcher(config.AppConfig.Database.URL)
	if err != nil {
		log.Fatal("Failed to start change watcher:", err)
	}
	defer watcher.Close()

	stopSweeper := services.StartAlertSweeper(config.GetDB(), watcher)
	defer stopSweeper()

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/auth/login")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup policies routes
	policies.SetupPoliciesRoutes(app)

	// Setup investments routes
	investments.SetupInvestmentsRoutes(app)

	// Setup alerts routes
	alerts.SetupAlertsRoutes(app)

	// Setup documents routes
	documents.SetupDocumentsRoutes(app, blobs)

	// Setup settings routes
	settings.SetupSettingsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on", config.AppConfig.Server.Addr)
	log.Fatal(app.Listen(config.AppConfig.Server.Addr))
}
