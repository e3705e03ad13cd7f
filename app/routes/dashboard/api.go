package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/finance"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// ShowDashboardPage renders the dashboard shell; the page fetches its
// numbers from the stats API.
func ShowDashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Policy Pal",
		"CurrentPage": "dashboard",
		"user":        user,
		"FirstName":   user.FirstName,
	})
}

// GetStatsAPI computes the caller's summary aggregates and portfolio
// allocation. Everything is recomputed from the current collections on
// each call; nothing here is cached or persisted.
func GetStatsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	db := config.GetDB()

	policies, err := database.GetPolicies(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch policies",
		})
	}
	investments, err := database.GetInvestments(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch investments",
		})
	}
	documentsCount, err := database.GetDocumentCount(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to count documents",
		})
	}

	summary := finance.Summarize(policies, investments, documentsCount, time.Now())

	return c.JSON(fiber.Map{
		"success":    true,
		"summary":    summary,
		"allocation": finance.Allocations(investments),
	})
}

// SearchAPI filters the caller's three collections by the q parameter.
// An empty query returns everything.
func SearchAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")
	db := config.GetDB()

	policies, err := database.GetPolicies(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch policies",
		})
	}
	investments, err := database.GetInvestments(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch investments",
		})
	}
	alerts, err := database.GetAlerts(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch alerts",
		})
	}

	now := time.Now()
	for i := range policies {
		if !policies[i].ExpiryDate.IsZero() {
			policies[i].Status = finance.PolicyStatusFor(policies[i].ExpiryDate, now)
		}
	}

	result := finance.Search(query, policies, investments, alerts)

	return c.JSON(fiber.Map{
		"success":     true,
		"policies":    result.Policies,
		"investments": result.Investments,
		"alerts":      result.Alerts,
	})
}
