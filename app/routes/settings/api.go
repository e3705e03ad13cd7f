package settings

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// GetPreferencesAPI returns the caller's presentation preferences,
// defaults included when nothing has been saved yet.
func GetPreferencesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	prefs, err := database.GetPreferences(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch preferences",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"preferences": prefs,
	})
}

// UpdatePreferencesAPI saves the caller's presentation preferences. This
// is the single setter through which the money-visibility and theme
// toggles change.
func UpdatePreferencesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type PreferencesRequest struct {
		MoneyVisible bool   `json:"money_visible"`
		Theme        string `json:"theme"`
	}

	var req PreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Theme == "" {
		req.Theme = "dark"
	}

	prefs := &models.Preferences{
		UserID:       userID,
		MoneyVisible: req.MoneyVisible,
		Theme:        req.Theme,
	}
	if err := database.UpsertPreferences(config.GetDB(), prefs); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update preferences",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"preferences": prefs,
	})
}
