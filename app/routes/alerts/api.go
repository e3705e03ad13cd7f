package alerts

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/finance"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

const dateLayout = "2006-01-02"

type alertRequest struct {
	Type            string `json:"type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DueDate         string `json:"due_date"`
	Priority        string `json:"priority"`
	RelatedItemID   string `json:"related_item_id"`
	RelatedItemType string `json:"related_item_type"`
}

// toModel validates the request and fills an alert. When the due date is
// set, the stored priority is derived from it; a client-supplied tier
// would be corrected by the next sweep anyway.
func (req alertRequest) toModel(userID string, now time.Time) (*models.Alert, error) {
	alert := &models.Alert{
		UserID:          userID,
		Type:            models.AlertType(req.Type),
		Title:           req.Title,
		Description:     req.Description,
		Priority:        models.AlertPriority(req.Priority),
		RelatedItemID:   req.RelatedItemID,
		RelatedItemType: models.RelatedItemType(req.RelatedItemType),
	}
	if req.DueDate != "" {
		dueDate, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return nil, err
		}
		alert.DueDate = dueDate
		alert.Priority = finance.PriorityFor(dueDate, now)
	}
	if alert.Priority == "" {
		alert.Priority = models.PriorityMedium
	}
	return alert, nil
}

// GetAlertsAPI returns the caller's alerts.
func GetAlertsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	alerts, err := database.GetAlerts(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch alerts",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"alerts":  alerts,
	})
}

// CreateAlertAPI creates an alert for the caller.
func CreateAlertAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req alertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Title == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Title is required",
		})
	}

	alert, err := req.toModel(userID, time.Now())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid due date",
		})
	}

	if err := database.CreateAlert(config.GetDB(), alert); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create alert",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"alert":   alert,
	})
}

// UpdateAlertAPI overwrites one of the caller's alerts.
func UpdateAlertAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	alertID := c.Params("id")

	var req alertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	alert, err := req.toModel(userID, time.Now())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid due date",
		})
	}
	alert.ID = alertID

	if err := database.UpdateAlert(config.GetDB(), alert); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Alert not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update alert",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Alert updated successfully",
	})
}

// DeleteAlertAPI deletes one of the caller's alerts.
func DeleteAlertAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	alertID := c.Params("id")

	if err := database.DeleteAlert(config.GetDB(), userID, alertID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Alert not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete alert",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Alert deleted successfully",
	})
}
