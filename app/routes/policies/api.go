package policies

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/finance"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

const dateLayout = "2006-01-02"

// GetPoliciesAPI returns the caller's policies with freshly derived
// status. Status is stored at creation but re-derived on read so a
// policy nearing expiry never shows a stale "active".
func GetPoliciesAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	policies, err := database.GetPolicies(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch policies",
		})
	}

	now := time.Now()
	for i := range policies {
		if !policies[i].ExpiryDate.IsZero() {
			policies[i].Status = finance.PolicyStatusFor(policies[i].ExpiryDate, now)
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"policies": policies,
	})
}

// CreatePolicyAPI creates a policy and, when its expiry is more than 30
// days out, a companion renewal alert. The two writes are independent: a
// failed alert insert is logged and the policy stands.
func CreatePolicyAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type PolicyRequest struct {
		Name             string          `json:"name"`
		Type             string          `json:"type"`
		Provider         string          `json:"provider"`
		PolicyNumber     string          `json:"policy_number"`
		StartDate        string          `json:"start_date"`
		ExpiryDate       string          `json:"expiry_date"`
		Premium          decimal.Decimal `json:"premium"`
		PremiumFrequency string          `json:"premium_frequency"`
		Coverage         decimal.Decimal `json:"coverage"`
		Notes            string          `json:"notes"`
	}

	var req PolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Name == "" || req.Provider == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Name and provider are required",
		})
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid start date",
		})
	}
	expiryDate, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid expiry date",
		})
	}

	now := time.Now()
	policy := &models.Policy{
		UserID:           userID,
		Name:             req.Name,
		Type:             models.PolicyType(req.Type),
		Provider:         req.Provider,
		PolicyNumber:     req.PolicyNumber,
		StartDate:        startDate,
		ExpiryDate:       expiryDate,
		Premium:          req.Premium,
		PremiumFrequency: models.PremiumFrequency(req.PremiumFrequency),
		Coverage:         req.Coverage,
		Status:           finance.PolicyStatusFor(expiryDate, now),
		Notes:            req.Notes,
	}

	db := config.GetDB()
	if err := database.CreatePolicy(db, policy); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create policy",
		})
	}

	if alert := finance.RenewalAlertFor(*policy, now); alert != nil {
		if err := database.CreateAlert(db, alert); err != nil {
			// No rollback of the policy; the alert simply goes missing.
			log.Printf("Failed to create renewal alert for policy %s: %v", policy.ID, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"policy":  policy,
	})
}

// DeletePolicyAPI deletes one of the caller's policies.
func DeletePolicyAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	policyID := c.Params("id")

	if err := database.DeletePolicy(config.GetDB(), userID, policyID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Policy not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete policy",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Policy deleted successfully",
	})
}
