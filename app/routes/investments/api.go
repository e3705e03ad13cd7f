package investments

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/finance"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

const dateLayout = "2006-01-02"

// investmentView is an investment plus its derived profit.
type investmentView struct {
	models.Investment
	Profit decimal.Decimal `json:"profit"`
}

// GetInvestmentsAPI returns the caller's investments with derived profit.
func GetInvestmentsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	investments, err := database.GetInvestments(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch investments",
		})
	}

	views := make([]investmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, investmentView{Investment: inv, Profit: finance.Profit(inv)})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"investments": views,
	})
}

// CreateInvestmentAPI creates an investment, deriving its status from the
// return percentage.
func CreateInvestmentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type InvestmentRequest struct {
		Name                string              `json:"name"`
		Type                string              `json:"type"`
		Provider            string              `json:"provider"`
		AccountNumber       string              `json:"account_number"`
		StartDate           string              `json:"start_date"`
		CurrentValue        decimal.Decimal     `json:"current_value"`
		TotalContributions  decimal.Decimal     `json:"total_contributions"`
		MonthlyContribution decimal.NullDecimal `json:"monthly_contribution"`
		ReturnPercentage    float64             `json:"return_percentage"`
		Notes               string              `json:"notes"`
	}

	var req InvestmentRequest
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

	inv := &models.Investment{
		UserID:              userID,
		Name:                req.Name,
		Type:                models.InvestmentType(req.Type),
		Provider:            req.Provider,
		AccountNumber:       req.AccountNumber,
		StartDate:           startDate,
		CurrentValue:        req.CurrentValue,
		TotalContributions:  req.TotalContributions,
		MonthlyContribution: req.MonthlyContribution,
		ReturnPercentage:    req.ReturnPercentage,
		Status:              finance.InvestmentStatusFor(req.ReturnPercentage),
		Notes:               req.Notes,
	}

	if err := database.CreateInvestment(config.GetDB(), inv); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create investment",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"investment": investmentView{Investment: *inv, Profit: finance.Profit(*inv)},
	})
}

// DeleteInvestmentAPI deletes one of the caller's investments.
func DeleteInvestmentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	investmentID := c.Params("id")

	if err := database.DeleteInvestment(config.GetDB(), userID, investmentID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Investment not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete investment",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Investment deleted successfully",
	})
}
