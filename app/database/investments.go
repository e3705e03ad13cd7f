package database

import (
	"database/sql"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// CreateInvestment inserts a new investment for its owner.
func CreateInvestment(db *sql.DB, inv *models.Investment) error {
	query := `
		INSERT INTO investments (user_id, name, type, provider, account_number, start_date,
			current_value, total_contributions, monthly_contribution, return_percentage, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`
	return db.QueryRow(
		query,
		inv.UserID,
		inv.Name,
		inv.Type,
		inv.Provider,
		inv.AccountNumber,
		inv.StartDate,
		inv.CurrentValue,
		inv.TotalContributions,
		inv.MonthlyContribution,
		inv.ReturnPercentage,
		inv.Status,
		inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt)
}

// GetInvestments retrieves all investments owned by a user, newest first.
func GetInvestments(db *sql.DB, userID string) ([]models.Investment, error) {
	query := `
		SELECT id, user_id, name, type, provider, account_number, start_date,
			current_value, total_contributions, monthly_contribution, return_percentage, status, notes, created_at
		FROM investments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var inv models.Investment
		if err := rows.Scan(
			&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Provider, &inv.AccountNumber,
			&inv.StartDate, &inv.CurrentValue, &inv.TotalContributions, &inv.MonthlyContribution,
			&inv.ReturnPercentage, &inv.Status, &inv.Notes, &inv.CreatedAt,
		); err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

// DeleteInvestment removes an investment, scoped to its owner.
func DeleteInvestment(db *sql.DB, userID, investmentID string) error {
	query := `DELETE FROM investments WHERE id = $1 AND user_id = $2`
	res, err := db.Exec(query, investmentID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
