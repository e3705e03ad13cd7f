package database

import (
	"database/sql"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// CreatePolicy inserts a new policy for its owner.
func CreatePolicy(db *sql.DB, policy *models.Policy) error {
	query := `
		INSERT INTO policies (user_id, name, type, provider, policy_number, start_date, expiry_date,
			premium, premium_frequency, coverage, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		RETURNING id, created_at
	`
	return db.QueryRow(
		query,
		policy.UserID,
		policy.Name,
		policy.Type,
		policy.Provider,
		policy.PolicyNumber,
		policy.StartDate,
		policy.ExpiryDate,
		policy.Premium,
		policy.PremiumFrequency,
		policy.Coverage,
		policy.Status,
		policy.Notes,
	).Scan(&policy.ID, &policy.CreatedAt)
}

// GetPolicies retrieves all policies owned by a user, newest first.
func GetPolicies(db *sql.DB, userID string) ([]models.Policy, error) {
	query := `
		SELECT id, user_id, name, type, provider, policy_number, start_date, expiry_date,
			premium, premium_frequency, coverage, status, notes, created_at
		FROM policies
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		var p models.Policy
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Type, &p.Provider, &p.PolicyNumber,
			&p.StartDate, &p.ExpiryDate, &p.Premium, &p.PremiumFrequency,
			&p.Coverage, &p.Status, &p.Notes, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// DeletePolicy removes a policy, scoped to its owner.
func DeletePolicy(db *sql.DB, userID, policyID string) error {
	query := `DELETE FROM policies WHERE id = $1 AND user_id = $2`
	res, err := db.Exec(query, policyID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
