package database

import (
	"database/sql"
	"time"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// nullDate maps a zero time to SQL NULL for nullable date columns.
func nullDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

// nullStr maps an empty string to SQL NULL for nullable columns.
func nullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// CreateAlert inserts a new alert for its owner.
func CreateAlert(db *sql.DB, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (user_id, type, title, description, due_date, priority,
			related_item_id, related_item_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`
	return db.QueryRow(
		query,
		alert.UserID,
		alert.Type,
		alert.Title,
		alert.Description,
		nullDate(alert.DueDate),
		alert.Priority,
		nullStr(alert.RelatedItemID),
		nullStr(string(alert.RelatedItemType)),
	).Scan(&alert.ID, &alert.CreatedAt)
}

// GetAlerts retrieves all alerts owned by a user, soonest due first.
func GetAlerts(db *sql.DB, userID string) ([]models.Alert, error) {
	query := `
		SELECT id, user_id, type, title, description, due_date, priority,
			related_item_id, related_item_type, created_at
		FROM alerts
		WHERE user_id = $1
		ORDER BY due_date ASC NULLS LAST, created_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var a models.Alert
		var dueDate sql.NullTime
		var relatedID, relatedType sql.NullString
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description,
			&dueDate, &a.Priority, &relatedID, &relatedType, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		if dueDate.Valid {
			a.DueDate = dueDate.Time
		}
		a.RelatedItemID = relatedID.String
		a.RelatedItemType = models.RelatedItemType(relatedType.String)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// UpdateAlert overwrites an alert's editable fields, scoped to its owner.
func UpdateAlert(db *sql.DB, alert *models.Alert) error {
	query := `
		UPDATE alerts
		SET type = $1, title = $2, description = $3, due_date = $4, priority = $5,
			related_item_id = $6, related_item_type = $7
		WHERE id = $8 AND user_id = $9
	`
	res, err := db.Exec(
		query,
		alert.Type,
		alert.Title,
		alert.Description,
		nullDate(alert.DueDate),
		alert.Priority,
		nullStr(alert.RelatedItemID),
		nullStr(string(alert.RelatedItemType)),
		alert.ID,
		alert.UserID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateAlertPriority writes only the priority column of one alert. This
// is the partial update issued by the priority sweep.
func UpdateAlertPriority(db *sql.DB, alertID string, priority models.AlertPriority) error {
	query := `UPDATE alerts SET priority = $1 WHERE id = $2`
	_, err := db.Exec(query, priority, alertID)
	return err
}

// DeleteAlert removes an alert, scoped to its owner.
func DeleteAlert(db *sql.DB, userID, alertID string) error {
	query := `DELETE FROM alerts WHERE id = $1 AND user_id = $2`
	res, err := db.Exec(query, alertID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetAlertUserIDs returns the distinct owners of all alerts. The daily
// sweep walks this list.
func GetAlertUserIDs(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT user_id FROM alerts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
