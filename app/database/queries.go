package database

import (
	"database/sql"
	"time"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user. The password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, first_name, last_name)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, is_active, created_at, updated_at`
	return db.QueryRow(query, user.Email, user.Password, user.FirstName, user.LastName).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

// GetPreferences returns the user's presentation settings, falling back
// to defaults when no row exists yet.
func GetPreferences(db *sql.DB, userID string) (*models.Preferences, error) {
	prefs := &models.Preferences{UserID: userID, MoneyVisible: true, Theme: "dark"}
	query := `SELECT money_visible, theme, updated_at FROM preferences WHERE user_id = $1`

	err := db.QueryRow(query, userID).Scan(&prefs.MoneyVisible, &prefs.Theme, &prefs.UpdatedAt)
	if err == sql.ErrNoRows {
		return prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func UpsertPreferences(db *sql.DB, prefs *models.Preferences) error {
	query := `
		INSERT INTO preferences (user_id, money_visible, theme, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET money_visible = EXCLUDED.money_visible, theme = EXCLUDED.theme, updated_at = NOW()
	`
	_, err := db.Exec(query, prefs.UserID, prefs.MoneyVisible, prefs.Theme)
	return err
}
