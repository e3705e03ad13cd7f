package database

import (
	"database/sql"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

// CreateDocument inserts a document row. The ID is assigned by the caller
// so external storage backends can key the payload before the insert.
func CreateDocument(db *sql.DB, doc *models.Document) error {
	query := `
		INSERT INTO documents (id, user_id, name, content_type, category, file_data,
			storage_key, size_bytes, uploaded_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9)
		RETURNING uploaded_at
	`
	return db.QueryRow(
		query,
		doc.ID,
		doc.UserID,
		doc.Name,
		doc.ContentType,
		doc.Category,
		doc.FileData,
		doc.StorageKey,
		doc.SizeBytes,
		nullDate(doc.ExpiresAt),
	).Scan(&doc.UploadedAt)
}

// GetDocuments retrieves a user's document metadata, newest first. The
// inline payload is not loaded here; use GetDocumentByID for content.
func GetDocuments(db *sql.DB, userID string) ([]models.Document, error) {
	query := `
		SELECT id, user_id, name, content_type, category, storage_key, size_bytes, uploaded_at, expires_at
		FROM documents
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		var expires sql.NullTime
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Name, &d.ContentType, &d.Category,
			&d.StorageKey, &d.SizeBytes, &d.UploadedAt, &expires,
		); err != nil {
			return nil, err
		}
		if expires.Valid {
			d.ExpiresAt = expires.Time
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// GetDocumentByID retrieves one document including its inline payload,
// scoped to its owner.
func GetDocumentByID(db *sql.DB, userID, docID string) (*models.Document, error) {
	doc := &models.Document{}
	var expires sql.NullTime
	query := `
		SELECT id, user_id, name, content_type, category, file_data, storage_key, size_bytes, uploaded_at, expires_at
		FROM documents
		WHERE id = $1 AND user_id = $2
	`
	err := db.QueryRow(query, docID, userID).Scan(
		&doc.ID, &doc.UserID, &doc.Name, &doc.ContentType, &doc.Category,
		&doc.FileData, &doc.StorageKey, &doc.SizeBytes, &doc.UploadedAt, &expires,
	)
	if err != nil {
		return nil, err
	}
	if expires.Valid {
		doc.ExpiresAt = expires.Time
	}
	return doc, nil
}

// DeleteDocument removes a document row, scoped to its owner.
func DeleteDocument(db *sql.DB, userID, docID string) error {
	query := `DELETE FROM documents WHERE id = $1 AND user_id = $2`
	res, err := db.Exec(query, docID, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetDocumentCount returns how many documents a user has stored.
func GetDocumentCount(db *sql.DB, userID string) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM documents WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
