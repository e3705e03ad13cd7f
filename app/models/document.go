package models

import "time"

// Document represents an uploaded file belonging to a user. The payload is
// either stored inline (base64 in FileData) or in an external blob store
// under StorageKey, depending on the configured storage backend.
type Document struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Name        string           `json:"name"`
	ContentType string           `json:"content_type"`
	Category    DocumentCategory `json:"category"`
	FileData    string           `json:"file_data,omitempty"`
	StorageKey  string           `json:"-"`
	SizeBytes   int64            `json:"size_bytes"`
	UploadedAt  time.Time        `json:"uploaded_at"`
	// ExpiresAt is set for personal documents with a validity period.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}
