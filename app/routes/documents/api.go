package documents

import (
	"database/sql"
	"encoding/base64"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
)

const dateLayout = "2006-01-02"

// GetDocumentsAPI returns the caller's document metadata without
// payloads.
func GetDocumentsAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	docs, err := database.GetDocuments(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch documents",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"documents": docs,
	})
}

// GetDocumentContentAPI returns one document including its base64
// payload, fetched from the blob store when a key is set.
func GetDocumentContentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	docID := c.Params("id")

	doc, err := database.GetDocumentByID(config.GetDB(), userID, docID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Document not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch document",
		})
	}

	if doc.StorageKey != "" && blobs != nil {
		data, err := blobs.Get(c.Context(), doc.StorageKey)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to fetch document content",
			})
		}
		doc.FileData = base64.StdEncoding.EncodeToString(data)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"document": doc,
	})
}

// UploadDocumentAPI stores a new document. The payload arrives base64
// encoded; it goes to the blob store when one is configured, otherwise it
// stays inline in the row.
func UploadDocumentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	type UploadRequest struct {
		Name        string `json:"name"`
		ContentType string `json:"content_type"`
		Category    string `json:"category"`
		FileData    string `json:"file_data"`
		ExpiresAt   string `json:"expires_at"`
	}

	var req UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Name == "" || req.FileData == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Name and file data are required",
		})
	}

	payload, err := base64.StdEncoding.DecodeString(req.FileData)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "File data must be base64 encoded",
		})
	}

	doc := &models.Document{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        req.Name,
		ContentType: req.ContentType,
		Category:    models.DocumentCategory(req.Category),
		SizeBytes:   int64(len(payload)),
	}
	if req.ExpiresAt != "" {
		expires, err := time.Parse(dateLayout, req.ExpiresAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid expiry date",
			})
		}
		doc.ExpiresAt = expires
	}

	if blobs != nil {
		doc.StorageKey = userID + "/" + doc.ID
		if err := blobs.Put(c.Context(), doc.StorageKey, payload); err != nil {
			log.Printf("Failed to store payload for document %s: %v", doc.ID, err)
			return c.Status(500).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to store document",
			})
		}
	} else {
		doc.FileData = req.FileData
	}

	if err := database.CreateDocument(config.GetDB(), doc); err != nil {
		// Don't leave an orphaned blob behind.
		if doc.StorageKey != "" && blobs != nil {
			if derr := blobs.Delete(c.Context(), doc.StorageKey); derr != nil {
				log.Printf("Failed to clean up blob %s: %v", doc.StorageKey, derr)
			}
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to store document",
		})
	}

	// Metadata only in the response; clients re-fetch content on demand.
	doc.FileData = ""
	return c.JSON(fiber.Map{
		"success":  true,
		"document": doc,
	})
}

// DeleteDocumentAPI removes a document and, when present, its external
// payload.
func DeleteDocumentAPI(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	docID := c.Params("id")

	doc, err := database.GetDocumentByID(config.GetDB(), userID, docID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{
				"success": false,
				"error":   "Document not found",
			})
		}
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch document",
		})
	}

	if err := database.DeleteDocument(config.GetDB(), userID, docID); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete document",
		})
	}

	if doc.StorageKey != "" && blobs != nil {
		if err := blobs.Delete(c.Context(), doc.StorageKey); err != nil {
			// The row is gone; a stray blob is only storage waste.
			log.Printf("Failed to delete blob %s: %v", doc.StorageKey, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Document deleted successfully",
	})
}
