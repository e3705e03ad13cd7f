package documents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/storage"
)

// blobs is the external payload store; nil means payloads stay inline in
// the documents table.
var blobs storage.BlobStore

func SetupDocumentsRoutes(app *fiber.App, store storage.BlobStore) {
	blobs = store

	api := app.Group("/api/documents", auth.AuthMiddleware)

	api.Get("/", GetDocumentsAPI)
	api.Get("/:id/content", GetDocumentContentAPI)
	api.Post("/", UploadDocumentAPI)
	api.Delete("/:id", DeleteDocumentAPI)
}
