package controllers

import (
	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"
	documents_repositories "dealership-backend/documents/repositories"
	"dealership-backend/documents/validators"
	"dealership-backend/middleware"
	"dealership-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentController handles file uploads and their metadata records.
type DocumentController struct {
	DocumentRepo documents_repositories.DocumentRepository
	Storage      utils.FileStorage
}

// UploadDocumentController accepts a multipart upload tagged with its
// owner record and media kind.
func (dc *DocumentController) UploadDocumentController(c *fiber.Ctx) error {
	ownerType := models.OwnerEntity(c.FormValue("owner_type"))
	ownerID := c.FormValue("owner_id")
	kind := models.MediaKind(c.FormValue("kind"))

	if err := validators.ValidateOwner(ownerType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "owner_id must be a valid id",
		})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A file is required",
		})
	}
	if err := validators.ValidateUpload(header, kind); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	file, err := header.Open()
	if err != nil {
		config.Logger.Error("Failed to open uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read uploaded file",
		})
	}
	defer file.Close()

	filePath, err := dc.Storage.UploadFile(file, string(kind), header.Filename)
	if err != nil {
		config.Logger.Error("Failed to store uploaded file",
			zap.String("file_name", header.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not store uploaded file",
		})
	}

	doc := &models.MediaDocument{
		OwnerType:   ownerType,
		OwnerID:     ownerUUID,
		Kind:        kind,
		FileName:    header.Filename,
		FilePath:    filePath,
		FileSize:    header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
	if payload := middleware.AuthPayload(c); payload != nil {
		doc.CreatedBy = payload.Email
	}

	created, err := dc.DocumentRepo.CreateDocument(doc)
	if err != nil {
		// Metadata write failed; reap the orphaned file.
		if delErr := dc.Storage.DeleteFile(filePath); delErr != nil {
			config.Logger.Warn("Failed to remove orphaned upload",
				zap.String("file_path", filePath), zap.Error(delErr))
		}
		config.Logger.Error("Failed to create document record", zap.Error(err))
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Document uploaded",
		"document": created,
	})
}

// GetDocumentsByOwnerController lists every document attached to a
// record.
func (dc *DocumentController) GetDocumentsByOwnerController(c *fiber.Ctx) error {
	ownerType := models.OwnerEntity(c.Params("ownerType"))
	if err := validators.ValidateOwner(ownerType); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	docs, err := dc.DocumentRepo.GetDocumentsByOwner(ownerType, c.Params("ownerId"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"documents": docs})
}

// DownloadDocumentController streams the stored file.
func (dc *DocumentController) DownloadDocumentController(c *fiber.Ctx) error {
	doc, err := dc.DocumentRepo.GetDocumentByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	reader, err := dc.Storage.DownloadFile(doc.FilePath)
	if err != nil {
		config.Logger.Error("Failed to open stored file",
			zap.String("file_path", doc.FilePath), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not read stored file",
		})
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.FileName+`"`)
	return c.SendStream(reader)
}

// DeleteDocumentController removes both the metadata record and the
// stored file.
func (dc *DocumentController) DeleteDocumentController(c *fiber.Ctx) error {
	doc, err := dc.DocumentRepo.GetDocumentByID(c.Params("id"))
	if err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := dc.DocumentRepo.DeleteDocument(doc.ID.String()); err != nil {
		return c.Status(apperrors.StatusCode(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := dc.Storage.DeleteFile(doc.FilePath); err != nil {
		config.Logger.Warn("Failed to delete stored file",
			zap.String("file_path", doc.FilePath), zap.Error(err))
	}

	return c.JSON(fiber.Map{"message": "Document deleted"})
}
