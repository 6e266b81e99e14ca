package validators

import (
	"mime/multipart"
	"testing"

	"dealership-backend/db/models"

	"github.com/stretchr/testify/assert"
)

func header(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestValidateUpload(t *testing.T) {
	assert.NoError(t, ValidateUpload(header("pan-card.pdf", 1<<20), models.MediaKYC))
	assert.NoError(t, ValidateUpload(header("aadhaar.JPG", 1<<20), models.MediaKYC))
	assert.NoError(t, ValidateUpload(header("showroom.webp", 1<<20), models.MediaPhoto))
	assert.NoError(t, ValidateUpload(header("altura-2026.pdf", 5<<20), models.MediaBrochure))

	// Wrong extension for the kind.
	assert.Error(t, ValidateUpload(header("brochure.docx", 1<<20), models.MediaBrochure))
	assert.Error(t, ValidateUpload(header("photo.pdf", 1<<20), models.MediaPhoto))

	// Oversized.
	assert.Error(t, ValidateUpload(header("scan.pdf", 11<<20), models.MediaKYC))

	// Unknown kind.
	assert.Error(t, ValidateUpload(header("x.pdf", 1), models.MediaKind("video")))
}

func TestValidateOwner(t *testing.T) {
	assert.NoError(t, ValidateOwner(models.OwnerLead))
	assert.NoError(t, ValidateOwner(models.OwnerBooking))
	assert.Error(t, ValidateOwner(models.OwnerEntity("invoice")))
}
