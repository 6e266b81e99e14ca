package validators

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"dealership-backend/db/models"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// Allowed extensions per media kind. KYC scans arrive as photos or
// PDFs; brochures are PDF only.
var allowedExtensions = map[models.MediaKind][]string{
	models.MediaKYC:      {".pdf", ".jpg", ".jpeg", ".png"},
	models.MediaPhoto:    {".jpg", ".jpeg", ".png", ".webp"},
	models.MediaBrochure: {".pdf"},
}

// ValidateUpload rejects oversized files, unknown media kinds and
// extensions that do not belong to the kind.
func ValidateUpload(header *multipart.FileHeader, kind models.MediaKind) error {
	if header.Size > maxUploadBytes {
		return fmt.Errorf("file exceeds the %d MB upload limit", maxUploadBytes>>20)
	}

	allowed, ok := allowedExtensions[kind]
	if !ok {
		return fmt.Errorf("unknown media kind %q", kind)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return fmt.Errorf("file type %q is not allowed for %s uploads", ext, kind)
}

// ValidateOwner checks the owner entity tag.
func ValidateOwner(ownerType models.OwnerEntity) error {
	switch ownerType {
	case models.OwnerLead, models.OwnerProduct, models.OwnerBooking, models.OwnerUser:
		return nil
	}
	return fmt.Errorf("unknown owner type %q", ownerType)
}
