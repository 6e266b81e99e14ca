package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StringPtr returns a pointer to the string value
func StringPtr(s string) *string {
	return &s
}

// FormatQuotationNumber derives a human-readable quotation reference
// from the record id and its creation year.
func FormatQuotationNumber(id uuid.UUID, createdAt time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("QTN-%d-%s", createdAt.Year(), short)
}
