package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaginationParams(t *testing.T) {
	assert.NoError(t, ValidatePaginationParams(PaginationParams{Page: 1, PageSize: 10}))
	assert.NoError(t, ValidatePaginationParams(PaginationParams{Page: 7, PageSize: 100}))

	assert.Error(t, ValidatePaginationParams(PaginationParams{Page: 0, PageSize: 10}))
	assert.Error(t, ValidatePaginationParams(PaginationParams{Page: 1, PageSize: 0}))
	assert.Error(t, ValidatePaginationParams(PaginationParams{Page: 1, PageSize: 101}))
}
