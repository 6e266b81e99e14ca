package repositories

import (
	"testing"

	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/stretchr/testify/assert"
)

func TestFieldedQueryShape(t *testing.T) {
	fields := []string{"customer_name", "phone", "model_name"}
	q := fieldedQuery("altura", fields)

	boolean, ok := q.(*query.BooleanQuery)
	assert.True(t, ok, "fielded query should be a boolean query")

	// Three clauses per field: match, prefix, fuzzy.
	should, ok := boolean.Should.(*query.DisjunctionQuery)
	assert.True(t, ok)
	assert.Len(t, should.Disjuncts, len(fields)*3)
	assert.Equal(t, float64(1), should.Min)
}
