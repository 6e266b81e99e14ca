package repositories

import (
	"dealership-backend/config"
	"dealership-backend/db/models"
	search_services "dealership-backend/search/services"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"
)

const (
	leadsIndex    = "leads"
	productsIndex = "products"
)

// SearchRepository is the full-text search surface over leads and the
// vehicle catalog. Write paths index best-effort; a failed index write
// never fails the database write that triggered it.
type SearchRepository interface {
	IndexSingleLead(lead models.Lead) error
	IndexExistingLeads(leads []models.Lead) error
	SearchLeads(queryString string) (*bleve.SearchResult, error)

	IndexSingleProduct(product models.Product) error
	IndexExistingProducts(products []models.Product) error
	DeleteProduct(productID string) error
	SearchProducts(queryString string) (*bleve.SearchResult, error)

	// ResetIndexes drops both indexes on disk so the next write
	// recreates them empty. Used by the startup rebuild.
	ResetIndexes() error
}

type searchRepository struct {
	indexer search_services.IndexingServiceInterface
}

func NewSearchRepository(indexer search_services.IndexingServiceInterface) SearchRepository {
	return &searchRepository{indexer: indexer}
}

// leadDoc is the flattened shape stored in the leads index.
type leadDoc struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	ModelName    string `json:"model_name"`
	AssigneeName string `json:"assignee_name"`
	Status       string `json:"status"`
}

func toLeadDoc(lead models.Lead) leadDoc {
	doc := leadDoc{
		ID:           lead.ID.String(),
		CustomerName: lead.CustomerName,
		Phone:        lead.Phone,
		ModelName:    lead.ModelName,
		Status:       string(lead.Status),
	}
	if lead.Email != nil {
		doc.Email = *lead.Email
	}
	if lead.AssigneeName != nil {
		doc.AssigneeName = *lead.AssigneeName
	}
	return doc
}

func (r *searchRepository) IndexSingleLead(lead models.Lead) error {
	if err := r.indexer.IndexDocument(leadsIndex, lead.ID.String(), toLeadDoc(lead)); err != nil {
		config.Logger.Error("Failed to index lead",
			zap.String("lead_id", lead.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *searchRepository) IndexExistingLeads(leads []models.Lead) error {
	documents := make(map[string]interface{}, len(leads))
	for _, lead := range leads {
		documents[lead.ID.String()] = toLeadDoc(lead)
	}
	return r.indexer.BulkIndexDocuments(leadsIndex, documents)
}

func (r *searchRepository) SearchLeads(queryString string) (*bleve.SearchResult, error) {
	fields := []string{"customer_name", "phone", "email", "model_name", "assignee_name"}
	return r.indexer.SearchIndex(leadsIndex, fieldedQuery(queryString, fields), 20)
}

type productDoc struct {
	ID        string `json:"id"`
	ModelName string `json:"model_name"`
	Variant   string `json:"variant"`
	FuelType  string `json:"fuel_type"`
}

func toProductDoc(product models.Product) productDoc {
	doc := productDoc{
		ID:        product.ID.String(),
		ModelName: product.ModelName,
		FuelType:  string(product.FuelType),
	}
	if product.Variant != nil {
		doc.Variant = *product.Variant
	}
	return doc
}

func (r *searchRepository) IndexSingleProduct(product models.Product) error {
	if err := r.indexer.IndexDocument(productsIndex, product.ID.String(), toProductDoc(product)); err != nil {
		config.Logger.Error("Failed to index product",
			zap.String("product_id", product.ID.String()), zap.Error(err))
		return err
	}
	return nil
}

func (r *searchRepository) IndexExistingProducts(products []models.Product) error {
	documents := make(map[string]interface{}, len(products))
	for _, product := range products {
		documents[product.ID.String()] = toProductDoc(product)
	}
	return r.indexer.BulkIndexDocuments(productsIndex, documents)
}

func (r *searchRepository) DeleteProduct(productID string) error {
	return r.indexer.DeleteDocument(productsIndex, productID)
}

func (r *searchRepository) ResetIndexes() error {
	if err := r.indexer.DeleteIndex(leadsIndex); err != nil {
		return err
	}
	return r.indexer.DeleteIndex(productsIndex)
}

func (r *searchRepository) SearchProducts(queryString string) (*bleve.SearchResult, error) {
	fields := []string{"model_name", "variant", "fuel_type"}
	return r.indexer.SearchIndex(productsIndex, fieldedQuery(queryString, fields), 20)
}

// fieldedQuery combines exact, prefix and fuzzy matching over the given
// fields. Exact matches rank highest, fuzzy lowest; at least one clause
// must hit.
func fieldedQuery(queryString string, fields []string) query.Query {
	booleanQuery := bleve.NewBooleanQuery()

	for _, field := range fields {
		matchQuery := bleve.NewMatchQuery(queryString)
		matchQuery.SetField(field)
		matchQuery.SetBoost(3.0)
		booleanQuery.AddShould(matchQuery)

		prefixQuery := bleve.NewPrefixQuery(queryString)
		prefixQuery.SetField(field)
		prefixQuery.SetBoost(2.0)
		booleanQuery.AddShould(prefixQuery)

		fuzzyQuery := bleve.NewFuzzyQuery(queryString)
		fuzzyQuery.SetField(field)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetBoost(1.0)
		booleanQuery.AddShould(fuzzyQuery)
	}

	booleanQuery.SetMinShould(1)
	return booleanQuery
}
