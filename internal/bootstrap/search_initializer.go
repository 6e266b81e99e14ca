package bootstrap

import (
	"dealership-backend/config"
	leads_repositories "dealership-backend/leads/repositories"
	products_repositories "dealership-backend/products/repositories"
	search_repositories "dealership-backend/search/repositories"

	"go.uber.org/zap"
)

// IndexSearchData rebuilds the full-text indexes from the database at
// startup. Individual writes keep them current afterwards; this pass
// repairs whatever drift accumulated while the process was down.
func IndexSearchData(
	leadRepo leads_repositories.LeadRepository,
	productRepo products_repositories.ProductRepository,
	searchRepo search_repositories.SearchRepository,
) {
	// Drop stale indexes first; the database is the source of truth.
	if err := searchRepo.ResetIndexes(); err != nil {
		config.Logger.Warn("Could not reset search indexes, indexing over existing data", zap.Error(err))
	}

	if leads, err := leadRepo.GetAllLeadsFiltered(nil); err != nil {
		config.Logger.Error("Error fetching leads for indexing", zap.Error(err))
	} else if err := searchRepo.IndexExistingLeads(leads); err != nil {
		config.Logger.Error("Failed to index leads", zap.Error(err))
	}

	if products, err := productRepo.GetAllProducts(false); err != nil {
		config.Logger.Error("Error fetching products for indexing", zap.Error(err))
	} else if err := searchRepo.IndexExistingProducts(products); err != nil {
		config.Logger.Error("Failed to index products", zap.Error(err))
	}
}
