package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"go.uber.org/zap"
)

type IndexingServiceInterface interface {
	IndexDocument(indexName, id string, document interface{}) error
	BulkIndexDocuments(indexName string, documents map[string]interface{}) error
	DeleteDocument(indexName, id string) error
	SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error)
	DeleteIndex(indexName string) error
}

// IndexingService owns the on-disk bleve indexes, one per document
// kind. Indexes are opened lazily and cached for the process lifetime.
type IndexingService struct {
	indexes  map[string]bleve.Index
	logger   *zap.Logger
	basePath string
}

func NewIndexingService(logger *zap.Logger, basePath string) *IndexingService {
	return &IndexingService{
		indexes:  make(map[string]bleve.Index),
		logger:   logger,
		basePath: basePath,
	}
}

func (s *IndexingService) getOrCreateIndex(indexName string) (bleve.Index, error) {
	if idx, ok := s.indexes[indexName]; ok {
		return idx, nil
	}

	fullPath := fmt.Sprintf("%s/%s.bleve", s.basePath, indexName)

	idx, err := bleve.Open(fullPath)
	if err != nil {
		idx, err = bleve.New(fullPath, bleve.NewIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create index %s: %w", fullPath, err)
		}
	}

	s.indexes[indexName] = idx
	return idx, nil
}

// SearchIndex runs q against an index, returning stored fields with
// every hit.
func (s *IndexingService) SearchIndex(indexName string, q query.Query, size int) (*bleve.SearchResult, error) {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return nil, err
	}

	searchRequest := bleve.NewSearchRequestOptions(q, size, 0, false)
	searchRequest.Fields = []string{"*"}

	return idx.Search(searchRequest)
}

func (s *IndexingService) IndexDocument(indexName, id string, document interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	if err := idx.Index(id, document); err != nil {
		s.logger.Error("Failed to index document",
			zap.String("index", indexName), zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *IndexingService) BulkIndexDocuments(indexName string, documents map[string]interface{}) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		s.logger.Error("Could not get or create index", zap.Error(err))
		return err
	}

	batch := idx.NewBatch()
	for id, doc := range documents {
		if err := batch.Index(id, doc); err != nil {
			s.logger.Error("Failed to add document to batch",
				zap.String("id", id), zap.Error(err))
			return err
		}
	}

	if err := idx.Batch(batch); err != nil {
		s.logger.Error("Failed to execute index batch",
			zap.String("index", indexName), zap.Error(err))
		return err
	}

	s.logger.Info("Bulk indexed documents",
		zap.String("index", indexName), zap.Int("count", len(documents)))
	return nil
}

func (s *IndexingService) DeleteDocument(indexName, id string) error {
	idx, err := s.getOrCreateIndex(indexName)
	if err != nil {
		return err
	}
	return idx.Delete(id)
}

// DeleteIndex closes and removes an index from disk. Used when a full
// re-index is requested.
func (s *IndexingService) DeleteIndex(indexName string) error {
	if idx, ok := s.indexes[indexName]; ok {
		if err := idx.Close(); err != nil {
			s.logger.Warn("Failed to close index before delete",
				zap.String("index", indexName), zap.Error(err))
		}
		delete(s.indexes, indexName)
	}

	fullPath := filepath.Join(s.basePath, indexName+".bleve")
	if !strings.HasSuffix(fullPath, ".bleve") {
		return fmt.Errorf("refusing to remove non-index path %s", fullPath)
	}
	return os.RemoveAll(fullPath)
}
