package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/domain"
)

// Repository keeps the discovery index in sync with listed properties and
// answers free-text location queries against it.
type Repository interface {
	// Index upserts a property document keyed by tenant ID
	Index(ctx context.Context, property *domain.PropertySummary) error
	// Search runs a free-text query over name, city and country
	Search(ctx context.Context, query string) ([]domain.PropertySummary, error)
	// Delete removes a delisted property from the index
	Delete(ctx context.Context, tenantID string) error
	// CreateIndex creates the property index if it doesn't exist
	CreateIndex(ctx context.Context) error
}

type repository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) Repository {
	return &repository{
		client: client,
		config: config,
	}
}

func (r *repository) Index(ctx context.Context, property *domain.PropertySummary) error {
	if err := r.CreateIndex(ctx); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(property)
	if err != nil {
		return fmt.Errorf("failed to marshal property: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.IndexName,
		DocumentID: property.TenantID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *repository) Search(ctx context.Context, query string) ([]domain.PropertySummary, error) {
	searchQuery := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"name^2", "city", "country", "description"},
			},
		},
		"size": 200,
	}

	queryJSON, err := json.Marshal(searchQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.IndexName},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.PropertySummary{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.PropertySummary `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	var properties []domain.PropertySummary
	for _, hit := range searchResult.Hits.Hits {
		properties = append(properties, hit.Source)
	}

	return properties, nil
}

func (r *repository) Delete(ctx context.Context, tenantID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.IndexName,
		DocumentID: tenantID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	// A delisted property may never have been indexed
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("error deleting document: %s", res.String())
	}

	return nil
}

// getIndexMapping returns the mapping for the property index
func (r *repository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"tenant_id": { "type": "keyword" },
				"name": { "type": "text" },
				"slug": { "type": "keyword" },
				"description": { "type": "text" },
				"country": { "type": "text" },
				"city": { "type": "text" },
				"latitude": { "type": "double" },
				"longitude": { "type": "double" },
				"categories": { "type": "keyword" },
				"featured": { "type": "boolean" },
				"currency": { "type": "keyword" },
				"min_nightly_price": { "type": "double" },
				"review_count": { "type": "long" },
				"avg_rating": { "type": "double" },
				"has_active_coupon": { "type": "boolean" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *repository) CreateIndex(ctx context.Context) error {
	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{r.config.IndexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: r.config.IndexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
