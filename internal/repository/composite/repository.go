package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/vilohq/vilo-api/internal/config"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/internal/repository/opensearch"
	"github.com/vilohq/vilo-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.PropertySearchRepository
}

// NewCompositeRepository backs every repository with Postgres and layers the
// OpenSearch property index on top for discovery search.
func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		searchRepo:         opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) PropertySearch() repository.PropertySearchRepository {
	return r.searchRepo
}
