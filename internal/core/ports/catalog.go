package ports

import (
	"context"

	"github.com/ewilliams-labs/findbgm/internal/core/domain"
)

// FilterSongs restricts catalog searches to song results.
const FilterSongs = "songs"

// CatalogClient is the outbound port to the external music catalog.
// Implementations may fail; callers are expected to degrade to fallback
// tracks rather than surface the failure. A nil client is a valid state
// meaning no catalog is configured (mock mode).
type CatalogClient interface {
	Search(ctx context.Context, term string, filter string, limit int) ([]domain.Track, error)
}
