package data

import (
	"context"
	"fmt"
	"sync"

	gojson "github.com/goccy/go-json"
	"github.com/jimlawless/whereami"
	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/internal/repository/data/converter"
	"github.com/scroller-tech/go-backend/pkg/e"
)

// CatalogRepo читает каталог товаров из JSON-файла через BlobSource.
// Разобранный каталог мемоизируется по версии источника: после обновления
// файла следующий запрос перечитает его, устаревшие данные не отдаются.
type CatalogRepo struct {
	source BlobSource
	key    string
	conv   converter.ProductConverter

	mu      sync.RWMutex
	version string
	cached  []domain.Product
}

func NewCatalogRepo(source BlobSource, key string, conv converter.ProductConverter) *CatalogRepo {
	return &CatalogRepo{
		source: source,
		key:    key,
		conv:   conv,
	}
}

// LoadCatalog возвращает полный каталог. Срез общий для всех вызовов
// одной версии файла: вызывающая сторона не должна его модифицировать.
func (r *CatalogRepo) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	version, err := r.source.Version(ctx, r.key)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.RLock()
	if version == r.version && r.cached != nil {
		cached := r.cached
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	raw, err := r.source.Fetch(ctx, r.key)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductModel
	if err := gojson.Unmarshal(raw, &models); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	catalog := r.conv.ToArrEntity(models)

	r.mu.Lock()
	r.version = version
	r.cached = catalog
	r.mu.Unlock()

	return catalog, nil
}
