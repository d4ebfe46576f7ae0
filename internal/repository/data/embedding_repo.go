package data

import (
	"context"
	"sync"

	"github.com/jimlawless/whereami"
	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/pkg/e"
)

// EmbeddingRepo читает packed-файл векторов через BlobSource и разбирает его
// в таблицу эмбеддингов. Таблица мемоизируется по версии источника.
type EmbeddingRepo struct {
	source BlobSource
	key    string
	dim    int

	mu      sync.RWMutex
	version string
	cached  *domain.EmbeddingTable
}

func NewEmbeddingRepo(source BlobSource, key string, dim int) *EmbeddingRepo {
	return &EmbeddingRepo{
		source: source,
		key:    key,
		dim:    dim,
	}
}

// LoadTable возвращает таблицу эмбеддингов размерности dim.
func (r *EmbeddingRepo) LoadTable(ctx context.Context) (*domain.EmbeddingTable, error) {
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

	table, err := domain.NewEmbeddingTable(raw, r.dim)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.Lock()
	r.version = version
	r.cached = table
	r.mu.Unlock()

	return table, nil
}
