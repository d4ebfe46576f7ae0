package usecase

import (
	"context"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

var digitsRe = regexp.MustCompile(`^\d+$`)

// CatalogUseCase обслуживает просмотр каталога: постраничную выдачу
// с поисковым фильтром и перемешанную explore-ленту.
type CatalogUseCase struct {
	catalogRepo  CatalogRepository
	logger       logger.Logger
	defaultLimit int
	rng          *rand.Rand
	rngMu        sync.Mutex
}

func NewCatalogUC(catalogRepo CatalogRepository, defaultLimit int, rng *rand.Rand, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo:  catalogRepo,
		logger:       logger,
		defaultLimit: defaultLimit,
		rng:          rng,
	}
}

// BrowseProducts возвращает страницу каталога. Поисковый запрос делится по "-":
// числовые части задают верхнюю границу цены, текстовые должны все встретиться
// в описании либо в названии товара.
func (c *CatalogUseCase) BrowseProducts(ctx context.Context, req *BrowseReq) (*ProductsPage, error) {
	const op = "CatalogUseCase.BrowseProducts"

	catalog, err := c.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if search := strings.TrimSpace(req.Search); search != "" {
		catalog = filterCatalog(catalog, search)
	}

	return paginate(catalog, c.normalizeLimit(req.Limit), req.Cursor), nil
}

// ExploreFeed возвращает страницу перемешанного каталога.
// Перемешивание выполняется на каждый вызов: лента намеренно не воспроизводима.
func (c *CatalogUseCase) ExploreFeed(ctx context.Context, req *ExploreReq) (*ProductsPage, error) {
	const op = "CatalogUseCase.ExploreFeed"

	catalog, err := c.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	shuffled := make([]domain.Product, len(catalog))
	copy(shuffled, catalog)

	c.rngMu.Lock()
	c.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	c.rngMu.Unlock()

	return paginate(shuffled, c.normalizeLimit(req.Limit), req.Cursor), nil
}

func (c *CatalogUseCase) normalizeLimit(limit int) int {
	if limit <= 0 {
		return c.defaultLimit
	}

	return limit
}

// paginate вырезает страницу [cursor, cursor+limit) и считает курсор продолжения:
// полная страница — cursor+limit, неполная — конец ленты (nil).
func paginate(products []domain.Product, limit int, cursor int) *ProductsPage {
	if cursor < 0 {
		cursor = 0
	}

	start := cursor
	if start > len(products) {
		start = len(products)
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}

	data := products[start:end]

	var nextCursor *int
	if len(data) == limit {
		nc := cursor + len(data)
		nextCursor = &nc
	}

	return NewProductsPage(data, nextCursor)
}

// filterCatalog применяет поисковый фильтр к каталогу.
func filterCatalog(catalog []domain.Product, search string) []domain.Product {
	parts := make([]string, 0)
	digits := make([]string, 0)
	for _, raw := range strings.Split(search, "-") {
		part := strings.ToLower(strings.TrimSpace(raw))
		if part == "" {
			continue
		}
		if digitsRe.MatchString(part) {
			digits = append(digits, part)
			continue
		}
		parts = append(parts, part)
	}

	if len(digits) > 0 {
		maxPrice, err := decimal.NewFromString(digits[0])
		if err != nil {
			return catalog
		}

		filtered := make([]domain.Product, 0)
		for _, p := range catalog {
			price, err := decimal.NewFromString(strings.TrimSpace(p.Price))
			if err != nil {
				continue // цена в каталоге бывает грязной, такие товары не фильтруем по цене
			}
			if price.LessThan(maxPrice) {
				filtered = append(filtered, p)
			}
		}

		return filtered
	}

	filtered := make([]domain.Product, 0)
	for _, p := range catalog {
		desc := strings.ToLower(strings.Join(p.Description, " "))
		title := strings.ToLower(p.Title)

		matchesDesc := true
		matchesTitle := true
		for _, part := range parts {
			if !strings.Contains(desc, part) {
				matchesDesc = false
			}
			if !strings.Contains(title, part) {
				matchesTitle = false
			}
		}

		if matchesDesc || matchesTitle {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
