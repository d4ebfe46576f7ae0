package usecase

import (
	"context"
	"math/rand"
	"sync"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

// RecommendationUseCase реализует построение персонализированной ленты:
// журнал взаимодействий -> пользовательский вектор -> ранжирование каталога ->
// смешанная страница с курсором продолжения.
type RecommendationUseCase struct {
	catalogRepo   CatalogRepository
	embeddingRepo EmbeddingRepository
	userStore     UserStore
	logger        logger.Logger
	defaultLimit  int
	randomShare   float64
	rng           *rand.Rand
	rngMu         sync.Mutex
}

// NewRecommendationUC создаёт usecase рекомендаций.
// rng инжектируется, чтобы тесты могли зафиксировать выдачу seed-ом.
func NewRecommendationUC(
	catalogRepo CatalogRepository,
	embeddingRepo EmbeddingRepository,
	userStore UserStore,
	defaultLimit int,
	randomShare float64,
	rng *rand.Rand,
	logger logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		catalogRepo:   catalogRepo,
		embeddingRepo: embeddingRepo,
		userStore:     userStore,
		logger:        logger,
		defaultLimit:  defaultLimit,
		randomShare:   randomShare,
		rng:           rng,
	}
}

// GetRecommendations возвращает страницу рекомендаций для пользователя.
// Пустой пользовательский вектор даёт пустую страницу без курсора,
// ранжирование при этом не запускается.
func (r *RecommendationUseCase) GetRecommendations(ctx context.Context, req *RecommendationsReq) (*ProductsPage, error) {
	const op = "RecommendationUseCase.GetRecommendations"

	limit := req.Limit
	if limit <= 0 {
		limit = r.defaultLimit
	}
	cursor := req.Cursor
	if cursor < 0 {
		cursor = 0
	}

	activity, err := r.userStore.GetActivity(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, table, err := r.loadData(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	userVector := buildVector(activity, catalog, table)
	if isZeroVector(userVector) {
		return NewProductsPage(make([]domain.Product, 0), nil), nil
	}

	scored := scoreCandidates(userVector, catalog, activity.InteractedAsins(), table)

	r.rngMu.Lock()
	data, nextCursor := mixPage(scored, limit, cursor, r.randomShare, r.rng)
	r.rngMu.Unlock()

	return NewProductsPage(data, nextCursor), nil
}

// BuildUserVector строит вектор вкусов пользователя по его журналу взаимодействий.
func (r *RecommendationUseCase) BuildUserVector(ctx context.Context, activity *domain.UserActivity) ([]float32, error) {
	const op = "RecommendationUseCase.BuildUserVector"

	catalog, table, err := r.loadData(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return buildVector(activity, catalog, table), nil
}

// loadData перечитывает каталог и таблицу эмбеддингов.
// Репозитории могут мемоизировать разбор по версии источника.
func (r *RecommendationUseCase) loadData(ctx context.Context) ([]domain.Product, *domain.EmbeddingTable, error) {
	catalog, err := r.catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, nil, err
	}

	table, err := r.embeddingRepo.LoadTable(ctx)
	if err != nil {
		return nil, nil, err
	}

	return catalog, table, nil
}

// buildVector агрегирует взвешенные вклады эмбеддингов в один вектор вкусов.
func buildVector(activity *domain.UserActivity, catalog []domain.Product, table *domain.EmbeddingTable) []float32 {
	decay := computeDecayWeights(activity.AllTimestamps())
	embByAsin := embeddingsByAsin(catalog, table)
	contribs := collectContributions(activity, embByAsin, decay)

	return combineContributions(contribs, table.Dim())
}
