package usecase

import (
	"context"

	"github.com/scroller-tech/go-backend/internal/domain"
)

// CatalogRepository отдаёт полный актуальный каталог товаров.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context) ([]domain.Product, error)
}

// EmbeddingRepository отдаёт таблицу эмбеддингов, адресуемую по Product.EmbeddingIndex.
type EmbeddingRepository interface {
	LoadTable(ctx context.Context) (*domain.EmbeddingTable, error)
}

// UserStore хранит журнал взаимодействий пользователя.
// Для неизвестного пользователя GetActivity возвращает пустой журнал, а не ошибку.
type UserStore interface {
	GetActivity(ctx context.Context, userID string) (*domain.UserActivity, error)
	SaveActivity(ctx context.Context, userID string, activity *domain.UserActivity) error
}
