package usecase

import (
	"context"

	"github.com/scroller-tech/go-backend/internal/domain"
)

type RecommendationUC interface {
	BuildUserVector(ctx context.Context, activity *domain.UserActivity) ([]float32, error)
	GetRecommendations(ctx context.Context, req *RecommendationsReq) (*ProductsPage, error)
}

type TrackUC interface {
	RecordInteraction(ctx context.Context, req *TrackReq) error
}

type CatalogUC interface {
	BrowseProducts(ctx context.Context, req *BrowseReq) (*ProductsPage, error)
	ExploreFeed(ctx context.Context, req *ExploreReq) (*ProductsPage, error)
}
