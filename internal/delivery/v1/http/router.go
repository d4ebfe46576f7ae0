package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/scroller-tech/go-backend/docs" // Импорт сгенерированных файлов
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(recUC usecase.RecommendationUC, trackUC usecase.TrackUC, catalogUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(EnsureUserID)

		recHandler := NewRecommendationHandler(recUC, r.logger)
		trackHandler := NewTrackHandler(trackUC, r.logger)
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)

		registerFeedRoutes(v1, recHandler, trackHandler, catalogHandler)
	})
}

func registerFeedRoutes(router chi.Router, rec *RecommendationHandler, track *TrackHandler, catalog *CatalogHandler) {
	router.Get("/recommendations", rec.getRecommendations)
	router.Post("/track", track.trackInteraction)
	router.Get("/products", catalog.browseProducts)
	router.Get("/explore", catalog.exploreFeed)
}
