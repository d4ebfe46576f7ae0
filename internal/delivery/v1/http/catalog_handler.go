package http

import (
	"net/http"

	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// browseProducts
//
//	@Summary		Страница каталога
//	@Description	Постраничная выдача каталога с необязательным поисковым фильтром
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int		false	"Размер страницы (по умолчанию 6)"
//	@Param			cursor	query		int		false	"Курсор продолжения"
//	@Param			search	query		string	false	"Поисковый запрос, части через дефис"
//	@Success		200		{object}	FeedResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [get]
func (h *CatalogHandler) browseProducts(w http.ResponseWriter, r *http.Request) {
	limit, cursor, err := parseLimitCursor(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	search := r.URL.Query().Get("search")

	page, err := h.catalogUsecase.BrowseProducts(r.Context(), usecase.NewBrowseReq(limit, cursor, search))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewFeedResponse(page))
}

// exploreFeed
//
//	@Summary		Explore-лента
//	@Description	Перемешанная лента каталога, не воспроизводится между вызовами
//	@Tags			catalog
//	@Produce		json
//	@Param			limit	query		int	false	"Размер страницы (по умолчанию 6)"
//	@Param			cursor	query		int	false	"Курсор продолжения"
//	@Success		200		{object}	FeedResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/explore [get]
func (h *CatalogHandler) exploreFeed(w http.ResponseWriter, r *http.Request) {
	limit, cursor, err := parseLimitCursor(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	// лента каждый раз новая — кэшировать её нельзя
	w.Header().Set("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	page, err := h.catalogUsecase.ExploreFeed(r.Context(), usecase.NewExploreReq(limit, cursor))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewFeedResponse(page))
}
