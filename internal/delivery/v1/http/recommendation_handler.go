package http

import (
	"net/http"

	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

type RecommendationHandler struct {
	recUsecase usecase.RecommendationUC
	logger     logger.Logger
}

func NewRecommendationHandler(recUsecase usecase.RecommendationUC, logger logger.Logger) *RecommendationHandler {
	return &RecommendationHandler{recUsecase: recUsecase, logger: logger}
}

// getRecommendations
//
//	@Summary		Персональные рекомендации
//	@Description	Возвращает страницу рекомендованных товаров с курсором продолжения
//	@Tags			feed
//	@Produce		json
//	@Param			limit	query		int	false	"Размер страницы (по умолчанию 6)"
//	@Param			cursor	query		int	false	"Курсор продолжения"
//	@Success		200		{object}	FeedResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/recommendations [get]
func (h *RecommendationHandler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromCtx(r.Context())
	if !ok {
		h.logger.Warnf("%d %s: no user id in context", http.StatusInternalServerError, e.ErrInternalServerError.Error())
		WriteError(w, e.ErrInternalServerError)
		return
	}

	limit, cursor, err := parseLimitCursor(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	page, err := h.recUsecase.GetRecommendations(r.Context(), usecase.NewRecommendationsReq(userID, limit, cursor))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewFeedResponse(page))
}
