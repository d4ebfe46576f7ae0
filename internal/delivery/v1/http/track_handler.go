package http

import (
	"encoding/json"
	"net/http"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

type TrackHandler struct {
	trackUsecase usecase.TrackUC
	logger       logger.Logger
}

func NewTrackHandler(trackUsecase usecase.TrackUC, logger logger.Logger) *TrackHandler {
	return &TrackHandler{trackUsecase: trackUsecase, logger: logger}
}

// trackRequest — тело запроса на фиксацию взаимодействия.
type trackRequest struct {
	Action    string  `json:"action"`
	Asin      string  `json:"asin"`
	TimeSpent float64 `json:"time_spent"`
}

// trackInteraction
//
//	@Summary		Фиксация взаимодействия
//	@Description	Записывает просмотр, лайк, клик или добавление в корзину
//	@Tags			feed
//	@Accept			json
//	@Produce		json
//	@Param			body	body		trackRequest	true	"Событие взаимодействия"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/track [post]
func (h *TrackHandler) trackInteraction(w http.ResponseWriter, r *http.Request) {
	const maxBodySize = 1 << 20

	userID, ok := UserIDFromCtx(r.Context())
	if !ok {
		h.logger.Warnf("%d %s: no user id in context", http.StatusInternalServerError, e.ErrInternalServerError.Error())
		WriteError(w, e.ErrInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	err := h.trackUsecase.RecordInteraction(
		r.Context(),
		usecase.NewTrackReq(userID, domain.SignalKind(req.Action), req.Asin, req.TimeSpent),
	)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"message": "OK"})
}
