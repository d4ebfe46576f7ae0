package usecase

import (
	"context"
	"time"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

// TrackUseCase фиксирует взаимодействия пользователя с товарами.
// Запись идёт в UserStore; событие дополнительно публикуется в поток аналитики.
type TrackUseCase struct {
	userStore UserStore
	producer  InteractionProducer
	logger    logger.Logger
}

// NewTrackUC создаёт usecase трекинга. producer может быть nil —
// тогда публикация событий отключена.
func NewTrackUC(userStore UserStore, producer InteractionProducer, logger logger.Logger) *TrackUseCase {
	return &TrackUseCase{
		userStore: userStore,
		producer:  producer,
		logger:    logger,
	}
}

// RecordInteraction записывает взаимодействие в журнал пользователя.
// Для просмотров фиксируется первое событие по товару: повторный просмотр
// не перетирает исходные метку времени и длительность. Для остальных видов
// сигнала действует last-write-wins.
func (t *TrackUseCase) RecordInteraction(ctx context.Context, req *TrackReq) error {
	const op = "TrackUseCase.RecordInteraction"

	if err := validateTrackReq(req); err != nil {
		return e.Wrap(op, err)
	}

	activity, err := t.userStore.GetActivity(ctx, req.UserID)
	if err != nil {
		return e.Wrap(op, err)
	}

	now := time.Now().UTC()

	switch req.Action {
	case domain.SignalViewed:
		if _, ok := activity.Viewed[req.Asin]; !ok {
			activity.Viewed[req.Asin] = domain.ViewInteraction{
				Timestamp: now,
				TimeSpent: req.TimeSpent,
			}
		}
	case domain.SignalLiked:
		activity.Liked[req.Asin] = domain.Interaction{Timestamp: now}
	case domain.SignalClicked:
		activity.Clicked[req.Asin] = domain.Interaction{Timestamp: now}
	case domain.SignalAddedToCart:
		activity.AddedToCart[req.Asin] = domain.Interaction{Timestamp: now}
	}

	if err := t.userStore.SaveActivity(ctx, req.UserID, activity); err != nil {
		return e.Wrap(op, err)
	}

	t.publishInBackground(req, now)

	return nil
}

// publishInBackground отправляет событие в поток аналитики, не блокируя запрос.
// Ошибки публикации не влияют на результат трекинга и только логируются.
func (t *TrackUseCase) publishInBackground(req *TrackReq, timestamp time.Time) {
	const op = "TrackUseCase.publishInBackground"

	if t.producer == nil {
		return
	}

	msg := NewInteractionMessage(req.UserID, string(req.Action), req.Asin, req.TimeSpent, timestamp)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := t.producer.PublishInteraction(bgCtx, msg); err != nil {
			t.logger.Warnf("Failed to publish interaction in background: %v", e.Wrap(op, err))
		}
	}()
}

// validateTrackReq проверяет корректность входных данных запроса трекинга.
func validateTrackReq(req *TrackReq) error {
	if req.Asin == "" {
		return e.ErrAsinRequired
	}

	if _, ok := domain.ParseSignalKind(string(req.Action)); !ok {
		return e.ErrUnknownAction
	}

	if req.TimeSpent < 0 {
		return e.ErrNegativeTimeSpent
	}

	return nil
}
