package usecase

import (
	"time"

	"github.com/scroller-tech/go-backend/internal/domain"
)

// RECOMMENDATION USECASE

// RecommendationsReq — запрос страницы рекомендаций.
// Limit <= 0 и Cursor < 0 заменяются значениями по умолчанию.
type RecommendationsReq struct {
	UserID string
	Limit  int
	Cursor int
}

// ProductsPage — страница товаров с курсором продолжения.
// NextCursor == nil означает конец ленты.
type ProductsPage struct {
	Data       []domain.Product
	NextCursor *int
}

// TRACK USECASE

// TrackReq — запрос на фиксацию взаимодействия пользователя с товаром.
type TrackReq struct {
	UserID    string
	Action    domain.SignalKind
	Asin      string
	TimeSpent float64 // секунды, имеет смысл только для просмотров
}

// InteractionMessage — событие взаимодействия для потока аналитики.
type InteractionMessage struct {
	UserID    string
	Action    string
	Asin      string
	TimeSpent float64
	Timestamp time.Time
}

// CATALOG USECASE

// BrowseReq — запрос страницы каталога с необязательным поисковым фильтром.
type BrowseReq struct {
	Limit  int
	Cursor int
	Search string
}

// ExploreReq — запрос страницы перемешанной ленты каталога.
type ExploreReq struct {
	Limit  int
	Cursor int
}

// MAPPERS

func NewProductsPage(data []domain.Product, nextCursor *int) *ProductsPage {
	return &ProductsPage{
		Data:       data,
		NextCursor: nextCursor,
	}
}

func NewRecommendationsReq(userID string, limit int, cursor int) *RecommendationsReq {
	return &RecommendationsReq{
		UserID: userID,
		Limit:  limit,
		Cursor: cursor,
	}
}

func NewTrackReq(userID string, action domain.SignalKind, asin string, timeSpent float64) *TrackReq {
	return &TrackReq{
		UserID:    userID,
		Action:    action,
		Asin:      asin,
		TimeSpent: timeSpent,
	}
}

func NewInteractionMessage(userID string, action string, asin string, timeSpent float64, timestamp time.Time) *InteractionMessage {
	return &InteractionMessage{
		UserID:    userID,
		Action:    action,
		Asin:      asin,
		TimeSpent: timeSpent,
		Timestamp: timestamp,
	}
}

func NewBrowseReq(limit int, cursor int, search string) *BrowseReq {
	return &BrowseReq{
		Limit:  limit,
		Cursor: cursor,
		Search: search,
	}
}

func NewExploreReq(limit int, cursor int) *ExploreReq {
	return &ExploreReq{
		Limit:  limit,
		Cursor: cursor,
	}
}
