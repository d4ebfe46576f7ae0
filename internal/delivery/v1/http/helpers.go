package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/internal/usecase"
	"github.com/scroller-tech/go-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ProductResponse — товар в формате API ленты.
type ProductResponse struct {
	ID             string   `json:"id"`
	Asin           string   `json:"asin"`
	Title          string   `json:"title"`
	Price          string   `json:"price"`
	Description    []string `json:"description"`
	Tags           []string `json:"tags"`
	Rating         string   `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	MainImageURL   string   `json:"main_image_url"`
	PageURL        string   `json:"page_url"`
	Merchandise    string   `json:"merchandise"`
	Country        string   `json:"country"`
	EmbeddingIndex *int     `json:"embedding_index,omitempty"`
}

// FeedResponse — страница товаров с курсором продолжения.
// Отсутствующий nextCursor означает конец ленты.
type FeedResponse struct {
	Data       []ProductResponse `json:"data"`
	NextCursor *int              `json:"nextCursor,omitempty"`
}

func NewFeedResponse(page *usecase.ProductsPage) *FeedResponse {
	data := make([]ProductResponse, 0, len(page.Data))
	for _, p := range page.Data {
		data = append(data, toProductResponse(p))
	}

	return &FeedResponse{
		Data:       data,
		NextCursor: page.NextCursor,
	}
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Asin:           p.Asin,
		Title:          p.Title,
		Price:          p.Price,
		Description:    p.Description,
		Tags:           p.Tags,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		MainImageURL:   p.MainImageURL,
		PageURL:        p.PageURL,
		Merchandise:    p.Merchandise,
		Country:        p.Country,
		EmbeddingIndex: p.EmbeddingIndex,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUnknownAction):
		return http.StatusBadRequest, e.ErrUnknownAction.Error()
	case errors.Is(err, e.ErrAsinRequired):
		return http.StatusBadRequest, e.ErrAsinRequired.Error()
	case errors.Is(err, e.ErrNegativeTimeSpent):
		return http.StatusBadRequest, e.ErrNegativeTimeSpent.Error()
	case errors.Is(err, e.ErrInvalidCursor):
		return http.StatusBadRequest, e.ErrInvalidCursor.Error()
	case errors.Is(err, e.ErrInvalidLimit):
		return http.StatusBadRequest, e.ErrInvalidLimit.Error()
	case errors.Is(err, e.ErrDataUnavailable):
		return http.StatusServiceUnavailable, e.ErrDataUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseLimitCursor разбирает query-параметры пагинации.
// Отсутствующие значения заменяются нулями: значения по умолчанию
// подставляет usecase-слой.
func parseLimitCursor(r *http.Request) (int, int, error) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return 0, 0, e.ErrInvalidLimit
		}
		limit = parsed
	}

	cursor := 0
	if v := r.URL.Query().Get("cursor"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return 0, 0, e.ErrInvalidCursor
		}
		cursor = parsed
	}

	return limit, cursor, nil
}
