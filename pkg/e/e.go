package e

import "fmt"

var (
	// Ошибки источников данных
	ErrDataUnavailable    = fmt.Errorf("data source unavailable")
	ErrBadEmbeddingFormat = fmt.Errorf("embedding buffer length is not a multiple of vector size")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrUnknownAction     = fmt.Errorf("unknown interaction action")
	ErrAsinRequired      = fmt.Errorf("asin is required")
	ErrNegativeTimeSpent = fmt.Errorf("time_spent must be non-negative")
	ErrInvalidCursor     = fmt.Errorf("cursor must be a non-negative integer")
	ErrInvalidLimit      = fmt.Errorf("limit must be a positive integer")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
