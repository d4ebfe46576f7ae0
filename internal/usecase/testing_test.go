package usecase

import (
	"context"
	"encoding/binary"
	"math"
	"testing"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

// Общие заглушки и конструкторы тестовых данных для usecase-слоя.

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any) {}
func (nopLogger) Warnf(format string, args ...any) {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type stubCatalogRepo struct {
	products []domain.Product
	err      error
}

func (s *stubCatalogRepo) LoadCatalog(_ context.Context) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.products, nil
}

type stubEmbeddingRepo struct {
	table *domain.EmbeddingTable
	err   error
}

func (s *stubEmbeddingRepo) LoadTable(_ context.Context) (*domain.EmbeddingTable, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.table, nil
}

type stubUserStore struct {
	activities map[string]*domain.UserActivity
	getErr     error
	saveErr    error
}

func (s *stubUserStore) GetActivity(_ context.Context, userID string) (*domain.UserActivity, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if a, ok := s.activities[userID]; ok {
		return a, nil
	}

	return domain.NewUserActivity(), nil
}

func (s *stubUserStore) SaveActivity(_ context.Context, userID string, activity *domain.UserActivity) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if s.activities == nil {
		s.activities = make(map[string]*domain.UserActivity)
	}
	s.activities[userID] = activity

	return nil
}

type stubProducer struct {
	published chan *InteractionMessage
}

func newStubProducer() *stubProducer {
	return &stubProducer{published: make(chan *InteractionMessage, 1)}
}

func (s *stubProducer) PublishInteraction(_ context.Context, msg *InteractionMessage) error {
	s.published <- msg

	return nil
}

func packVectors(vecs ...[]float32) []byte {
	buf := make([]byte, 0)
	for _, v := range vecs {
		for _, f := range v {
			var b [4]byte
			binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
			buf = append(buf, b[:]...)
		}
	}

	return buf
}

func newTable(t *testing.T, dim int, vecs ...[]float32) *domain.EmbeddingTable {
	t.Helper()

	table, err := domain.NewEmbeddingTable(packVectors(vecs...), dim)
	require.NoError(t, err)

	return table
}

func testProduct(asin string, embIdx int) domain.Product {
	idx := embIdx
	return domain.Product{
		ID:             asin,
		Asin:           asin,
		Title:          "Product " + asin,
		Price:          "10.00",
		EmbeddingIndex: &idx,
	}
}

func asins(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Asin)
	}

	return out
}
