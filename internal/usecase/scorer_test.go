package usecase

import (
	"math"
	"testing"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidates(t *testing.T) {
	table := newTable(t, 2, []float32{1, 0}, []float32{0.8, 0.6}, []float32{0, 1})
	catalog := []domain.Product{testProduct("A", 0), testProduct("B", 1), testProduct("C", 2)}
	userVector := []float32{1, 0}

	scored := scoreCandidates(userVector, catalog, nil, table)
	require.Len(t, scored, 3)

	byAsin := make(map[string]float64, len(scored))
	for _, c := range scored {
		byAsin[c.product.Asin] = c.score
	}

	assert.InDelta(t, 1.0, byAsin["A"], 1e-6)
	assert.InDelta(t, 0.8, byAsin["B"], 1e-6)
	assert.InDelta(t, 0.0, byAsin["C"], 1e-6)
}

func TestScoreCandidates_ExcludesInteracted(t *testing.T) {
	table := newTable(t, 2, []float32{1, 0}, []float32{0, 1})
	catalog := []domain.Product{testProduct("A", 0), testProduct("B", 1)}

	scored := scoreCandidates([]float32{1, 0}, catalog, map[string]struct{}{"A": {}}, table)

	require.Len(t, scored, 1)
	assert.Equal(t, "B", scored[0].product.Asin)
}

func TestScoreCandidates_NoEmbedding(t *testing.T) {
	table := newTable(t, 2, []float32{1, 0})

	outOfRange := 99
	catalog := []domain.Product{
		{Asin: "none"}, // без индекса
		{Asin: "bad", EmbeddingIndex: &outOfRange},
	}

	scored := scoreCandidates([]float32{1, 0}, catalog, nil, table)
	require.Len(t, scored, 2)
	for _, c := range scored {
		assert.True(t, math.IsInf(c.score, -1), c.product.Asin)
	}
}

func TestScoreCandidates_DimensionMismatch(t *testing.T) {
	table := newTable(t, 3, []float32{1, 2, 3})
	catalog := []domain.Product{testProduct("A", 0)}

	scored := scoreCandidates([]float32{1, 0}, catalog, nil, table)
	require.Len(t, scored, 1)
	assert.True(t, math.IsInf(scored[0].score, -1))
}
