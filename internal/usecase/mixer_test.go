package usecase

import (
	"math/rand"
	"testing"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// десять кандидатов с убывающей оценкой: p0 лучший, p9 худший
func descendingCandidates(n int) []scoredCandidate {
	out := make([]scoredCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, scoredCandidate{
			product: domain.Product{Asin: string(rune('a' + i))},
			score:   float64(n - i),
		})
	}

	return out
}

func TestMixPage_FullPage(t *testing.T) {
	scored := descendingCandidates(10)
	rng := rand.New(rand.NewSource(1))

	page, next := mixPage(scored, 6, 0, 0.4, rng)

	// limit 6, доля 0.4: 2 случайных и 4 персонализированных
	assert.LessOrEqual(t, len(page), 6)
	assert.GreaterOrEqual(t, len(page), 4)

	got := asins(page)
	for _, top := range []string{"a", "b", "c", "d"} {
		assert.Contains(t, got, top)
	}

	require.NotNil(t, next)
	assert.Equal(t, 4, *next)
}

func TestMixPage_NoDuplicates(t *testing.T) {
	scored := descendingCandidates(6)

	for seed := int64(0); seed < 20; seed++ {
		page, _ := mixPage(scored, 6, 0, 0.4, rand.New(rand.NewSource(seed)))

		seen := make(map[string]struct{})
		for _, p := range page {
			_, dup := seen[p.Asin]
			require.False(t, dup, "duplicate %s at seed %d", p.Asin, seed)
			seen[p.Asin] = struct{}{}
		}
	}
}

func TestMixPage_SequentialPagesDisjoint(t *testing.T) {
	scored := descendingCandidates(10)
	rng := rand.New(rand.NewSource(7))

	// без exploration-потока страницы состоят только из персонализированного среза
	first, next := mixPage(scored, 4, 0, 0, rng)
	require.NotNil(t, next)
	second, _ := mixPage(scored, 4, *next, 0, rng)

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, asins(first))
	assert.ElementsMatch(t, []string{"e", "f", "g", "h"}, asins(second))
}

func TestMixPage_CursorBeyondEnd(t *testing.T) {
	scored := descendingCandidates(5)
	rng := rand.New(rand.NewSource(3))

	page, next := mixPage(scored, 6, 100, 0.4, rng)

	// персонализированный срез пуст: курсор продолжения не выдаётся
	assert.Nil(t, next)
	// остаётся только exploration-поток
	assert.LessOrEqual(t, len(page), 2)
}

func TestMixPage_PartialTail(t *testing.T) {
	scored := descendingCandidates(5)
	rng := rand.New(rand.NewSource(3))

	// personalizedCount = 4, с курсора 4 доступен один кандидат
	_, next := mixPage(scored, 6, 4, 0.4, rng)
	assert.Nil(t, next)
}

func TestMixPage_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	page, next := mixPage(nil, 6, 0, 0.4, rng)
	assert.Empty(t, page)
	assert.Nil(t, next)
}
