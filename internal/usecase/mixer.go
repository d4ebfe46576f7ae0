package usecase

import (
	"math"
	"math/rand"
	"sort"

	"github.com/scroller-tech/go-backend/internal/domain"
)

// mixPage собирает страницу ленты из двух потоков: персонализированного
// (срез отсортированного по убыванию оценки ранжирования, адресуемый курсором)
// и exploration-потока (случайная выборка без повторов из всего пула невиденных
// товаров, независимая от курсора). Потоки объединяются, дедуплицируются по
// ASIN (первое вхождение побеждает) и перемешиваются, чтобы порядок выдачи
// не раскрывал происхождение товара.
//
// Курсор продолжения определяется только персонализированным потоком:
// если срез заполнен целиком — cursor+personalizedCount, иначе nil (конец ленты).
func mixPage(
	scored []scoredCandidate,
	limit int,
	cursor int,
	randomShare float64,
	rng *rand.Rand,
) ([]domain.Product, *int) {
	randomCount := int(math.Floor(float64(limit) * randomShare))
	personalizedCount := limit - randomCount

	sorted := make([]scoredCandidate, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	start := cursor
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + personalizedCount
	if end > len(sorted) {
		end = len(sorted)
	}

	personalized := make([]domain.Product, 0, end-start)
	for _, c := range sorted[start:end] {
		personalized = append(personalized, c.product)
	}

	// exploration: случайные товары из всего пула, без повторов в рамках вызова
	random := make([]domain.Product, 0, randomCount)
	if randomCount > 0 && len(scored) > 0 {
		for _, idx := range rng.Perm(len(scored)) {
			if len(random) == randomCount {
				break
			}
			random = append(random, scored[idx].product)
		}
	}

	mixed := make([]domain.Product, 0, len(personalized)+len(random))
	taken := make(map[string]struct{}, len(personalized)+len(random))
	for _, p := range append(personalized, random...) {
		if _, dup := taken[p.Asin]; dup {
			continue
		}
		taken[p.Asin] = struct{}{}
		mixed = append(mixed, p)
	}

	rng.Shuffle(len(mixed), func(i, j int) {
		mixed[i], mixed[j] = mixed[j], mixed[i]
	})

	var nextCursor *int
	if len(personalized) == personalizedCount {
		nc := cursor + personalizedCount
		nextCursor = &nc
	}

	return mixed, nextCursor
}
