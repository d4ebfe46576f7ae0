package usecase

import (
	"math"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/viterin/vek/vek32"
)

// scoredCandidate — товар с оценкой близости к пользовательскому вектору.
type scoredCandidate struct {
	product domain.Product
	score   float64
}

// scoreCandidates оценивает каждый невиденный товар скалярным произведением
// пользовательского вектора и эмбеддинга товара. Эмбеддинги нормализованы
// на этапе подготовки данных, поэтому скалярное произведение совпадает с
// косинусной близостью; отдельное деление на нормы не выполняется.
// Товар без вектора получает -Inf: он не вытеснит реальный кандидат из
// персонализированной выдачи, но остаётся доступен exploration-потоку.
func scoreCandidates(
	userVector []float32,
	catalog []domain.Product,
	exclude map[string]struct{},
	table *domain.EmbeddingTable,
) []scoredCandidate {
	scored := make([]scoredCandidate, 0, len(catalog))
	for _, p := range catalog {
		if _, seen := exclude[p.Asin]; seen {
			continue
		}

		score := math.Inf(-1)
		if p.EmbeddingIndex != nil {
			if emb, ok := table.At(*p.EmbeddingIndex); ok && len(emb) == len(userVector) {
				score = float64(vek32.Dot(userVector, emb))
			}
		}

		scored = append(scored, scoredCandidate{product: p, score: score})
	}

	return scored
}
