package usecase

import (
	"time"

	"github.com/scroller-tech/go-backend/internal/domain"
)

// Базовые веса сигналов: просмотр < лайк < клик < корзина.
const (
	baseWeightView  = 1.0
	baseWeightLike  = 2.0
	baseWeightClick = 3.0
	baseWeightCart  = 4.0
)

// viewBehavior — поведенческая категория просмотра по длительности.
type viewBehavior int

const (
	viewIgnore viewBehavior = iota
	viewNegative
	viewNeutral
	viewPositive
)

// categorizeViewTime классифицирует просмотр по времени в секундах.
func categorizeViewTime(timeSpent float64) viewBehavior {
	switch {
	case timeSpent < 2:
		return viewIgnore
	case timeSpent < 4:
		return viewNegative // 2–3 секунды: пролистнул с раздражением
	case timeSpent <= 5:
		return viewNeutral // 4–5 секунд
	default:
		return viewPositive // дольше 5 секунд
	}
}

// computeDecayWeights нормализует метки времени всех сигналов в [0,1]:
// самая ранняя — 0, самая поздняя — 1, линейно между ними.
// При одной метке (или совпадающих) диапазон заменяется единицей,
// и все веса получаются нулевыми.
func computeDecayWeights(timestamps []time.Time) map[int64]float64 {
	weights := make(map[int64]float64, len(timestamps))
	if len(timestamps) == 0 {
		return weights
	}

	minMs := timestamps[0].UnixMilli()
	maxMs := minMs
	for _, ts := range timestamps[1:] {
		ms := ts.UnixMilli()
		if ms < minMs {
			minMs = ms
		}
		if ms > maxMs {
			maxMs = ms
		}
	}

	rangeMs := maxMs - minMs
	if rangeMs == 0 {
		rangeMs = 1 // защита от деления на ноль
	}

	for _, ts := range timestamps {
		ms := ts.UnixMilli()
		weights[ms] = float64(ms-minMs) / float64(rangeMs)
	}

	return weights
}

// weightedContribution — вклад одного взаимодействия в пользовательский вектор.
type weightedContribution struct {
	emb   []float32
	base  float64 // базовый вес вида сигнала
	decay float64 // вес давности события
}

// collectContributions собирает взвешенные вклады эмбеддингов по журналу пользователя.
// Товары без вектора молча пропускаются: это отсутствие сигнала, а не ошибка.
func collectContributions(
	activity *domain.UserActivity,
	embByAsin map[string][]float32,
	decay map[int64]float64,
) []weightedContribution {
	contribs := make([]weightedContribution, 0)

	decayOf := func(ts time.Time) float64 {
		return decay[ts.UnixMilli()]
	}

	for asin, view := range activity.Viewed {
		behavior := categorizeViewTime(view.TimeSpent)
		if behavior == viewIgnore || behavior == viewNeutral {
			continue
		}

		emb, ok := embByAsin[asin]
		if !ok {
			continue
		}

		if behavior == viewNegative {
			// негативный просмотр отталкивает вектор от товара
			emb = negated(emb)
		}

		contribs = append(contribs, weightedContribution{
			emb:   emb,
			base:  baseWeightView,
			decay: decayOf(view.Timestamp),
		})
	}

	for asin, it := range activity.Liked {
		emb, ok := embByAsin[asin]
		if !ok {
			continue
		}
		contribs = append(contribs, weightedContribution{emb: emb, base: baseWeightLike, decay: decayOf(it.Timestamp)})
	}

	for asin, it := range activity.Clicked {
		emb, ok := embByAsin[asin]
		if !ok {
			continue
		}
		contribs = append(contribs, weightedContribution{emb: emb, base: baseWeightClick, decay: decayOf(it.Timestamp)})
	}

	for asin, it := range activity.AddedToCart {
		emb, ok := embByAsin[asin]
		if !ok {
			continue
		}
		contribs = append(contribs, weightedContribution{emb: emb, base: baseWeightCart, decay: decayOf(it.Timestamp)})
	}

	return contribs
}

// combineContributions считает взвешенное среднее вкладов.
// Если вклады есть, но множитель давности обнулил суммарный вес
// (единственная метка времени в журнале), среднее берётся только
// по базовым весам — одиночное взаимодействие не должно пропадать.
func combineContributions(contribs []weightedContribution, dim int) []float32 {
	result := make([]float32, dim)
	if len(contribs) == 0 {
		return result
	}

	var total float64
	for _, c := range contribs {
		total += c.base * c.decay
	}

	useBaseOnly := total == 0
	if useBaseOnly {
		total = 0
		for _, c := range contribs {
			total += c.base
		}
	}

	acc := make([]float64, dim)
	for _, c := range contribs {
		w := c.base * c.decay
		if useBaseOnly {
			w = c.base
		}
		for d, v := range c.emb {
			acc[d] += float64(v) * w
		}
	}

	for d := range result {
		result[d] = float32(acc[d] / total)
	}

	return result
}

// embeddingsByAsin строит отображение товара в его вектор.
// Товары без индекса или с индексом вне таблицы не попадают в отображение.
func embeddingsByAsin(catalog []domain.Product, table *domain.EmbeddingTable) map[string][]float32 {
	out := make(map[string][]float32, len(catalog))
	for _, p := range catalog {
		if p.EmbeddingIndex == nil {
			continue
		}
		if emb, ok := table.At(*p.EmbeddingIndex); ok {
			out[p.Asin] = emb
		}
	}

	return out
}

// negated возвращает копию вектора с противоположным знаком.
// Копия обязательна: исходный срез — view в общую таблицу эмбеддингов.
func negated(emb []float32) []float32 {
	out := make([]float32, len(emb))
	for i, v := range emb {
		out[i] = -v
	}

	return out
}

// isZeroVector сообщает, все ли компоненты вектора нулевые.
func isZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}
