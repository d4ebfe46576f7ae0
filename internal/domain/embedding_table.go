package domain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/scroller-tech/go-backend/pkg/e"
)

// EmbeddingTable — таблица векторов фиксированной размерности,
// прочитанная из packed-файла (конкатенация little-endian float32).
// Индекс вектора в таблице соответствует Product.EmbeddingIndex.
type EmbeddingTable struct {
	dim     int
	vectors [][]float32
}

// NewEmbeddingTable разбирает сырой буфер в таблицу векторов.
// Возвращает e.ErrBadEmbeddingFormat, если длина буфера не кратна 4*dim.
func NewEmbeddingTable(raw []byte, dim int) (*EmbeddingTable, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("vector size must be positive, got %d", dim)
	}

	if len(raw)%(4*dim) != 0 {
		return nil, fmt.Errorf("%w: buffer %d bytes, vector size %d", e.ErrBadEmbeddingFormat, len(raw), dim)
	}

	flat := make([]float32, len(raw)/4)
	for i := range flat {
		flat[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}

	vectors := make([][]float32, 0, len(flat)/dim)
	for i := 0; i+dim <= len(flat); i += dim {
		vectors = append(vectors, flat[i:i+dim])
	}

	return &EmbeddingTable{
		dim:     dim,
		vectors: vectors,
	}, nil
}

// At возвращает вектор по индексу. false — индекс вне таблицы.
func (t *EmbeddingTable) At(i int) ([]float32, bool) {
	if i < 0 || i >= len(t.vectors) {
		return nil, false
	}

	return t.vectors[i], true
}

func (t *EmbeddingTable) Len() int {
	return len(t.vectors)
}

func (t *EmbeddingTable) Dim() int {
	return t.dim
}
