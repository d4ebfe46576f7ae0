package domain

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packFloats(vals ...float32) []byte {
	buf := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		buf = append(buf, b[:]...)
	}

	return buf
}

func TestNewEmbeddingTable(t *testing.T) {
	raw := packFloats(1, 2, 0.5, -1)

	table, err := NewEmbeddingTable(raw, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 2, table.Dim())

	first, ok := table.At(0)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2}, first)

	second, ok := table.At(1)
	require.True(t, ok)
	assert.Equal(t, []float32{0.5, -1}, second)
}

func TestNewEmbeddingTable_TruncatedBuffer(t *testing.T) {
	raw := packFloats(1, 2, 3) // 12 байт не делятся на вектор из 2 float32

	_, err := NewEmbeddingTable(raw, 2)
	require.ErrorIs(t, err, e.ErrBadEmbeddingFormat)
}

func TestNewEmbeddingTable_InvalidDim(t *testing.T) {
	_, err := NewEmbeddingTable(packFloats(1, 2), 0)
	require.Error(t, err)

	_, err = NewEmbeddingTable(packFloats(1, 2), -3)
	require.Error(t, err)
}

func TestNewEmbeddingTable_Empty(t *testing.T) {
	table, err := NewEmbeddingTable(nil, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestEmbeddingTable_AtOutOfRange(t *testing.T) {
	table, err := NewEmbeddingTable(packFloats(1, 2), 2)
	require.NoError(t, err)

	_, ok := table.At(-1)
	assert.False(t, ok)

	_, ok = table.At(table.Len())
	assert.False(t, ok)
}
