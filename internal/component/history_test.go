package component

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(4)
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Values())

	h.Push(0.1)
	h.Push(0.2)

	assert.Equal(t, 2, h.Len())
	assert.Equal(t, []float64{0.2, 0.1}, h.Values())
	assert.Equal(t, 0.2, h.At(0))
	assert.Equal(t, 0.0, h.At(5), "out of range reads are zero")
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 7; i++ {
		h.Push(float64(i) / 10)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 3, h.Cap())
	assert.InDeltaSlice(t, []float64{0.7, 0.6, 0.5}, h.Values(), 1e-9)
}

func TestHistoryClamps(t *testing.T) {
	h := NewHistory(3)
	h.Push(-0.5)
	h.Push(1.5)
	h.Push(math.NaN())

	assert.Equal(t, []float64{0, 1, 0}, h.Values())
}

func TestHistoryMinimumSize(t *testing.T) {
	h := NewHistory(0)
	h.Push(0.3)
	h.Push(0.4)
	assert.Equal(t, []float64{0.4}, h.Values())
}
