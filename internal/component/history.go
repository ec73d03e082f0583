package component

import "math"

// History is a fixed-capacity ring of fractions in [0, 1], read newest first.
// Pushing into a full history evicts the oldest sample.
type History struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history holding at most size samples.
func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{
		data: make([]float64, size),
		size: size,
	}
}

// Push adds a sample, clamped into [0, 1].
func (h *History) Push(v float64) {
	switch {
	case v < 0 || math.IsNaN(v):
		v = 0
	case v > 1:
		v = 1
	}
	h.data[h.head] = v
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Len is the number of stored samples.
func (h *History) Len() int { return h.count }

// Cap is the maximum number of samples.
func (h *History) Cap() int { return h.size }

// At returns the i-th most recent sample; At(0) is the newest.
func (h *History) At(i int) float64 {
	if i < 0 || i >= h.count {
		return 0
	}
	return h.data[(h.head-1-i+2*h.size)%h.size]
}

// Values returns all samples, newest first.
func (h *History) Values() []float64 {
	if h.count == 0 {
		return nil
	}
	out := make([]float64, h.count)
	for i := range out {
		out[i] = h.At(i)
	}
	return out
}
