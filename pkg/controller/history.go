package controller

import "github.com/towersim/towersim/pkg/types"

// History is a fixed-capacity FIFO window over the most recent chart samples.
// Once full, appending evicts the oldest entry. There is no removal API and
// stored samples are never mutated.
type History struct {
	buf   []types.HistorySample
	start int
	size  int
}

// NewHistory creates an empty history window with the given capacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = types.HistoryCapacity
	}
	return &History{buf: make([]types.HistorySample, capacity)}
}

// Append pushes one sample, evicting the oldest if the window is full.
func (h *History) Append(s types.HistorySample) {
	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = s
		h.size++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % len(h.buf)
}

// Len returns the number of samples currently held.
func (h *History) Len() int {
	return h.size
}

// Samples returns a copy of the window, oldest first.
func (h *History) Samples() []types.HistorySample {
	out := make([]types.HistorySample, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}
