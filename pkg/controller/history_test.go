package controller

import (
	"fmt"
	"testing"

	"github.com/towersim/towersim/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	sample := func(i int) types.HistorySample {
		return types.HistorySample{
			TimeLabel: fmt.Sprintf("%02d:00", i%24),
			LoadKW:    float64(i),
			SolarKW:   float64(i) / 2,
		}
	}

	t.Run("Empty", func(t *testing.T) {
		h := NewHistory(types.HistoryCapacity)
		assert.Zero(t, h.Len())
		assert.Empty(t, h.Samples())
	})

	t.Run("Preserves Insertion Order", func(t *testing.T) {
		h := NewHistory(types.HistoryCapacity)
		for i := 0; i < 5; i++ {
			h.Append(sample(i))
		}
		got := h.Samples()
		require.Len(t, got, 5)
		for i, s := range got {
			assert.Equal(t, sample(i), s)
		}
	})

	t.Run("Evicts Oldest First", func(t *testing.T) {
		h := NewHistory(types.HistoryCapacity)
		for i := 0; i < 20; i++ {
			h.Append(sample(i))
			assert.LessOrEqual(t, h.Len(), types.HistoryCapacity)
		}
		got := h.Samples()
		require.Len(t, got, 16)
		// After 20 appends we hold exactly samples 4..19 in order.
		for i, s := range got {
			assert.Equal(t, sample(i+4), s)
		}
	})

	t.Run("Samples Returns A Copy", func(t *testing.T) {
		h := NewHistory(types.HistoryCapacity)
		h.Append(sample(0))
		got := h.Samples()
		got[0].LoadKW = 999
		assert.Equal(t, sample(0), h.Samples()[0])
	})

	t.Run("Defaults Capacity When Invalid", func(t *testing.T) {
		h := NewHistory(0)
		for i := 0; i < 40; i++ {
			h.Append(sample(i))
		}
		assert.Equal(t, types.HistoryCapacity, h.Len())
	})
}
