package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolarKW(t *testing.T) {
	t.Run("Dark Hours Produce Nothing", func(t *testing.T) {
		for _, hour := range []int{0, 1, 2, 3, 4, 5, 19, 20, 21, 22, 23} {
			env := Environment(hour)
			assert.Zero(t, SolarKW(hour, env.Daylight), "hour %d", hour)
		}
	})

	t.Run("Half Sine Across Daylight", func(t *testing.T) {
		for hour := 6; hour <= 18; hour++ {
			kw := SolarKW(hour, true)
			assert.GreaterOrEqual(t, kw, 0.0, "hour %d", hour)
			assert.LessOrEqual(t, kw, 50.0, "hour %d", hour)
		}
		// Strictly positive away from the window edges.
		for hour := 7; hour <= 17; hour++ {
			assert.Greater(t, SolarKW(hour, true), 0.0, "hour %d", hour)
		}
	})

	t.Run("Peaks At Solar Noon", func(t *testing.T) {
		assert.InDelta(t, 50.0, SolarKW(12, true), 0.001)
		// Boundaries return to zero.
		assert.InDelta(t, 0.0, SolarKW(6, true), 0.001)
		assert.InDelta(t, 0.0, SolarKW(18, true), 0.001)
	})
}
