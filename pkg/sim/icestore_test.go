package sim

import (
	"testing"

	"github.com/towersim/towersim/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestIceLevelPct(t *testing.T) {
	t.Run("Manual Never Uses Storage", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			env := Environment(hour)
			assert.Zero(t, IceLevelPct(hour, env.Peak, types.ModeManual), "hour %d", hour)
		}
	})

	t.Run("Always Within Bounds", func(t *testing.T) {
		for _, mode := range []types.OperatingMode{types.ModeAIOptimized, types.ModeManual} {
			for hour := 0; hour < 24; hour++ {
				pct := IceLevelPct(hour, Environment(hour).Peak, mode)
				assert.GreaterOrEqual(t, pct, 0.0, "hour %d mode %s", hour, mode)
				assert.LessOrEqual(t, pct, 100.0, "hour %d mode %s", hour, mode)
			}
		}
	})

	t.Run("Night Charging Ramp", func(t *testing.T) {
		for hour := 0; hour < 6; hour++ {
			assert.InDelta(t, float64(hour)*15, IceLevelPct(hour, false, types.ModeAIOptimized), 0.001)
		}
	})

	t.Run("Peak Drawdown", func(t *testing.T) {
		// 90% at hour 11 draining 15%/h, reaching empty at hour 17.
		expected := map[int]float64{11: 90, 12: 75, 13: 60, 14: 45, 15: 30, 16: 15, 17: 0}
		for hour, want := range expected {
			assert.InDelta(t, want, IceLevelPct(hour, true, types.ModeAIOptimized), 0.001, "hour %d", hour)
		}
	})

	t.Run("Flat Outside Charge And Peak Windows", func(t *testing.T) {
		for _, hour := range []int{6, 7, 8, 9, 10, 18, 19, 20, 21, 22, 23} {
			assert.InDelta(t, 90.0, IceLevelPct(hour, false, types.ModeAIOptimized), 0.001, "hour %d", hour)
		}
	})
}
