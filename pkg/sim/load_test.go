package sim

import (
	"testing"

	"github.com/towersim/towersim/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestCoolingLoadKW(t *testing.T) {
	t.Run("Manual Is Linear In Excess Temperature", func(t *testing.T) {
		assert.InDelta(t, 20.0, CoolingLoadKW(20, false, false, types.ModeManual), 0.001)
		assert.InDelta(t, 82.5, CoolingLoadKW(45, true, true, types.ModeManual), 0.001)
		// Peak/daylight have no effect in manual mode.
		assert.Equal(t,
			CoolingLoadKW(35, true, true, types.ModeManual),
			CoolingLoadKW(35, false, false, types.ModeManual))
	})

	t.Run("AI Tinting Engages Above Threshold", func(t *testing.T) {
		// 32°C: no tinting. 20 + 12*1.2 = 34.4
		assert.InDelta(t, 34.4, CoolingLoadKW(32, false, true, types.ModeAIOptimized), 0.001)
		// 33°C: tinted. 20 + 13*1.2*0.6 = 29.36
		assert.InDelta(t, 29.36, CoolingLoadKW(33, false, true, types.ModeAIOptimized), 0.001)
	})

	t.Run("AI Peak Discharge Offsets Load", func(t *testing.T) {
		offPeak := CoolingLoadKW(45, false, true, types.ModeAIOptimized)
		onPeak := CoolingLoadKW(45, true, true, types.ModeAIOptimized)
		assert.InDelta(t, 15.0, offPeak-onPeak, 0.001)
	})

	t.Run("AI Beats Manual In Peak Heat", func(t *testing.T) {
		for _, temp := range []float64{33, 38, 42, 45} {
			ai := CoolingLoadKW(temp, true, true, types.ModeAIOptimized)
			manual := CoolingLoadKW(temp, true, true, types.ModeManual)
			assert.Less(t, ai, manual, "temp %.0f", temp)
		}
	})

	t.Run("Not Clamped Below Zero", func(t *testing.T) {
		// A hypothetical cold hour inside the peak window: the discharge can
		// push the AI load negative and the model passes that through.
		load := CoolingLoadKW(15, true, true, types.ModeAIOptimized)
		assert.Less(t, load, 0.0)
	})
}
