package sim

import (
	"testing"

	"github.com/towersim/towersim/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	t.Run("Manual Wins Regardless Of Hour", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			env := Environment(hour)
			assert.Equal(t, AnalysisManual, Analyze(hour, env.Daylight, types.ModeManual), "hour %d", hour)
		}
	})

	t.Run("Peak Heat Takes Priority Over Daylight", func(t *testing.T) {
		for hour := 12; hour <= 15; hour++ {
			assert.Equal(t, AnalysisPeakHeat, Analyze(hour, true, types.ModeAIOptimized), "hour %d", hour)
		}
	})

	t.Run("Daylight Outside Peak Heat", func(t *testing.T) {
		for _, hour := range []int{6, 8, 10, 11, 16, 17, 18} {
			assert.Equal(t, AnalysisDaylight, Analyze(hour, true, types.ModeAIOptimized), "hour %d", hour)
		}
	})

	t.Run("Night Charging After Dark", func(t *testing.T) {
		for _, hour := range []int{0, 2, 5, 19, 21, 23} {
			assert.Equal(t, AnalysisNightCharge, Analyze(hour, false, types.ModeAIOptimized), "hour %d", hour)
		}
	})

	t.Run("Exactly One Message Per Tick", func(t *testing.T) {
		for hour := 0; hour < 24; hour++ {
			env := Environment(hour)
			msg := Analyze(hour, env.Daylight, types.ModeAIOptimized)
			assert.Contains(t, []string{AnalysisPeakHeat, AnalysisDaylight, AnalysisNightCharge}, msg)
		}
	})
}
