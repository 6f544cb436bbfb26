package sim

import "github.com/towersim/towersim/pkg/types"

// Status messages surfaced on the dashboard. Exported so the API tests and
// telemetry can compare against the exact strings.
const (
	AnalysisManual = "Manual operation: chillers tracking the full thermal load with no storage or tinting, wasting energy and recovered water."

	AnalysisPeakHeat = "Peak heat: discharging ice storage and running on solar to shave the afternoon cooling load."

	AnalysisDaylight = "Daylight operation: solar generation covering cooling demand with clean energy."

	AnalysisNightCharge = "Overnight: pre-cooling the building and recharging ice storage on off-peak power."
)

// Hours 12-15 get the peak-heat narration even though they also fall inside
// the daylight window; the check order is the precedence.
const (
	peakHeatStartHour = 12
	peakHeatEndHour   = 15
)

// Analyze selects the status narration for the current hour and mode.
// Exactly one message applies per tick.
func Analyze(hour int, daylight bool, mode types.OperatingMode) string {
	if mode == types.ModeManual {
		return AnalysisManual
	}
	if hour >= peakHeatStartHour && hour <= peakHeatEndHour {
		return AnalysisPeakHeat
	}
	if daylight {
		return AnalysisDaylight
	}
	return AnalysisNightCharge
}
