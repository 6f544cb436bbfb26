package sim

import "github.com/towersim/towersim/pkg/types"

// IceLevelPct returns the ice thermal storage charge level in percent,
// always clamped to [0,100].
//
// Manual operation never uses the thermal battery, so the level is 0. Under
// AI operation the store charges overnight (15%/h across hours 0-5), holds
// at 90% through the morning, then draws down 15%/h across the peak window
// starting from 90% at hour 11.
func IceLevelPct(hour int, peak bool, mode types.OperatingMode) float64 {
	if mode == types.ModeManual {
		return 0
	}

	var pct float64
	switch {
	case hour < daylightStartHour:
		pct = float64(hour) * 15
	case peak:
		pct = 90 - float64(hour-peakStartHour)*15
	default:
		pct = 90
	}

	return clampPct(pct)
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
