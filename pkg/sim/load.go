package sim

import "github.com/towersim/towersim/pkg/types"

const (
	baseLoadKW = 20
	// Temperature above which the smart window tinting engages.
	tintThresholdC = 32
	tintFactor     = 0.6
	// kW of cooling offset by discharging ice storage during the peak window.
	iceDischargeKW = 15
)

// CoolingLoadKW returns the instantaneous cooling load for the building.
//
// Manual mode is a traditional linear response to excess temperature with no
// mitigation. AI mode applies window tinting above the tint threshold and
// offsets the peak window with ice discharge. The result is intentionally
// not clamped at zero: the fixed climate table keeps it positive, and
// consumers tolerate a negative value if a future table does not.
func CoolingLoadKW(temperatureC float64, peak, daylight bool, mode types.OperatingMode) float64 {
	if mode == types.ModeManual {
		return baseLoadKW + (temperatureC-20)*2.5
	}

	tint := 1.0
	if temperatureC > tintThresholdC {
		tint = tintFactor
	}
	var discharge float64
	if peak {
		discharge = iceDischargeKW
	}
	return baseLoadKW + (temperatureC-20)*1.2*tint - discharge
}
