package sim

import "math"

// solarPeakKW is the installed PV capacity at solar noon.
const solarPeakKW = 50

// SolarKW returns the solar generation for the given hour as a half-sine
// curve across the daylight window: 0 at hours 6 and 18, peaking at 50 kW at
// hour 12. Outside daylight it is always 0.
func SolarKW(hour int, daylight bool) float64 {
	if !daylight {
		return 0
	}
	kw := solarPeakKW * math.Sin(float64(hour-daylightStartHour)*math.Pi/12)
	// The sine can dip fractionally below zero at the window edges.
	if kw < 0 {
		return 0
	}
	return kw
}
