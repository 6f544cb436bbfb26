// Package sim implements the per-hour derivation models for the building
// simulation: ambient environment, solar generation, cooling load, ice
// thermal storage, condensate recovery and the status narrator. Every model
// is a pure function of the simulated hour and the operating mode.
package sim

import (
	"github.com/towersim/towersim/pkg/types"
)

// climateTable holds the ambient temperature (°C) for each hour of the
// synthetic hot-climate day: trough of 26 around 02:00-03:00, peak of 45
// around 11:00-12:00.
var climateTable = [24]float64{
	28, 27, 26, 26, 27, 28, // 00-05
	30, 32, 35, 38, 42, 45, // 06-11
	45, 44, 43, 42, 40, 38, // 12-17
	36, 34, 32, 31, 30, 29, // 18-23
}

const (
	daylightStartHour = 6
	daylightEndHour   = 18
	peakStartHour     = 11
	peakEndHour       = 17
)

// Environment resolves the ambient conditions for the given hour.
// The caller must pass hour in [0,23]; wraparound is the clock's job.
func Environment(hour int) types.EnvironmentSample {
	return types.EnvironmentSample{
		Hour:         hour,
		TemperatureC: climateTable[hour],
		Daylight:     hour >= daylightStartHour && hour <= daylightEndHour,
		Peak:         hour >= peakStartHour && hour <= peakEndHour,
	}
}

// ClimateDay returns the environment for all 24 hours, oldest first. The API
// serves this so chart axes don't need to replicate the table.
func ClimateDay() []types.EnvironmentSample {
	day := make([]types.EnvironmentSample, 0, len(climateTable))
	for h := range climateTable {
		day = append(day, Environment(h))
	}
	return day
}
