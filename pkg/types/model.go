package types

import (
	"fmt"
	"time"
)

// HistoryCapacity is the number of samples retained for charting.
// It is part of the engine contract, not a tunable.
const HistoryCapacity = 16

// OperatingMode represents how the building is being run.
type OperatingMode string

const (
	ModeAIOptimized OperatingMode = "ai_optimized"
	ModeManual      OperatingMode = "manual"
)

// Valid reports whether the mode is one of the two known modes.
func (m OperatingMode) Valid() bool {
	return m == ModeAIOptimized || m == ModeManual
}

// ParseOperatingMode parses a mode string from the API or flags.
func ParseOperatingMode(s string) (OperatingMode, error) {
	m := OperatingMode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown operating mode: %q", s)
	}
	return m, nil
}

// EnvironmentSample is the resolved environment for a single simulated hour.
// It is derived from the fixed climate table and never stored beyond the tick
// that computed it.
type EnvironmentSample struct {
	Hour         int     `json:"hour"`
	TemperatureC float64 `json:"temperatureC"`
	Daylight     bool    `json:"daylight"`
	Peak         bool    `json:"peak"`
}

// Snapshot is the full per-tick output of the simulation engine. It is
// recomputed fresh on every tick and on every mode change, never mutated in
// place.
type Snapshot struct {
	Timestamp         time.Time     `json:"timestamp"`
	Hour              int           `json:"hour"`
	Mode              OperatingMode `json:"mode"`
	TemperatureC      float64       `json:"temperatureC"`
	CoolingLoadKW     float64       `json:"coolingLoadKW"`
	IceLevelPct       float64       `json:"iceLevelPct"`
	SolarKW           float64       `json:"solarKW"`
	WaterRecoveredLPH float64       `json:"waterRecoveredLPH"`
	Analysis          string        `json:"analysis"`
}

// HistorySample is one charting point derived from a Snapshot. Samples are
// immutable once created and evicted only by capacity overflow.
type HistorySample struct {
	TimeLabel string  `json:"time"`
	LoadKW    float64 `json:"loadKW"`
	SolarKW   float64 `json:"solarKW"`
}
