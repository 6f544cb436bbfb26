package sim

import "math"

// Liters of condensate recovered per kWh of cooling work.
const recoveryLitersPerKWH = 0.4

// WaterRecoveredLPH returns the condensate recovery rate in liters per hour,
// directly proportional to the cooling load and rounded to one decimal.
func WaterRecoveredLPH(coolingLoadKW float64) float64 {
	return math.Round(coolingLoadKW*recoveryLitersPerKWH*10) / 10
}
