package recap

const lbsPerKg = 2.20462

// ConvertWeight converts a weight value between units. Converting to the
// same unit returns the value unchanged.
func ConvertWeight(value float64, from, to WeightUnit) float64 {
	if from == to {
		return value
	}
	if from == UnitKg && to == UnitLbs {
		return value * lbsPerKg
	}
	return value / lbsPerKg
}
