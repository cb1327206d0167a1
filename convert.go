package renal

import "gonum.org/v1/gonum/floats"

// ReferenceBSA is the standard body surface area (m²) that relative
// clearances are normalized to.
const ReferenceBSA = 1.73

// toAbsolute rescales values reported per 1.73 m² to the patient's BSA.
func toAbsolute(values []float64, bsa float64) {
	floats.Scale(bsa/ReferenceBSA, values)
}

// toRelative rescales absolute values to the 1.73 m² convention.
func toRelative(values []float64, bsa float64) {
	floats.Scale(ReferenceBSA/bsa, values)
}

// applyOutputUnit converts values computed in mL/min to the output unit.
func applyOutputUnit(values []float64, u OutputUnit) {
	if u != MLMin {
		floats.Scale(u.FromMLMin(1), values)
	}
}

// clamp bounds every value to [min, max]; nil bounds are open.
// Clamping is idempotent.
func clamp(values []float64, min, max *float64) {
	for i, v := range values {
		if min != nil && v < *min {
			values[i] = *min
		}
		if max != nil && v > *max {
			values[i] = *max
		}
	}
}
