package renal

import "math"

// The weight and BSA estimators are collaborators of the engine, not part
// of it: they are injectable function values on the Request, with the
// implementations below as defaults.

// BSAFunc estimates body surface area (m²) from weight (kg) and height (cm).
type BSAFunc func(weightKg, heightCm float64) float64

// IdealWeightFunc estimates ideal body weight (kg).
type IdealWeightFunc func(heightCm, age float64, sex Sex) float64

// AdjustedWeightFunc combines total and ideal body weight with a
// correction factor (0.4 when factor <= 0).
type AdjustedWeightFunc func(weightKg, idealKg, factor float64) float64

// AdaptiveWeightFunc picks a dosing weight basis and reports which one.
type AdaptiveWeightFunc func(weightKg, heightCm, age float64, sex Sex) (float64, string)

// DuBoisBSA is the Du Bois & Du Bois estimate:
//
//	BSA = 0.007184 · weight^0.425 · height^0.725
func DuBoisBSA(weightKg, heightCm float64) float64 {
	return 0.007184 * math.Pow(weightKg, 0.425) * math.Pow(heightCm, 0.725)
}

// MostellerBSA is the Mosteller estimate:
//
//	BSA = sqrt(weight · height / 3600)
func MostellerBSA(weightKg, heightCm float64) float64 {
	return math.Sqrt(weightKg * heightCm / 3600)
}

// bsaMethods maps the Request.BSAMethod selector to an estimator.
var bsaMethods = map[string]BSAFunc{
	"dubois":    DuBoisBSA,
	"mosteller": MostellerBSA,
}

// DevineIdealWeight is the Devine estimate:
//
//	male:   50.0 + 2.3·(height_in − 60)
//	female: 45.5 + 2.3·(height_in − 60)
//
// Below 60 inches the height term is clamped to zero.
func DevineIdealWeight(heightCm, age float64, sex Sex) float64 {
	inches := heightCm / 2.54
	over := inches - 60
	if over < 0 {
		over = 0
	}
	base := 50.0
	if sex == Female {
		base = 45.5
	}
	return base + 2.3*over
}

// StandardAdjustedWeight is IBW + factor·(TBW − IBW), factor 0.4 by default.
func StandardAdjustedWeight(weightKg, idealKg, factor float64) float64 {
	if factor <= 0 {
		factor = 0.4
	}
	return idealKg + factor*(weightKg-idealKg)
}

// DosingWeight selects an adaptive weight basis:
//
//	TBW < IBW        → total body weight (underweight, no correction)
//	TBW/IBW > 1.25   → adjusted body weight (0.4 factor)
//	otherwise        → ideal body weight
func DosingWeight(weightKg, heightCm, age float64, sex Sex) (float64, string) {
	ibw := DevineIdealWeight(heightCm, age, sex)
	switch {
	case weightKg < ibw:
		return weightKg, TotalBodyWeight
	case weightKg/ibw > 1.25:
		return StandardAdjustedWeight(weightKg, ibw, 0.4), AdjustedBodyWeight
	default:
		return ibw, IdealBodyWeight
	}
}
