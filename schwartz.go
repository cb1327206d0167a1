package renal

// SchwartzK returns the constant k of the original Schwartz equation for
// the given age (years), prematurity, and sex:
//
//	k = 0.45  age < 1
//	k = 0.33  age < 1 and preterm
//	k = 0.70  age > 13 and male
//	k = 0.55  otherwise
func SchwartzK(sex Sex, age float64, preterm bool) float64 {
	switch {
	case age < 1 && preterm:
		return 0.33
	case age < 1:
		return 0.45
	case age > 13 && sex == Male:
		return 0.70
	default:
		return 0.55
	}
}

// Schwartz estimates pediatric GFR (mL/min/1.73m2) by the original
// Schwartz equation:
//
//	eGFR = k · height / scr
//
// with height in cm and scr in mg/dL.
func Schwartz(sex Sex, age, heightCm, scrMgDL float64, preterm bool) float64 {
	return SchwartzK(sex, age, preterm) * heightCm / scrMgDL
}

// SchwartzRevised estimates pediatric GFR (mL/min/1.73m2) by the revised
// (bedside) Schwartz equation with k fixed at 0.413:
//
//	eGFR = 0.413 · height / scr
//
// The revised constant was derived in children over one year of age; the
// engine attaches an advisory diagnostic, not an error, below that.
func SchwartzRevised(heightCm, scrMgDL float64) float64 {
	return 0.413 * heightCm / scrMgDL
}
