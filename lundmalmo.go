package renal

import "math"

// LundMalmoRevised estimates GFR (mL/min/1.73m2) by the revised
// Lund-Malmö equation. scr is in µmol/L. The exponent x is piecewise in
// sex and creatinine:
//
//	female, scr < 150: x = 2.50 + 0.0121·(150 − scr)
//	female, scr ≥ 150: x = 2.50 − 0.926·ln(scr/150)
//	male,   scr < 180: x = 2.56 + 0.00968·(180 − scr)
//	male,   scr ≥ 180: x = 2.56 − 0.926·ln(scr/150)
//
// then
//
//	eGFR = exp(x − 0.0158·age + 0.438·ln(age))
func LundMalmoRevised(sex Sex, age, scrUmolL float64) float64 {
	var x float64
	if sex == Female {
		if scrUmolL < 150 {
			x = 2.50 + 0.0121*(150-scrUmolL)
		} else {
			x = 2.50 - 0.926*math.Log(scrUmolL/150)
		}
	} else {
		if scrUmolL < 180 {
			x = 2.56 + 0.00968*(180-scrUmolL)
		} else {
			x = 2.56 - 0.926*math.Log(scrUmolL/150)
		}
	}
	return math.Exp(x - 0.0158*age + 0.438*math.Log(age))
}
