package renal

import "math"

// MDRD estimates GFR (mL/min/1.73m2) by the 4-variable MDRD equation:
//
//	eGFR = 186 · scr^(−1.154) · age^(−0.203) · f_sex · f_race
//
// with f_sex = 0.762 for females and f_race = 1.210 for black patients.
// scr is in mg/dL.
func MDRD(sex Sex, race Race, age, scrMgDL float64) float64 {
	egfr := 186 * math.Pow(scrMgDL, -1.154) * math.Pow(age, -0.203)
	if sex == Female {
		egfr *= 0.762
	}
	if race == RaceBlack {
		egfr *= 1.210
	}
	return egfr
}

// CKDEPI estimates GFR (mL/min/1.73m2) by the CKD-EPI equation:
//
//	eGFR = 141 · min(scr,1)^(−0.329) · max(scr,1)^(−1.209) · 0.993^age · f_sex · f_race
//
// with f_sex = 1.018 for females and f_race = 1.159 for black patients.
// scr is in mg/dL.
func CKDEPI(sex Sex, race Race, age, scrMgDL float64) float64 {
	egfr := 141 *
		math.Pow(math.Min(scrMgDL, 1), -0.329) *
		math.Pow(math.Max(scrMgDL, 1), -1.209) *
		math.Pow(0.993, age)
	if sex == Female {
		egfr *= 1.018
	}
	if race == RaceBlack {
		egfr *= 1.159
	}
	return egfr
}
