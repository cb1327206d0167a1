package renal

import "fmt"

// JelliffeStable estimates creatinine clearance (mL/min/1.73m2) by the
// Jelliffe equation for stable renal function:
//
//	CrCl = (98 − 0.8·(age − 20)) · (1 − 0.01·f_female) · (BSA/1.73) / (scr·0.0113)
//
// with f_female = 1 for females. scr is in µmol/L, BSA in m².
func JelliffeStable(sex Sex, age, bsa, scrUmolL float64) float64 {
	f := 0.0
	if sex == Female {
		f = 1.0
	}
	return (98 - 0.8*(age-20)) * (1 - 0.01*f) * (bsa / 1.73) / (scrUmolL * 0.0113)
}

// JelliffeUnstable estimates creatinine clearance (mL/min/1.73m2) for a
// patient whose creatinine is changing, by finite differences over the
// observation sequence. For observation i:
//
//	scr1    = previous observation (the current one when i = 0)
//	scr2    = current observation
//	scr_av  = (scr1 + scr2) / 2
//	Δt      = elapsed days since the previous sample
//	V       = 0.4 · weight · 10
//	prod    = (29.305 − 0.203·age) · weight · (1.037 − 0.0338·scr_av) · f_sex
//	CrCl_i  = (V·(scr1 − scr2)/Δt + prod) · 100 / (1440·scr_av)
//
// with f_sex = 0.765 for females, 0.85 for males. scr is in mg/dL, weight
// in kg, times in days.
//
// Elements are evaluated strictly in index order. When timesDays is empty
// or a delta is non-positive, Δt falls back to one day. Raw results below
// 1 mL/min are floored to 1, each with a DiagJelliffeFloored diagnostic.
func JelliffeUnstable(sex Sex, age, weightKg float64, scrMgDL, timesDays []float64) ([]float64, []Diagnostic) {
	f := 0.85
	if sex == Female {
		f = 0.765
	}
	vol := 0.4 * weightKg * 10

	values := make([]float64, len(scrMgDL))
	var diags []Diagnostic

	for i, scr2 := range scrMgDL {
		scr1 := scr2
		if i > 0 {
			scr1 = scrMgDL[i-1]
		}
		scrAv := (scr1 + scr2) / 2

		dt := 1.0
		if i > 0 && i < len(timesDays) {
			if d := timesDays[i] - timesDays[i-1]; d > 0 {
				dt = d
			}
		}

		production := (29.305 - 0.203*age) * weightKg * (1.037 - 0.0338*scrAv) * f
		crcl := (vol*(scr1-scr2)/dt + production) * 100 / (1440 * scrAv)

		if crcl < 1 {
			diags = append(diags, Diagnostic{
				Code:  DiagJelliffeFloored,
				Index: i,
				Message: fmt.Sprintf(
					"unstable Jelliffe result %.2f mL/min at observation %d floored to 1; check creatinine inputs", crcl, i),
			})
			crcl = 1
		}
		values[i] = crcl
	}

	return values, diags
}
