package renal

// CockcroftGault estimates creatinine clearance (mL/min, absolute):
//
//	CrCl = f_sex · (140 − age) / scr · (weight / 72)
//
// with f_sex = 0.85 for females. scr is in mg/dL, weight in kg.
//
// The weight argument is whatever basis the caller has chosen; the ideal /
// adjusted / adaptive variants differ only in which weight they substitute.
func CockcroftGault(sex Sex, age, weightKg, scrMgDL float64) float64 {
	f := 1.0
	if sex == Female {
		f = 0.85
	}
	return f * (140 - age) / scrMgDL * (weightKg / 72)
}
