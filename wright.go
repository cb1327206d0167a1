package renal

// Wright estimates GFR (mL/min/1.73m2) by the Wright equation, derived in
// cancer patients:
//
//	eGFR = (6580 − 38.8·age) · BSA · (1 − 0.168·f_female) / scr
//
// with f_female = 1 for females. scr is in µmol/L, BSA in m².
func Wright(sex Sex, age, bsa, scrUmolL float64) float64 {
	f := 0.0
	if sex == Female {
		f = 1.0
	}
	return (6580 - 38.8*age) * bsa * (1 - 0.168*f) / scrUmolL
}
