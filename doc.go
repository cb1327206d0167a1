// Package renal estimates renal function (eGFR / creatinine clearance)
// from serum creatinine and patient covariates.
//
// # Overview
//
// renal implements the published clinical equations as pure functions and
// wraps them in a single dispatch engine that normalizes units, validates
// per-method covariate requirements, and converts between absolute and
// BSA-relative reporting:
//
//   - Cockcroft-Gault (plus ideal / adjusted / adaptive weight variants)
//   - MDRD
//   - CKD-EPI
//   - Revised Lund-Malmö
//   - Schwartz (original and revised/bedside)
//   - Jelliffe (stable and unstable renal function)
//   - Wright
//
// # Quick Start
//
// Estimate creatinine clearance for a single observation:
//
//	res, err := renal.Estimate(renal.Request{
//	    Method:     "cockcroft_gault",
//	    Sex:        renal.Male,
//	    Age:        50,
//	    Weight:     70,
//	    Creatinine: []float64{1.1}, // mg/dL assumed when no unit given
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("CrCl = %.1f %s\n", res.Values[0], res.Unit)
//
// The individual equations are also exported as pure functions:
//
//	crcl := renal.CockcroftGault(renal.Male, 50, 70, 1.1)
//
// # Units
//
// Serum creatinine is accepted in mg/dL or µmol/L (1 mg/dL = 88.40 µmol/L),
// per observation or broadcast across the whole sequence. Each equation has
// a canonical internal unit and the engine converts before evaluation, so
// mixed-unit sequences are supported. Output is mL/min, L/hr, or mL/hr.
//
// # Relative vs absolute reporting
//
// Cockcroft-Gault is natively absolute (mL/min); every other method is
// natively relative (mL/min/1.73m2). The conversion direction is therefore
// method-dependent:
//
//	absolute = relative · BSA/1.73    (non-Cockcroft-Gault methods)
//	relative = absolute / (BSA/1.73)  (Cockcroft-Gault family)
//
// BSA is taken directly from the request or derived from weight and height
// via an injectable estimator (Du Bois by default).
//
// # Time-series mode
//
// The Jelliffe equation for unstable renal function is not a pure function
// of a single observation: element i depends on element i-1 and the elapsed
// time between samples.
//
//	CrCl_i = (V·(scr1-scr2)/Δt + production) · 100 / (1440·scr_av)
//
// The first sample uses scr1 = scr2 and non-positive time deltas fall back
// to one day. Results below 1 mL/min are floored to 1 with a diagnostic.
//
// # Diagnostics
//
// Non-fatal conditions (assumed creatinine unit, revised Schwartz under one
// year of age, Jelliffe flooring) surface as a structured list on the
// Result rather than a log side channel, so callers can assert on them:
//
//	for _, d := range res.Diagnostics {
//	    fmt.Println(d.Code, d.Message)
//	}
//
// With Request.Verbose set, diagnostics are additionally logged through
// log/slog.
//
// # Testing
//
// Round-trip properties of the conversion layers can be checked with the
// exported assertion helpers:
//
//	func TestMyScenario(t *testing.T) {
//	    req := renal.Request{...}
//	    renal.AssertUnitRoundTrip(t, req)
//	    renal.AssertOutputUnitInvertible(t, req)
//	    renal.AssertClampIdempotent(t, req, 10, 120)
//	}
package renal
