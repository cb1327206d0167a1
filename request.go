package renal

import "log/slog"

// Request carries the inputs for one estimation call. It is a value type;
// Estimate never mutates it or the slices it references.
//
// Optional scalar covariates use the zero value for "not supplied" (no
// method accepts age 0, weight 0, height 0, or BSA 0 as real inputs).
// Pointer fields are explicit caller overrides of per-method defaults.
type Request struct {
	// Method is the free-text equation name, resolved by ParseMethod.
	Method string

	// Patient covariates.
	Sex     Sex
	Age     float64 // years, may be fractional
	Weight  float64 // kg
	Height  float64 // cm
	Race    Race    // observed by MDRD and CKD-EPI only
	Preterm *bool   // required by the original Schwartz equation
	CKD     bool    // recorded pass-through flag, not observed by any formula

	// Creatinine observation sequence. CreatinineUnits holds one unit
	// string per observation, or a single string broadcast to all; when
	// empty, mg/dL is assumed with a diagnostic. Times (days) are used by
	// jelliffe_unstable only.
	Creatinine      []float64
	CreatinineUnits []string
	Times           []float64

	// BSA (m²) directly, or derived from weight and height via BSAFn /
	// BSAMethod ("dubois" default, "mosteller").
	BSA       float64
	BSAMethod string

	// Relative overrides the method's native reporting convention.
	// OutputUnit is mL/min (default), L/hr, or mL/hr. Min and Max clamp
	// the final values.
	Relative   *bool
	OutputUnit string
	Min        *float64
	Max        *float64

	// Verbose logs diagnostics through Logger (slog.Default when nil).
	Verbose bool
	Logger  *slog.Logger

	// Collaborator overrides; package defaults apply when nil.
	BSAFn            BSAFunc
	IdealWeightFn    IdealWeightFunc
	AdjustedWeightFn AdjustedWeightFunc
	AdaptiveWeightFn AdaptiveWeightFunc
	WeightFactor     float64 // adjusted-weight correction factor, 0 → 0.4
}

// Result is the outcome of one estimation call: one value per creatinine
// observation, the unit they are reported in, which weight basis entered
// the calculation, and any non-fatal advisories.
type Result struct {
	Values      []float64
	Unit        string
	WeightBasis string
	Diagnostics []Diagnostic
}
