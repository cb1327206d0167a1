package renal

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Test helpers for the invariants every estimation request should satisfy,
// regardless of method. Call them from your own tests with a request that
// represents your scenario.

// AssertUnitRoundTrip verifies that converting every creatinine
// observation to the other unit via the fixed 88.40 factor and re-running
// the request yields the same result within floating-point tolerance.
func AssertUnitRoundTrip(t *testing.T, req Request) {
	t.Helper()

	base, err := Estimate(req)
	if err != nil {
		t.Fatalf("base request failed: %v", err)
	}

	flipped := req
	vals := make([]float64, len(req.Creatinine))
	tags := make([]string, len(req.Creatinine))
	for i, v := range req.Creatinine {
		u := requestUnit(req, i)
		other := UnitUmolL
		if u == UnitUmolL {
			other = UnitMgDL
		}
		vals[i] = ConvertCreatinine(v, u, other)
		tags[i] = other.String()
	}
	flipped.Creatinine = vals
	flipped.CreatinineUnits = tags

	conv, err := Estimate(flipped)
	if err != nil {
		t.Fatalf("unit-flipped request failed: %v", err)
	}

	if !floats.EqualApprox(base.Values, conv.Values, 1e-9) {
		t.Errorf("unit round trip diverged:\n  base:    %v\n  flipped: %v", base.Values, conv.Values)
	}
	t.Logf("✓ unit round trip: %s stable across mg/dL ↔ µmol/L", req.Method)
}

// AssertReportingRoundTrip verifies relative and absolute results of the
// same request relate by exactly BSA/1.73, in the direction the method
// family defines. The request must have a BSA supplied or derivable.
func AssertReportingRoundTrip(t *testing.T, req Request) {
	t.Helper()

	rel, abs := true, false
	reqRel, reqAbs := req, req
	reqRel.Relative, reqAbs.Relative = &rel, &abs

	resRel, err := Estimate(reqRel)
	if err != nil {
		t.Fatalf("relative request failed: %v", err)
	}
	resAbs, err := Estimate(reqAbs)
	if err != nil {
		t.Fatalf("absolute request failed: %v", err)
	}

	bsa := req.BSA
	if bsa == 0 {
		fn, err := resolveBSAFunc(req)
		if err != nil {
			t.Fatalf("no BSA estimator: %v", err)
		}
		bsa = fn(req.Weight, req.Height)
	}

	for i := range resRel.Values {
		back := resAbs.Values[i] * ReferenceBSA / bsa
		if !scalar.EqualWithinAbsOrRel(back, resRel.Values[i], 1e-9, 1e-9) {
			t.Errorf("reporting round trip diverged at %d: relative %.6f, absolute %.6f (BSA %.3f)",
				i, resRel.Values[i], resAbs.Values[i], bsa)
		}
	}
	t.Logf("✓ reporting round trip: %s relative ↔ absolute via BSA %.3f", req.Method, bsa)
}

// AssertOutputUnitInvertible verifies L/hr and mL/hr results map back to
// the mL/min result through the inverse multipliers.
func AssertOutputUnitInvertible(t *testing.T, req Request) {
	t.Helper()

	base := req
	base.OutputUnit = "mL/min"
	resBase, err := Estimate(base)
	if err != nil {
		t.Fatalf("mL/min request failed: %v", err)
	}

	for unit, inverse := range map[string]float64{"L/hr": 1000.0 / 60.0, "mL/hr": 1.0 / 60.0} {
		alt := req
		alt.OutputUnit = unit
		resAlt, err := Estimate(alt)
		if err != nil {
			t.Fatalf("%s request failed: %v", unit, err)
		}
		for i := range resBase.Values {
			back := resAlt.Values[i] * inverse
			if !scalar.EqualWithinAbsOrRel(back, resBase.Values[i], 1e-12, 1e-12) {
				t.Errorf("%s not invertible at %d: %.9f → %.9f, want %.9f",
					unit, i, resAlt.Values[i], back, resBase.Values[i])
			}
		}
	}
	t.Logf("✓ output units invertible: %s", req.Method)
}

// AssertClampIdempotent verifies that clamping a clamped result changes
// nothing.
func AssertClampIdempotent(t *testing.T, req Request, min, max float64) {
	t.Helper()

	req.Min, req.Max = &min, &max
	res, err := Estimate(req)
	if err != nil {
		t.Fatalf("clamped request failed: %v", err)
	}

	again := make([]float64, len(res.Values))
	copy(again, res.Values)
	clamp(again, &min, &max)

	if !floats.Equal(res.Values, again) {
		t.Errorf("clamp not idempotent:\n  once:  %v\n  twice: %v", res.Values, again)
	}
	t.Logf("✓ clamp idempotent on [%.1f, %.1f]: %s", min, max, req.Method)
}

// requestUnit resolves the unit tag of observation i the same way the
// engine does (broadcast, default mg/dL), ignoring parse errors.
func requestUnit(req Request, i int) CreatinineUnit {
	var tag string
	switch {
	case len(req.CreatinineUnits) == 0:
		return UnitMgDL
	case len(req.CreatinineUnits) == 1:
		tag = req.CreatinineUnits[0]
	case i < len(req.CreatinineUnits):
		tag = req.CreatinineUnits[i]
	}
	u, err := ParseCreatinineUnit(tag)
	if err != nil {
		return UnitMgDL
	}
	return u
}
