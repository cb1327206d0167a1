package renal

import (
	"fmt"
	"strings"
)

// Estimate runs the full pipeline for one request: method resolution,
// covariate validation with weight substitution, creatinine unit
// normalization, per-method calculation, and relative/absolute, output
// unit, and clamp post-processing.
//
// All validation errors (unknown method or unit, missing covariates,
// missing BSA) are returned before any value is calculated; a call either
// fails whole or succeeds whole. Non-fatal conditions come back as
// Result.Diagnostics.
func Estimate(req Request) (*Result, error) {
	m, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	tr := m.traits()

	out, err := ParseOutputUnit(req.OutputUnit)
	if err != nil {
		return nil, err
	}

	units, diags, err := resolveCreatinineUnits(req)
	if err != nil {
		return nil, err
	}

	bsaFn, err := resolveBSAFunc(req)
	if err != nil {
		return nil, err
	}
	bsa, haveBSA := req.BSA, req.BSA > 0
	if !haveBSA && req.Weight > 0 && req.Height > 0 {
		bsa, haveBSA = bsaFn(req.Weight, req.Height), true
	}

	if err := validateCovariates(m, tr, req, haveBSA); err != nil {
		return nil, err
	}

	// Caller override, then the per-method default convention.
	relative := tr.relative
	if req.Relative != nil {
		relative = *req.Relative
	}
	if relative != tr.relative && !haveBSA {
		return nil, &MissingBSAError{Method: m}
	}

	weight, basis := substituteWeight(tr, req)

	// Normalize each observation to the unit the formula expects.
	scr := make([]float64, len(req.Creatinine))
	for i, v := range req.Creatinine {
		scr[i] = ConvertCreatinine(v, units[i], tr.scrUnit)
	}

	var values []float64
	if tr.series {
		var sd []Diagnostic
		values, sd = JelliffeUnstable(req.Sex, req.Age, weight, scr, req.Times)
		diags = append(diags, sd...)
	} else {
		values = make([]float64, len(scr))
		for i, s := range scr {
			values[i] = evaluate(m, req, weight, bsa, s)
		}
	}

	if m == MethodSchwartzRevised && req.Age < 1 {
		diags = append(diags, Diagnostic{
			Code:  DiagSchwartzAgeUnder1,
			Index: -1,
			Message: fmt.Sprintf(
				"revised Schwartz constant 0.413 applied at age %.2f; it was derived in children over 1 year", req.Age),
		})
	}

	// Direction is method-dependent: Cockcroft-Gault is natively absolute,
	// everything else natively relative.
	if relative != tr.relative {
		if tr.relative {
			toAbsolute(values, bsa)
		} else {
			toRelative(values, bsa)
		}
	}

	applyOutputUnit(values, out)
	clamp(values, req.Min, req.Max)

	unit := out.String()
	if relative {
		unit += "/1.73m2"
	}

	if req.Verbose {
		logDiagnostics(req.Logger, m, diags)
	}

	return &Result{
		Values:      values,
		Unit:        unit,
		WeightBasis: basis,
		Diagnostics: diags,
	}, nil
}

// evaluate computes one observation for the non-series methods. scr is
// already in the method's canonical unit and weight already substituted.
func evaluate(m Method, req Request, weight, bsa, scr float64) float64 {
	switch m {
	case MethodCockcroftGault, MethodCockcroftGaultIdeal,
		MethodCockcroftGaultAdjusted, MethodCockcroftGaultAdaptive:
		return CockcroftGault(req.Sex, req.Age, weight, scr)
	case MethodMDRD:
		return MDRD(req.Sex, req.Race, req.Age, scr)
	case MethodCKDEPI:
		return CKDEPI(req.Sex, req.Race, req.Age, scr)
	case MethodLundMalmoRevised:
		return LundMalmoRevised(req.Sex, req.Age, scr)
	case MethodSchwartz:
		preterm := req.Preterm != nil && *req.Preterm
		return Schwartz(req.Sex, req.Age, req.Height, scr, preterm)
	case MethodSchwartzRevised:
		return SchwartzRevised(req.Height, scr)
	case MethodJelliffe:
		return JelliffeStable(req.Sex, req.Age, bsa, scr)
	case MethodWright:
		return Wright(req.Sex, req.Age, bsa, scr)
	}
	return 0
}

// validateCovariates asserts the method's required-covariate set from the
// traits table and reports every missing field at once.
func validateCovariates(m Method, tr methodTraits, req Request, haveBSA bool) error {
	var missing []string
	if len(req.Creatinine) == 0 {
		missing = append(missing, "creatinine")
	}
	if tr.needsSex && req.Sex == SexUnknown {
		missing = append(missing, "sex")
	}
	if tr.needsAge && req.Age <= 0 {
		missing = append(missing, "age")
	}
	if tr.needsWeight && req.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if tr.needsHeight && req.Height <= 0 {
		missing = append(missing, "height")
	}
	if tr.needsPreterm && req.Preterm == nil {
		missing = append(missing, "preterm")
	}
	if tr.needsBSA && !haveBSA {
		missing = append(missing, "bsa")
	}
	if len(missing) > 0 {
		return &MissingCovariateError{Method: m, Missing: missing}
	}
	return nil
}

// resolveCreatinineUnits parses the per-observation unit tags, broadcasting
// a single tag across the sequence and assuming mg/dL (with a diagnostic)
// when none is given.
func resolveCreatinineUnits(req Request) ([]CreatinineUnit, []Diagnostic, error) {
	n := len(req.Creatinine)
	units := make([]CreatinineUnit, n)

	switch len(req.CreatinineUnits) {
	case 0:
		return units, []Diagnostic{{
			Code:    DiagUnitAssumed,
			Index:   -1,
			Message: "no creatinine unit supplied, assuming mg/dL",
		}}, nil
	case 1:
		u, err := ParseCreatinineUnit(req.CreatinineUnits[0])
		if err != nil {
			return nil, nil, err
		}
		for i := range units {
			units[i] = u
		}
		return units, nil, nil
	case n:
		for i, s := range req.CreatinineUnits {
			u, err := ParseCreatinineUnit(s)
			if err != nil {
				return nil, nil, err
			}
			units[i] = u
		}
		return units, nil, nil
	default:
		return nil, nil, fmt.Errorf(
			"got %d creatinine unit tags for %d observations; supply one per observation or a single tag",
			len(req.CreatinineUnits), n)
	}
}

// resolveBSAFunc picks the BSA collaborator: an explicit override, else
// the estimator named by BSAMethod, else Du Bois.
func resolveBSAFunc(req Request) (BSAFunc, error) {
	if req.BSAFn != nil {
		return req.BSAFn, nil
	}
	name := strings.ToLower(strings.TrimSpace(req.BSAMethod))
	if name == "" {
		name = "dubois"
	}
	fn, ok := bsaMethods[name]
	if !ok {
		return nil, fmt.Errorf("unknown BSA method %q (available: dubois, mosteller)", req.BSAMethod)
	}
	return fn, nil
}

// substituteWeight applies the Cockcroft-Gault variant's weight basis,
// leaving the request untouched.
func substituteWeight(tr methodTraits, req Request) (float64, string) {
	switch tr.weight {
	case weightIdeal:
		fn := req.IdealWeightFn
		if fn == nil {
			fn = DevineIdealWeight
		}
		return fn(req.Height, req.Age, req.Sex), IdealBodyWeight
	case weightAdjusted:
		ibwFn := req.IdealWeightFn
		if ibwFn == nil {
			ibwFn = DevineIdealWeight
		}
		adjFn := req.AdjustedWeightFn
		if adjFn == nil {
			adjFn = StandardAdjustedWeight
		}
		return adjFn(req.Weight, ibwFn(req.Height, req.Age, req.Sex), req.WeightFactor), AdjustedBodyWeight
	case weightAdaptive:
		fn := req.AdaptiveWeightFn
		if fn == nil {
			fn = DosingWeight
		}
		return fn(req.Weight, req.Height, req.Age, req.Sex)
	default:
		return req.Weight, TotalBodyWeight
	}
}
