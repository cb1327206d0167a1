package renal

import "strings"

// UmolPerMgDL is the creatinine conversion factor: 1 mg/dL = 88.40 µmol/L.
const UmolPerMgDL = 88.40

// CreatinineUnit is the unit of a serum creatinine observation.
type CreatinineUnit int

const (
	UnitMgDL CreatinineUnit = iota
	UnitUmolL
)

func (u CreatinineUnit) String() string {
	if u == UnitUmolL {
		return "µmol/L"
	}
	return "mg/dL"
}

// ParseCreatinineUnit resolves a creatinine unit string.
//
// Accepted spellings: mg/dL, µmol/L, umol/L, mumol/L. Matching is
// case-insensitive and tolerates a URL-encoded slash (%2F).
func ParseCreatinineUnit(s string) (CreatinineUnit, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.ReplaceAll(n, "%2f", "/")
	switch n {
	case "mg/dl":
		return UnitMgDL, nil
	case "µmol/l", "umol/l", "mumol/l":
		return UnitUmolL, nil
	}
	return UnitMgDL, &UnknownUnitError{
		Unit:  s,
		Valid: []string{"mg/dL", "µmol/L", "umol/L", "mumol/L"},
	}
}

// ConvertCreatinine converts a creatinine value between units using the
// fixed 88.40 factor. Converting to the same unit is the identity.
func ConvertCreatinine(v float64, from, to CreatinineUnit) float64 {
	switch {
	case from == to:
		return v
	case from == UnitMgDL:
		return v * UmolPerMgDL
	default:
		return v / UmolPerMgDL
	}
}

// OutputUnit is the unit of the reported clearance values.
type OutputUnit int

const (
	MLMin OutputUnit = iota // mL/min (default)
	LHr                     // L/hr
	MLHr                    // mL/hr
)

func (u OutputUnit) String() string {
	switch u {
	case LHr:
		return "L/hr"
	case MLHr:
		return "mL/hr"
	}
	return "mL/min"
}

// ParseOutputUnit resolves an output unit string (case-insensitive).
// The empty string selects mL/min.
func ParseOutputUnit(s string) (OutputUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ml/min":
		return MLMin, nil
	case "l/hr":
		return LHr, nil
	case "ml/hr":
		return MLHr, nil
	}
	return MLMin, &UnknownUnitError{
		Unit:  s,
		Valid: []string{"mL/min", "L/hr", "mL/hr"},
	}
}

// FromMLMin converts a value computed in mL/min to this unit.
// The multipliers are rational, so the conversions are exactly invertible.
func (u OutputUnit) FromMLMin(v float64) float64 {
	switch u {
	case LHr:
		return v * 60 / 1000
	case MLHr:
		return v * 60
	}
	return v
}
