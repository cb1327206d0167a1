package renal

import "strings"

// Method identifies one of the supported renal function equations.
//
// Dispatch is a single switch over this closed set; the free-text name
// supplied by callers is resolved once by ParseMethod.
type Method int

const (
	methodInvalid Method = iota
	MethodCockcroftGault
	MethodCockcroftGaultIdeal
	MethodCockcroftGaultAdjusted
	MethodCockcroftGaultAdaptive
	MethodMDRD
	MethodCKDEPI
	MethodLundMalmoRevised
	MethodSchwartz
	MethodSchwartzRevised
	MethodJelliffe
	MethodJelliffeUnstable
	MethodWright
)

var methodNames = map[Method]string{
	MethodCockcroftGault:         "cockcroft_gault",
	MethodCockcroftGaultIdeal:    "cockcroft_gault_ideal",
	MethodCockcroftGaultAdjusted: "cockcroft_gault_adjusted",
	MethodCockcroftGaultAdaptive: "cockcroft_gault_adaptive",
	MethodMDRD:                   "mdrd",
	MethodCKDEPI:                 "ckd_epi",
	MethodLundMalmoRevised:       "malmo_lund_revised",
	MethodSchwartz:               "schwartz",
	MethodSchwartzRevised:        "schwartz_revised",
	MethodJelliffe:               "jelliffe",
	MethodJelliffeUnstable:       "jelliffe_unstable",
	MethodWright:                 "wright",
}

// Aliases accepted by ParseMethod beyond the canonical names.
// "bedside_schwartz" is the common name for the revised equation.
var methodAliases = map[string]Method{
	"lund_malmo_revised": MethodLundMalmoRevised,
	"lund_malmo":         MethodLundMalmoRevised,
	"bedside_schwartz":   MethodSchwartzRevised,
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return "invalid"
}

// ParseMethod resolves a free-text method name to a Method.
//
// Resolution is tolerant: case is folded, hyphens and spaces become
// underscores, and the historical misspelling "cockroft" is corrected.
// Unrecognized names return an *UnknownMethodError listing every valid
// identifier.
func ParseMethod(name string) (Method, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "cockroft", "cockcroft")

	for m, canonical := range methodNames {
		if s == canonical {
			return m, nil
		}
	}
	if m, ok := methodAliases[s]; ok {
		return m, nil
	}

	return methodInvalid, &UnknownMethodError{Name: name, Valid: ValidMethods()}
}

// ValidMethods returns the canonical identifiers of all supported methods,
// in a stable order.
func ValidMethods() []string {
	order := []Method{
		MethodCockcroftGault,
		MethodCockcroftGaultIdeal,
		MethodCockcroftGaultAdjusted,
		MethodCockcroftGaultAdaptive,
		MethodMDRD,
		MethodCKDEPI,
		MethodLundMalmoRevised,
		MethodSchwartz,
		MethodSchwartzRevised,
		MethodJelliffe,
		MethodJelliffeUnstable,
		MethodWright,
	}
	names := make([]string, 0, len(order))
	for _, m := range order {
		names = append(names, methodNames[m])
	}
	return names
}

// weightKind selects which weight basis a Cockcroft-Gault variant
// substitutes before calculation.
type weightKind int

const (
	weightTotal weightKind = iota
	weightIdeal
	weightAdjusted
	weightAdaptive
)

// methodTraits is the per-method default table: required covariates,
// canonical creatinine unit, native reporting convention, and weight
// substitution. Defaults are data here, not conditionals in the engine.
type methodTraits struct {
	needsSex     bool
	needsAge     bool
	needsWeight  bool
	needsHeight  bool
	needsPreterm bool
	needsBSA     bool // direct BSA or weight+height

	scrUnit  CreatinineUnit // unit the formula expects
	relative bool           // native/default reporting is per 1.73 m²
	weight   weightKind
	series   bool // element i depends on element i-1
}

func (m Method) traits() methodTraits {
	switch m {
	case MethodCockcroftGault:
		return methodTraits{needsSex: true, needsAge: true, needsWeight: true,
			scrUnit: UnitMgDL}
	case MethodCockcroftGaultIdeal:
		return methodTraits{needsSex: true, needsAge: true, needsWeight: true,
			needsHeight: true, scrUnit: UnitMgDL, weight: weightIdeal}
	case MethodCockcroftGaultAdjusted:
		return methodTraits{needsSex: true, needsAge: true, needsWeight: true,
			needsHeight: true, scrUnit: UnitMgDL, weight: weightAdjusted}
	case MethodCockcroftGaultAdaptive:
		return methodTraits{needsSex: true, needsAge: true, needsWeight: true,
			needsHeight: true, scrUnit: UnitMgDL, weight: weightAdaptive}
	case MethodMDRD, MethodCKDEPI:
		return methodTraits{needsSex: true, needsAge: true,
			scrUnit: UnitMgDL, relative: true}
	case MethodLundMalmoRevised:
		return methodTraits{needsSex: true, needsAge: true,
			scrUnit: UnitUmolL, relative: true}
	case MethodSchwartz:
		return methodTraits{needsSex: true, needsAge: true, needsHeight: true,
			needsPreterm: true, scrUnit: UnitMgDL, relative: true}
	case MethodSchwartzRevised:
		return methodTraits{needsSex: true, needsAge: true, needsHeight: true,
			scrUnit: UnitMgDL, relative: true}
	case MethodJelliffe:
		return methodTraits{needsSex: true, needsAge: true, needsBSA: true,
			scrUnit: UnitUmolL, relative: true}
	case MethodJelliffeUnstable:
		return methodTraits{needsSex: true, needsAge: true, needsWeight: true,
			scrUnit: UnitMgDL, relative: true, series: true}
	case MethodWright:
		return methodTraits{needsSex: true, needsAge: true, needsBSA: true,
			scrUnit: UnitUmolL, relative: true}
	}
	return methodTraits{}
}
