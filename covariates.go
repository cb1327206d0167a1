package renal

import "strings"

// Sex is the patient's sex as used by the equations.
type Sex int

const (
	SexUnknown Sex = iota
	Male
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return "unknown"
}

// ParseSex resolves "male"/"female" (case-insensitive).
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male
	case "female", "f":
		return Female
	}
	return SexUnknown
}

// Race is the patient's race category. Only MDRD and CKD-EPI observe it.
type Race int

const (
	RaceOther Race = iota // default when unspecified
	RaceBlack
)

func (r Race) String() string {
	if r == RaceBlack {
		return "black"
	}
	return "other"
}

// ParseRace resolves a race string; anything other than "black" maps to
// the default category.
func ParseRace(s string) Race {
	if strings.ToLower(strings.TrimSpace(s)) == "black" {
		return RaceBlack
	}
	return RaceOther
}

// Weight basis labels reported on Result.WeightBasis.
const (
	TotalBodyWeight    = "total_body_weight"
	IdealBodyWeight    = "ideal_body_weight"
	AdjustedBodyWeight = "adjusted_body_weight"
)
