package renal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMDRD(t *testing.T) {
	male := MDRD(Male, RaceOther, 50, 1.1)
	require.InDelta(t, 75.31, male, 0.05)

	// Sex and race factors are pure multipliers.
	require.InDelta(t, male*0.762, MDRD(Female, RaceOther, 50, 1.1), 1e-9)
	require.InDelta(t, male*1.210, MDRD(Male, RaceBlack, 50, 1.1), 1e-9)
	require.InDelta(t, male*0.762*1.210, MDRD(Female, RaceBlack, 50, 1.1), 1e-9)
}

func TestCKDEPI(t *testing.T) {
	// scr above 1: only the max(scr,1) exponent is active.
	male := CKDEPI(Male, RaceOther, 50, 1.1)
	require.InDelta(t, 88.44, male, 0.05)

	// scr below 1: only the min(scr,1) exponent is active.
	require.InDelta(t, 106.80, CKDEPI(Male, RaceOther, 50, 0.8), 0.05)

	require.InDelta(t, male*1.018, CKDEPI(Female, RaceOther, 50, 1.1), 1e-9)
	require.InDelta(t, male*1.159, CKDEPI(Male, RaceBlack, 50, 1.1), 1e-9)
}

// TestEstimate_CKDEPI_Defaults covers the documented scenario: relative
// reporting by default, absolute on request multiplies by BSA/1.73.
func TestEstimate_CKDEPI_Defaults(t *testing.T) {
	req := Request{
		Method:          "ckd_epi",
		Sex:             Male,
		Age:             50,
		BSA:             1.8,
		Creatinine:      []float64{1.1},
		CreatinineUnits: []string{"mg/dL"},
	}

	res, err := Estimate(req)
	require.NoError(t, err)
	require.Equal(t, "mL/min/1.73m2", res.Unit)
	require.InDelta(t, CKDEPI(Male, RaceOther, 50, 1.1), res.Values[0], 1e-9)

	abs := false
	req.Relative = &abs
	resAbs, err := Estimate(req)
	require.NoError(t, err)
	require.Equal(t, "mL/min", resAbs.Unit)
	require.InDelta(t, res.Values[0]*1.8/1.73, resAbs.Values[0], 1e-9)
}

// TestEstimate_MDRD_RaceDefaultsToOther: race is never a missing
// covariate; the zero value is the default category.
func TestEstimate_MDRD_RaceDefaultsToOther(t *testing.T) {
	res, err := Estimate(Request{
		Method:          "mdrd",
		Sex:             Female,
		Age:             64,
		Creatinine:      []float64{1.3},
		CreatinineUnits: []string{"mg/dL"},
	})
	require.NoError(t, err)
	require.InDelta(t, MDRD(Female, RaceOther, 64, 1.3), res.Values[0], 1e-9)
}

func TestEstimate_MDRD_RoundTrips(t *testing.T) {
	req := Request{
		Method:          "mdrd",
		Sex:             Male,
		Age:             50,
		Weight:          70,
		Height:          170,
		Creatinine:      []float64{1.1},
		CreatinineUnits: []string{"mg/dL"},
	}
	AssertUnitRoundTrip(t, req)
	AssertReportingRoundTrip(t, req)
	AssertOutputUnitInvertible(t, req)
}
