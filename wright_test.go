package renal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWright(t *testing.T) {
	// (6580 − 38.8·50)·1.8 / 97.24
	require.InDelta(t, 85.89, Wright(Male, 50, 1.8, 97.24), 0.01)

	male := Wright(Male, 50, 1.8, 97.24)
	require.InDelta(t, male*(1-0.168), Wright(Female, 50, 1.8, 97.24), 1e-9)
}

// TestEstimate_Wright_ConvertsToUmol: a mg/dL observation is converted to
// µmol/L before the formula.
func TestEstimate_Wright_ConvertsToUmol(t *testing.T) {
	res, err := Estimate(Request{
		Method:          "wright",
		Sex:             Male,
		Age:             50,
		BSA:             1.8,
		Creatinine:      []float64{1.1},
		CreatinineUnits: []string{"mg/dL"},
	})
	require.NoError(t, err)
	require.InDelta(t, Wright(Male, 50, 1.8, 1.1*UmolPerMgDL), res.Values[0], 1e-9)
}

// TestEstimate_Wright_BSADerived: BSA comes from weight and height via
// Du Bois when not supplied directly.
func TestEstimate_Wright_BSADerived(t *testing.T) {
	res, err := Estimate(Request{
		Method:          "wright",
		Sex:             Male,
		Age:             50,
		Weight:          70,
		Height:          170,
		Creatinine:      []float64{97.24},
		CreatinineUnits: []string{"umol/L"},
	})
	require.NoError(t, err)
	require.InDelta(t, Wright(Male, 50, DuBoisBSA(70, 170), 97.24), res.Values[0], 1e-9)
}

func TestEstimate_Wright_MostellerBSA(t *testing.T) {
	res, err := Estimate(Request{
		Method:          "wright",
		Sex:             Male,
		Age:             50,
		Weight:          70,
		Height:          170,
		BSAMethod:       "mosteller",
		Creatinine:      []float64{97.24},
		CreatinineUnits: []string{"umol/L"},
	})
	require.NoError(t, err)
	require.InDelta(t, Wright(Male, 50, MostellerBSA(70, 170), 97.24), res.Values[0], 1e-9)
}
