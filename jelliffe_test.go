package renal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJelliffeStable(t *testing.T) {
	// (98 − 0.8·30)·(1.8/1.73) / (97.24·0.0113)
	require.InDelta(t, 70.07, JelliffeStable(Male, 50, 1.8, 97.24), 0.01)

	// Female multiplier is (1 − 0.01) = 0.99.
	male := JelliffeStable(Male, 50, 1.8, 97.24)
	require.InDelta(t, male*0.99, JelliffeStable(Female, 50, 1.8, 97.24), 1e-9)
}

// TestJelliffeUnstable_Scenario is the documented case: scr [1.1, 0.8]
// mg/dL, no explicit times. The first element has no creatinine delta
// (scr1 = scr2); the second uses scr1 = 1.1, scr2 = 0.8, dt = 1 day.
func TestJelliffeUnstable_Scenario(t *testing.T) {
	values, diags := JelliffeUnstable(Male, 50, 70, []float64{1.1, 0.8}, nil)

	require.Len(t, values, 2)
	require.Empty(t, diags)
	require.InDelta(t, 71.94, values[0], 0.01)
	require.InDelta(t, 89.86, values[1], 0.01)

	t.Logf("✓ falling creatinine raises the estimate: %.2f → %.2f", values[0], values[1])
}

// TestJelliffeUnstable_Times verifies explicit day stamps change the
// finite-difference term and non-positive deltas fall back to one day.
func TestJelliffeUnstable_Times(t *testing.T) {
	scr := []float64{1.1, 0.8}

	twoDays, _ := JelliffeUnstable(Male, 50, 70, scr, []float64{0, 2})
	oneDay, _ := JelliffeUnstable(Male, 50, 70, scr, []float64{0, 1})

	// Same first element, smaller delta term with the longer interval.
	require.Equal(t, oneDay[0], twoDays[0])
	require.Less(t, twoDays[1], oneDay[1])

	// Non-increasing timestamps are treated as a 1-day gap, not rejected.
	backwards, _ := JelliffeUnstable(Male, 50, 70, scr, []float64{5, 3})
	require.Equal(t, oneDay[1], backwards[1])
}

// TestJelliffeUnstable_Floor: a sharp creatinine rise can drive the raw
// estimate below 1 mL/min; it is floored with a diagnostic, not rejected.
func TestJelliffeUnstable_Floor(t *testing.T) {
	values, diags := JelliffeUnstable(Male, 50, 70, []float64{1.0, 5.0}, nil)

	require.Equal(t, 1.0, values[1])
	require.Len(t, diags, 1)
	require.Equal(t, DiagJelliffeFloored, diags[0].Code)
	require.Equal(t, 1, diags[0].Index)
}

func TestJelliffeUnstable_SingleObservation(t *testing.T) {
	values, _ := JelliffeUnstable(Female, 60, 55, []float64{1.2}, nil)
	require.Len(t, values, 1)

	// With scr1 = scr2 the delta term vanishes: pure production estimate.
	production := (29.305 - 0.203*60) * 55 * (1.037 - 0.0338*1.2) * 0.765
	require.InDelta(t, production*100/(1440*1.2), values[0], 1e-9)
}

// TestEstimate_JelliffeUnstable wires the series method through the
// pipeline: mixed units normalize to mg/dL before the finite differences.
func TestEstimate_JelliffeUnstable(t *testing.T) {
	res, err := Estimate(Request{
		Method:          "jelliffe_unstable",
		Sex:             Male,
		Age:             50,
		Weight:          70,
		Height:          170,
		Creatinine:      []float64{1.1, 70.72},
		CreatinineUnits: []string{"mg/dL", "µmol/L"}, // 70.72 µmol/L = 0.8 mg/dL
	})
	require.NoError(t, err)
	require.Equal(t, "mL/min/1.73m2", res.Unit)

	want, _ := JelliffeUnstable(Male, 50, 70, []float64{1.1, 0.8}, nil)
	require.InDelta(t, want[0], res.Values[0], 1e-9)
	require.InDelta(t, want[1], res.Values[1], 1e-9)
}

func TestEstimate_JelliffeStable_NeedsBSA(t *testing.T) {
	_, err := Estimate(Request{
		Method:          "jelliffe",
		Sex:             Male,
		Age:             50,
		Creatinine:      []float64{1.1},
		CreatinineUnits: []string{"mg/dL"},
	})
	var mce *MissingCovariateError
	require.ErrorAs(t, err, &mce)
	require.Contains(t, mce.Missing, "bsa")
}
