package renal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuBoisBSA(t *testing.T) {
	require.InDelta(t, 1.810, DuBoisBSA(70, 170), 0.005)
	require.InDelta(t, 1.039, DuBoisBSA(30, 130), 0.01)
}

func TestMostellerBSA(t *testing.T) {
	require.InDelta(t, 1.818, MostellerBSA(70, 170), 0.005)
}

func TestDevineIdealWeight(t *testing.T) {
	require.InDelta(t, 65.94, DevineIdealWeight(170, 50, Male), 0.05)
	require.InDelta(t, 61.44, DevineIdealWeight(170, 50, Female), 0.05)

	// Height term clamps at 60 inches.
	require.InDelta(t, 50.0, DevineIdealWeight(140, 50, Male), 1e-9)
}

func TestStandardAdjustedWeight(t *testing.T) {
	// IBW + 0.4·(TBW − IBW)
	require.InDelta(t, 74.0, StandardAdjustedWeight(90, 70, 0), 1e-9)
	require.InDelta(t, 80.0, StandardAdjustedWeight(90, 70, 0.5), 1e-9)

	// Underweight patients adjust downward.
	require.InDelta(t, 66.0, StandardAdjustedWeight(60, 70, 0), 1e-9)
}

// TestDosingWeight covers the three selection branches.
func TestDosingWeight(t *testing.T) {
	ibw := DevineIdealWeight(170, 50, Male)

	w, basis := DosingWeight(60, 170, 50, Male) // below IBW
	require.Equal(t, TotalBodyWeight, basis)
	require.Equal(t, 60.0, w)

	w, basis = DosingWeight(70, 170, 50, Male) // within 25% of IBW
	require.Equal(t, IdealBodyWeight, basis)
	require.InDelta(t, ibw, w, 1e-9)

	w, basis = DosingWeight(90, 170, 50, Male) // more than 25% over IBW
	require.Equal(t, AdjustedBodyWeight, basis)
	require.InDelta(t, StandardAdjustedWeight(90, ibw, 0.4), w, 1e-9)
}
