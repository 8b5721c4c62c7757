//go:build mosek

package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFullyInvested(t *testing.T, w []float64) {
	t.Helper()
	var sum float64
	for _, v := range w {
		assert.GreaterOrEqual(t, v, -1e-8)
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-6)
}

func TestTrackingSAASolve(t *testing.T) {
	d := sampleData().WithRiskFreeAsset()
	res, err := TrackingSAA{}.Solve(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, res, 1)

	r := res[0]
	requireFullyInvested(t, r.Weights)
	assert.GreaterOrEqual(t, r.CVaR, r.VaR-1e-9)
	assert.InDelta(t, r.Objective, r.TrackingError+d.Rho*r.CVaR, 1e-6)
}

func TestTrackingDROZeroRadiusMatchesSAA(t *testing.T) {
	d := sampleData().WithRiskFreeAsset()
	saa, err := TrackingSAA{}.Solve(context.Background(), d)
	require.NoError(t, err)

	dro, err := TrackingDRO{Radii: []float64{0, 1e-3, 1}}.Solve(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, dro, 3)

	assert.InDelta(t, saa[0].Objective, dro[0].Objective, 1e-6)
	for i, r := range dro {
		requireFullyInvested(t, r.Weights)
		if i > 0 {
			assert.GreaterOrEqual(t, r.Objective, dro[i-1].Objective-1e-8, "objective grows with the radius")
		}
	}
}

func TestExcessCVaRSAASolve(t *testing.T) {
	d := sampleData()
	s := ExcessCVaRSAA{Rhos: []float64{0.1, 2}, Betas: []float64{0.8, 0.95}}
	res, err := s.Solve(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, 0.1, res[0].Rho)
	assert.Equal(t, 0.95, res[1].Beta)
	for _, r := range res {
		requireFullyInvested(t, r.Weights)
		assert.InDelta(t, r.Objective, -r.ExcessReturn+r.Rho*r.CVaR, 1e-6)
	}
}

func TestExcessCVaRDROZeroRadiusMatchesSAA(t *testing.T) {
	d := sampleData()
	saa, err := ExcessCVaRSAA{Rhos: []float64{d.Rho}, Betas: []float64{d.Beta}}.Solve(context.Background(), d)
	require.NoError(t, err)

	dro, err := ExcessCVaRDRO{Radii: []float64{0, 1e-4, 1e-1}}.Solve(context.Background(), d)
	require.NoError(t, err)
	require.Len(t, dro, 3)

	assert.InDelta(t, saa[0].Objective, dro[0].Objective, 1e-6)
	for i, r := range dro {
		requireFullyInvested(t, r.Weights)
		assert.Equal(t, d.Rho, r.Rho)
		if i > 0 {
			assert.GreaterOrEqual(t, r.Objective, dro[i-1].Objective-1e-8, "objective grows with the radius")
		}
	}
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TrackingDRO{}.Solve(ctx, sampleData())
	assert.ErrorIs(t, err, context.Canceled)
}
