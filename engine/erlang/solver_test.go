package erlang

import (
	"errors"
	"math"
	"testing"

	"mmcsim/engine/queueing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveKnownValues(t *testing.T) {
	m, err := Solve(3, 2, 4)
	require.NoError(t, err)

	assert.True(t, m.Stable)
	assert.InDelta(t, 0.375, m.Rho, 1e-12)
	// π₀ = 1/4.525, Pw = 0.3375·π₀
	assert.InDelta(t, 0.3375/4.525, m.Pw, 1e-12)
	assert.InDelta(t, m.Pw*0.375/0.625, m.Lq, 1e-12)
	assert.InDelta(t, m.Lq/3, m.Wq, 1e-12)
	assert.InDelta(t, m.Lq+1.5, m.L, 1e-12)
	assert.InDelta(t, m.L/3, m.W, 1e-12)
	assert.Greater(t, m.Wq, 0.0)
	assert.Less(t, m.Pw, 1.0)
}

func TestSolveSingleServerMatchesMM1(t *testing.T) {
	// M/M/1: Pw = ρ, Wq = ρ/(μ−λ)
	m, err := Solve(1.5, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, m.Pw, 1e-12)
	assert.InDelta(t, 0.75/0.5, m.Wq, 1e-12)
	assert.InDelta(t, 1/0.5, m.W, 1e-12)
}

func TestSolveStableProperties(t *testing.T) {
	lambdas := []float64{0.001, 0.5, 1, 3, 7.9, 20, 150}
	mus := []float64{0.25, 1, 2, 5}
	cs := []int{1, 2, 4, 10, 29, 30, 31, 64, 200}

	for _, lambda := range lambdas {
		for _, mu := range mus {
			for _, c := range cs {
				rho := lambda / (float64(c) * mu)
				m, err := Solve(lambda, mu, c)
				require.NoError(t, err)
				assert.InDelta(t, rho, m.Rho, 1e-12)

				if rho >= 1 {
					assert.False(t, m.Stable, "λ=%v μ=%v c=%d", lambda, mu, c)
					continue
				}
				assert.True(t, m.Stable, "λ=%v μ=%v c=%d", lambda, mu, c)
				assert.GreaterOrEqual(t, m.Rho, 0.0)
				assert.Less(t, m.Rho, 1.0)
				assert.GreaterOrEqual(t, m.Pw, 0.0)
				assert.LessOrEqual(t, m.Pw, 1.0)
				for name, v := range map[string]float64{"Lq": m.Lq, "Wq": m.Wq, "L": m.L, "W": m.W} {
					assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s not finite for λ=%v μ=%v c=%d", name, lambda, mu, c)
					assert.GreaterOrEqual(t, v, 0.0, "%s negative for λ=%v μ=%v c=%d", name, lambda, mu, c)
				}
			}
		}
	}
}

func TestSolveUnstable(t *testing.T) {
	tests := []struct {
		lambda, mu float64
		c          int
	}{
		{3, 2, 1},
		{4, 2, 2},
		{100, 1, 50},
	}
	for _, tt := range tests {
		m, err := Solve(tt.lambda, tt.mu, tt.c)
		require.NoError(t, err)
		assert.False(t, m.Stable)
		assert.InDelta(t, tt.lambda/(float64(tt.c)*tt.mu), m.Rho, 1e-12)
		assert.True(t, math.IsInf(m.Pw, 1))
		assert.True(t, math.IsInf(m.Wq, 1))
		assert.True(t, math.IsInf(m.W, 1))
		assert.True(t, math.IsInf(m.Lq, 1))
		assert.True(t, math.IsInf(m.L, 1))
	}
}

func TestSolveNearlyIdle(t *testing.T) {
	m, err := Solve(0.001, 1, 1)
	require.NoError(t, err)
	assert.True(t, m.Stable)
	assert.InDelta(t, 0.0, m.Pw, 0.01)
	assert.InDelta(t, 0.0, m.Wq, 0.01)
}

func TestSolveRejectsInvalidParameters(t *testing.T) {
	_, err := Solve(0, 1, 1)
	assert.True(t, errors.Is(err, queueing.ErrInvalidParameter))
	_, err = Solve(1, -1, 1)
	assert.True(t, errors.Is(err, queueing.ErrInvalidParameter))
	_, err = Solve(1, 1, 0)
	assert.True(t, errors.Is(err, queueing.ErrInvalidParameter))

	_, err = SolveParameters(queueing.Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 0})
	assert.True(t, errors.Is(err, queueing.ErrInvalidParameter))

	m, err := SolveParameters(queueing.Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 1})
	require.NoError(t, err)
	assert.True(t, m.Stable)
}

func TestDirectAndLogPathsAgree(t *testing.T) {
	loads := []float64{0.3, 0.7, 0.95}
	for _, c := range []int{1, 5, 29, 30, 31, 40} {
		for _, rho := range loads {
			a := rho * float64(c)
			direct := erlangCDirect(a, rho, c)
			logd := erlangCLog(a, rho, c)
			if direct == 0 {
				assert.InDelta(t, 0, logd, 1e-15)
				continue
			}
			assert.InEpsilon(t, direct, logd, 1e-6, "c=%d rho=%v", c, rho)
		}
	}
}

func TestSolverCutoverIsTunable(t *testing.T) {
	direct := Solver{DirectMaxServers: 100}
	logOnly := Solver{DirectMaxServers: 0}

	for _, c := range []int{29, 31} {
		lambda := 0.8 * float64(c) * 2
		md, err := direct.Solve(lambda, 2, c)
		require.NoError(t, err)
		ml, err := logOnly.Solve(lambda, 2, c)
		require.NoError(t, err)

		assert.InEpsilon(t, md.Pw, ml.Pw, 1e-6)
		assert.InEpsilon(t, md.Wq, ml.Wq, 1e-6)
		assert.InEpsilon(t, md.W, ml.W, 1e-6)
	}
}

func TestRaisedCutoverStaysFinite(t *testing.T) {
	raised := Solver{DirectMaxServers: 1000}
	logOnly := Solver{DirectMaxServers: 0}

	for _, c := range []int{100, 150, 170, 171, 200} {
		lambda := 0.9 * float64(c) * 2
		m, err := raised.Solve(lambda, 2, c)
		require.NoError(t, err)
		require.True(t, m.Stable)
		for name, v := range map[string]float64{"pw": m.Pw, "lq": m.Lq, "wq": m.Wq, "l": m.L, "w": m.W} {
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "c=%d %s=%v", c, name, v)
			assert.GreaterOrEqual(t, v, 0.0, "c=%d %s", c, name)
		}

		ml, err := logOnly.Solve(lambda, 2, c)
		require.NoError(t, err)
		assert.InEpsilon(t, ml.Pw, m.Pw, 1e-6, "c=%d", c)
	}
}

func TestLogPathLargeServerCount(t *testing.T) {
	m, err := Solve(208.33, 1.32, 158)
	require.NoError(t, err)
	assert.True(t, m.Stable)
	assert.Greater(t, m.Pw, 0.9)
	assert.LessOrEqual(t, m.Pw, 1.0)
	assert.False(t, math.IsInf(m.Wq, 0) || math.IsNaN(m.Wq))

	// a^c/c! alone overflows float64 here
	m, err = Solve(1800, 1, 2000)
	require.NoError(t, err)
	assert.True(t, m.Stable)
	assert.GreaterOrEqual(t, m.Pw, 0.0)
	assert.LessOrEqual(t, m.Pw, 1.0)
	assert.False(t, math.IsNaN(m.Lq) || math.IsInf(m.Lq, 0))
	assert.InDelta(t, m.Lq+1800, m.L, 1e-6)
}
