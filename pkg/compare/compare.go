// Package compare drives the simulation and the analytical solver over
// parameter ranges and lines their outputs up for reporting.
package compare

import (
	"fmt"
	"math"

	"mmcsim/engine/des"
	"mmcsim/engine/erlang"
	"mmcsim/engine/queueing"
)

// Simulated holds the metrics estimated from one simulation run
type Simulated struct {
	Wq            float64 `yaml:"wq" json:"wq"`
	ConditionalWq float64 `yaml:"conditional_wq" json:"conditional_wq"`
	W             float64 `yaml:"w" json:"w"`
	Lq            float64 `yaml:"lq" json:"lq"`
	Pw            float64 `yaml:"pw" json:"pw"`
	Utilization   float64 `yaml:"utilization" json:"utilization"`
	Served        int     `yaml:"served" json:"served"`
	Arrived       int     `yaml:"arrived" json:"arrived"`
}

// Row is one parameter tuple evaluated by both estimators
type Row struct {
	Params     queueing.Parameters `yaml:"params" json:"params"`
	Rho        float64             `yaml:"rho" json:"rho"`
	Stable     bool                `yaml:"stable" json:"stable"`
	Simulated  Simulated           `yaml:"simulated" json:"simulated"`
	Analytical erlang.Metrics      `yaml:"analytical" json:"analytical"`
}

// WqError is the percentage error of the simulated Wq against the solver
func (r Row) WqError() float64 {
	return PercentError(r.Simulated.Wq, r.Analytical.Wq)
}

// WError is the percentage error of the simulated W against the solver
func (r Row) WError() float64 {
	return PercentError(r.Simulated.W, r.Analytical.W)
}

// LqError is the percentage error of the simulated Lq against the solver
func (r Row) LqError() float64 {
	return PercentError(r.Simulated.Lq, r.Analytical.Lq)
}

// PercentError returns 100·|sim−theo|/max(theo, 1e-8)
func PercentError(sim, theo float64) float64 {
	return 100 * math.Abs(sim-theo) / math.Max(theo, 1e-8)
}

// Summarize condenses a simulation result; Lq comes from Little's law (Lq = λ·Wq)
func Summarize(res *des.Result) Simulated {
	wq := res.MeanWait()
	return Simulated{
		Wq:            wq,
		ConditionalWq: res.ConditionalMeanWait(),
		W:             res.MeanTimeInSystem(),
		Lq:            wq * res.Params.ArrivalRate,
		Pw:            res.ProbabilityOfWait(),
		Utilization:   res.OverallUtilization(),
		Served:        res.Served,
		Arrived:       res.Arrived,
	}
}

// Evaluate runs both estimators on p
func Evaluate(p queueing.Parameters) (Row, error) {
	theo, err := erlang.SolveParameters(p)
	if err != nil {
		return Row{}, err
	}
	sim, err := des.Run(p)
	if err != nil {
		return Row{}, err
	}
	return Row{
		Params:     p,
		Rho:        theo.Rho,
		Stable:     theo.Stable,
		Simulated:  Summarize(sim),
		Analytical: theo,
	}, nil
}

// Servers compares simulation and solver for each server count in cs.
// Unstable counts are skipped, the solver has nothing to compare against.
func Servers(lambda, mu float64, cs []int, horizon float64, seed int64) ([]Row, error) {
	rows := make([]Row, 0, len(cs))
	for _, c := range cs {
		p := queueing.Parameters{ArrivalRate: lambda, ServiceRate: mu, Servers: c, Horizon: horizon, Seed: seed}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("compare servers c=%d: %w", c, err)
		}
		if !queueing.IsStable(p.TrafficIntensity()) {
			queueing.InfoLog("[COMPARE] System unstable for c=%d servers; skipping.", c)
			continue
		}
		row, err := Evaluate(p)
		if err != nil {
			return nil, fmt.Errorf("compare servers c=%d: %w", c, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ArrivalRates simulates a fixed server count across lambdas.
// Unstable rates are still simulated and flagged; their analytical side stays +Inf.
func ArrivalRates(mu float64, c int, lambdas []float64, horizon float64, seed int64) ([]Row, error) {
	rows := make([]Row, 0, len(lambdas))
	for _, lambda := range lambdas {
		p := queueing.Parameters{ArrivalRate: lambda, ServiceRate: mu, Servers: c, Horizon: horizon, Seed: seed}
		row, err := Evaluate(p)
		if err != nil {
			return nil, fmt.Errorf("compare arrival rate λ=%v: %w", lambda, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// IntRange returns lo..hi inclusive
func IntRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for c := lo; c <= hi; c++ {
		out = append(out, c)
	}
	return out
}
