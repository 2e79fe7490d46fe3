// Package erlang computes closed-form M/M/c metrics through the Erlang-C formula.
package erlang

import (
	"fmt"
	"math"

	"mmcsim/engine/queueing"
)

// DefaultDirectMaxServers is the largest c solved with plain powers and factorials.
// Above it the log-domain path is used.
const DefaultDirectMaxServers = 30

// maxFactorialServers is the largest n with a finite float64 n!
const maxFactorialServers = 170

// Metrics are the steady-state M/M/c quantities.
// When Stable is false every field except Rho is +Inf and must not be compared.
type Metrics struct {
	Rho    float64 `yaml:"rho" json:"rho"`
	Stable bool    `yaml:"stable" json:"stable"`
	Pw     float64 `yaml:"pw" json:"pw"`
	Lq     float64 `yaml:"lq" json:"lq"`
	Wq     float64 `yaml:"wq" json:"wq"`
	L      float64 `yaml:"l" json:"l"`
	W      float64 `yaml:"w" json:"w"`
}

// Solver holds the cutover between the direct and log-domain Erlang-C paths.
// The direct path is never used past c = 170, or when its result is not finite.
type Solver struct {
	DirectMaxServers int
}

var defaultSolver = Solver{DirectMaxServers: DefaultDirectMaxServers}

// Solve returns the M/M/c metrics for arrival rate lambda, service rate mu and c servers
func Solve(lambda, mu float64, c int) (Metrics, error) {
	return defaultSolver.Solve(lambda, mu, c)
}

// SolveParameters validates the whole parameter set, horizon included,
// before solving. The horizon itself does not enter the formulas.
func SolveParameters(p queueing.Parameters) (Metrics, error) {
	if err := p.Validate(); err != nil {
		return Metrics{}, fmt.Errorf("solve: %w", err)
	}
	return defaultSolver.Solve(p.ArrivalRate, p.ServiceRate, p.Servers)
}

// Solve computes the metrics using s.DirectMaxServers as the cutover
func (s Solver) Solve(lambda, mu float64, c int) (Metrics, error) {
	if err := queueing.ValidateRates(lambda, mu, c); err != nil {
		return Metrics{}, fmt.Errorf("solve: %w", err)
	}

	rho := queueing.TrafficIntensity(lambda, mu, c)
	if !queueing.IsStable(rho) {
		inf := math.Inf(1)
		return Metrics{Rho: rho, Stable: false, Pw: inf, Lq: inf, Wq: inf, L: inf, W: inf}, nil
	}

	a := lambda / mu
	pw := math.NaN()
	if c <= s.DirectMaxServers && c <= maxFactorialServers {
		pw = erlangCDirect(a, rho, c)
	}
	// aⁿ can still overflow below that bound when a is large
	if math.IsNaN(pw) || math.IsInf(pw, 0) {
		pw = erlangCLog(a, rho, c)
	}

	lq := pw * rho / (1 - rho)
	wq := lq / lambda
	l := lq + a
	return Metrics{
		Rho:    rho,
		Stable: true,
		Pw:     pw,
		Lq:     lq,
		Wq:     wq,
		L:      l,
		W:      l / lambda,
	}, nil
}

// erlangCDirect sums aⁿ/n! for n < c plus the waiting term aᶜ/c!·1/(1−ρ)
func erlangCDirect(a, rho float64, c int) float64 {
	sum := 0.0
	for n := 0; n < c; n++ {
		sum += math.Pow(a, float64(n)) / factorial(n)
	}
	last := math.Pow(a, float64(c)) / factorial(c) / (1 - rho)
	pi0 := 1 / (sum + last)
	return clamp01(last * pi0)
}

// erlangCLog evaluates the same ratio with log-gamma terms and log-sum-exp.
// The waiting term joins the max shift, so neither the sum nor π₀ is ever
// materialised and large c cannot overflow.
func erlangCLog(a, rho float64, c int) float64 {
	logA := math.Log(a)
	logTerms := make([]float64, c+1)
	for n := 0; n < c; n++ {
		logTerms[n] = float64(n)*logA - lgamma(float64(n+1))
	}
	logLast := float64(c)*logA - lgamma(float64(c+1)) - math.Log(1-rho)
	logTerms[c] = logLast

	maxLog := logTerms[0]
	for _, lt := range logTerms[1:] {
		if lt > maxLog {
			maxLog = lt
		}
	}
	sumExp := 0.0
	for _, lt := range logTerms {
		sumExp += math.Exp(lt - maxLog)
	}
	logTotal := maxLog + math.Log(sumExp)
	return clamp01(math.Exp(logLast - logTotal))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
