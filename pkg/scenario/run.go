package scenario

import (
	"fmt"

	"mmcsim/engine/queueing"
	"mmcsim/pkg/compare"
)

// Outcome holds the rows produced by each configured sweep
type Outcome struct {
	Name        string        `yaml:"name" json:"name"`
	Compare     []compare.Row `yaml:"compare,omitempty" json:"compare,omitempty"`
	Sensitivity []compare.Row `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty"`
	ServerSweep []compare.Row `yaml:"server_sweep,omitempty" json:"server_sweep,omitempty"`
}

// Run executes the sweeps one after another
func (s *Scenario) Run() (*Outcome, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := &Outcome{Name: s.Name}

	if s.Compare != nil {
		queueing.InfoLog("[SCENARIO] %s: comparing c=%v", s.Name, s.Compare.Servers)
		rows, err := compare.Servers(s.ArrivalRate, s.ServiceRate, s.Compare.Servers, s.Horizon, s.Seed)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		out.Compare = rows
	}

	if s.Sensitivity != nil {
		r := s.Sensitivity.ArrivalRates
		lambdas := compare.Linspace(r.Start, r.Stop, r.Count)
		queueing.InfoLog("[SCENARIO] %s: sensitivity over %d arrival rates at c=%d", s.Name, len(lambdas), s.Sensitivity.Servers)
		rows, err := compare.ArrivalRates(s.ServiceRate, s.Sensitivity.Servers, lambdas, s.Horizon, s.Seed)
		if err != nil {
			return nil, fmt.Errorf("sensitivity: %w", err)
		}
		out.Sensitivity = rows
	}

	if s.ServerSweep != nil {
		queueing.InfoLog("[SCENARIO] %s: server sweep c=%v at λ=%g", s.Name, s.ServerSweep.Servers, s.ServerSweep.ArrivalRate)
		rows, err := compare.Servers(s.ServerSweep.ArrivalRate, s.ServiceRate, s.ServerSweep.Servers, s.Horizon, s.Seed)
		if err != nil {
			return nil, fmt.Errorf("server sweep: %w", err)
		}
		out.ServerSweep = rows
	}
	return out, nil
}
