// Package scenario loads the parameter sets of a comparison study from YAML.
package scenario

import (
	"fmt"
	"os"

	"mmcsim/engine/queueing"

	"gopkg.in/yaml.v3"
)

// Range describes an evenly spaced grid, start and stop included
type Range struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Count int     `yaml:"count"`
}

// CompareSection compares simulation and solver across server counts
type CompareSection struct {
	Servers []int `yaml:"servers"`
}

// SensitivitySection varies the arrival rate at a fixed server count
type SensitivitySection struct {
	Servers      int   `yaml:"servers"`
	ArrivalRates Range `yaml:"arrival_rates"`
}

// ServerSweepSection varies the server count at its own arrival rate
type ServerSweepSection struct {
	ArrivalRate float64 `yaml:"arrival_rate"`
	Servers     []int   `yaml:"servers"`
}

// Scenario is one study: shared rates plus any of the three sweeps
type Scenario struct {
	Name        string              `yaml:"name"`
	ArrivalRate float64             `yaml:"arrival_rate"`
	ServiceRate float64             `yaml:"service_rate"`
	Horizon     float64             `yaml:"horizon"`
	Seed        int64               `yaml:"seed"`
	Compare     *CompareSection     `yaml:"compare,omitempty"`
	Sensitivity *SensitivitySection `yaml:"sensitivity,omitempty"`
	ServerSweep *ServerSweepSection `yaml:"server_sweep,omitempty"`
}

// Default returns the emergency-room study: 3 patients/hour, 2 per doctor-hour
func Default() *Scenario {
	return &Scenario{
		Name:        "emergency-room",
		ArrivalRate: 3,
		ServiceRate: 2,
		Horizon:     10000,
		Seed:        42,
		Compare:     &CompareSection{Servers: []int{2, 3, 4, 5, 6}},
		Sensitivity: &SensitivitySection{
			Servers:      4,
			ArrivalRates: Range{Start: 1, Stop: 6, Count: 12},
		},
		ServerSweep: &ServerSweepSection{
			ArrivalRate: 3.5,
			Servers:     []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
	}
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	queueing.InfoLog("[SCENARIO] Loaded %q from %s", s.Name, path)
	return s, nil
}

// Parse decodes a scenario and fills horizon and seed defaults
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Horizon == 0 {
		s.Horizon = Default().Horizon
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every configured sweep
func (s *Scenario) Validate() error {
	base := queueing.Parameters{ArrivalRate: s.ArrivalRate, ServiceRate: s.ServiceRate, Servers: 1, Horizon: s.Horizon}
	if err := base.Validate(); err != nil {
		return err
	}
	if s.Compare == nil && s.Sensitivity == nil && s.ServerSweep == nil {
		return fmt.Errorf("scenario %q defines no compare, sensitivity or server_sweep section: %w", s.Name, queueing.ErrInvalidParameter)
	}
	if s.Compare != nil {
		if err := validateServers("compare", s.Compare.Servers); err != nil {
			return err
		}
	}
	if s.Sensitivity != nil {
		if err := validateServers("sensitivity", []int{s.Sensitivity.Servers}); err != nil {
			return err
		}
		r := s.Sensitivity.ArrivalRates
		if r.Count < 1 || r.Start <= 0 || r.Stop <= 0 {
			return &queueing.ParameterError{Name: "sensitivity.arrival_rates", Value: float64(r.Count), Reason: "needs count >= 1 and positive start/stop"}
		}
	}
	if s.ServerSweep != nil {
		if err := queueing.ValidateRates(s.ServerSweep.ArrivalRate, s.ServiceRate, 1); err != nil {
			return fmt.Errorf("server_sweep: %w", err)
		}
		if err := validateServers("server_sweep", s.ServerSweep.Servers); err != nil {
			return err
		}
	}
	return nil
}

func validateServers(section string, servers []int) error {
	if len(servers) == 0 {
		return &queueing.ParameterError{Name: section + ".servers", Value: 0, Reason: "must list at least one server count"}
	}
	for _, c := range servers {
		if c < 1 {
			return &queueing.ParameterError{Name: section + ".servers", Value: float64(c), Reason: "must be >= 1"}
		}
	}
	return nil
}

// Save writes the scenario as YAML
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario: %w", err)
	}
	return nil
}
