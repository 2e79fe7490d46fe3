package queueing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when a rate, server count or horizon is out of range.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError describes which parameter was rejected and why
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// Parameters holds the inputs of one M/M/c run.
// ArrivalRate is λ, ServiceRate is μ (per server), Servers is c.
type Parameters struct {
	ArrivalRate float64 `yaml:"arrival_rate" json:"arrival_rate"`
	ServiceRate float64 `yaml:"service_rate" json:"service_rate"`
	Servers     int     `yaml:"servers" json:"servers"`
	Horizon     float64 `yaml:"horizon" json:"horizon"`
	Seed        int64   `yaml:"seed" json:"seed"`
}

// ValidateRates checks λ, μ and c. The analytical solver only needs these.
func ValidateRates(lambda, mu float64, c int) error {
	if !positive(lambda) {
		return &ParameterError{Name: "arrival_rate", Value: lambda, Reason: "must be a finite value > 0"}
	}
	if !positive(mu) {
		return &ParameterError{Name: "service_rate", Value: mu, Reason: "must be a finite value > 0"}
	}
	if c < 1 {
		return &ParameterError{Name: "servers", Value: float64(c), Reason: "must be >= 1"}
	}
	return nil
}

// Validate checks every field needed for a simulation run
func (p Parameters) Validate() error {
	if err := ValidateRates(p.ArrivalRate, p.ServiceRate, p.Servers); err != nil {
		return err
	}
	if !positive(p.Horizon) {
		return &ParameterError{Name: "horizon", Value: p.Horizon, Reason: "must be a finite value > 0"}
	}
	return nil
}

// TrafficIntensity returns ρ = λ/(cμ)
func (p Parameters) TrafficIntensity() float64 {
	return TrafficIntensity(p.ArrivalRate, p.ServiceRate, p.Servers)
}

// OfferedLoad returns a = λ/μ
func (p Parameters) OfferedLoad() float64 {
	return p.ArrivalRate / p.ServiceRate
}

// TrafficIntensity returns ρ = λ/(cμ). Callers validate first.
func TrafficIntensity(lambda, mu float64, c int) float64 {
	return lambda / (float64(c) * mu)
}

// IsStable reports whether ρ < 1
func IsStable(rho float64) bool {
	return rho < 1
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
