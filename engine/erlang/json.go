package erlang

import (
	"encoding/json"
	"math"
)

// MarshalJSON writes unbounded metrics as the string "inf",
// encoding/json rejects infinite floats.
func (m Metrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rho    float64     `json:"rho"`
		Stable bool        `json:"stable"`
		Pw     interface{} `json:"pw"`
		Lq     interface{} `json:"lq"`
		Wq     interface{} `json:"wq"`
		L      interface{} `json:"l"`
		W      interface{} `json:"w"`
	}{
		Rho:    m.Rho,
		Stable: m.Stable,
		Pw:     jsonNumber(m.Pw),
		Lq:     jsonNumber(m.Lq),
		Wq:     jsonNumber(m.Wq),
		L:      jsonNumber(m.L),
		W:      jsonNumber(m.W),
	})
}

func jsonNumber(v float64) interface{} {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	default:
		return v
	}
}
