package queueing

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Parameters
		field   string
		wantErr bool
	}{
		{"valid", Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 100}, "", false},
		{"zero lambda", Parameters{ArrivalRate: 0, ServiceRate: 2, Servers: 4, Horizon: 100}, "arrival_rate", true},
		{"negative mu", Parameters{ArrivalRate: 3, ServiceRate: -1, Servers: 4, Horizon: 100}, "service_rate", true},
		{"zero servers", Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 0, Horizon: 100}, "servers", true},
		{"zero horizon", Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 0}, "horizon", true},
		{"nan lambda", Parameters{ArrivalRate: math.NaN(), ServiceRate: 2, Servers: 4, Horizon: 100}, "arrival_rate", true},
		{"inf horizon", Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: math.Inf(1)}, "horizon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))

			var perr *ParameterError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Name)
		})
	}
}

func TestTrafficIntensity(t *testing.T) {
	p := Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 1}
	assert.InDelta(t, 0.375, p.TrafficIntensity(), 1e-12)
	assert.InDelta(t, 1.5, p.OfferedLoad(), 1e-12)
	assert.True(t, IsStable(p.TrafficIntensity()))
	assert.False(t, IsStable(TrafficIntensity(3, 2, 1)))
	assert.False(t, IsStable(TrafficIntensity(2, 2, 1)))
}

func TestSetLogOutput(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(&bytes.Buffer{})

	WarnLog("[DES] rho=%.2f", 1.5)
	ErrorLog("boom")

	out := buf.String()
	assert.True(t, strings.Contains(out, "[WARN] [DES] rho=1.50"))
	assert.True(t, strings.Contains(out, "[ERROR] boom"))
}
