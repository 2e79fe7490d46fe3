package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mmcsim/engine/des"
	"mmcsim/engine/erlang"
	"mmcsim/engine/queueing"
	"mmcsim/pkg/compare"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleRow(t *testing.T) compare.Row {
	t.Helper()
	row, err := compare.Evaluate(queueing.Parameters{ArrivalRate: 3, ServiceRate: 2, Servers: 4, Horizon: 500, Seed: 42})
	require.NoError(t, err)
	return row
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" json ", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteComparison(&buf, []compare.Row{sampleRow(t)}))
	WriteInterpretation(&buf)

	out := buf.String()
	assert.Contains(t, out, "Metric Comparison")
	assert.Contains(t, out, "Wq(anal)")
	assert.Contains(t, out, "%Err")
	assert.Contains(t, out, "=== Interpretation ===")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[2]), "Lq(anal)"))
	assert.Equal(t, 2, strings.Count(lines[2], "%Err"))
	assert.NotContains(t, out, "%!")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[3]), "4 "))
}

func TestWriteSensitivity(t *testing.T) {
	rows, err := compare.ArrivalRates(2, 1, []float64{1, 3}, 200, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSensitivity(&buf, rows))
	out := buf.String()
	assert.Contains(t, out, "Sensitivity Analysis Summary")
	assert.Contains(t, out, "false")
	assert.Contains(t, out, "Observations:")
}

func TestWriteSimulation(t *testing.T) {
	res, err := des.Simulate(3, 2, 2, 300, 42)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSimulation(&buf, res)
	out := buf.String()
	assert.Contains(t, out, "Patients served:")
	assert.Contains(t, out, "Doctor 1 utilization:")
	assert.Contains(t, out, "Doctor 2 idle time:")
	assert.NotContains(t, out, "UNSTABLE")
}

func TestWriteMetrics(t *testing.T) {
	var buf bytes.Buffer
	m, err := erlang.Solve(3, 2, 4)
	require.NoError(t, err)
	WriteMetrics(&buf, 3, 2, 4, m)
	assert.Contains(t, buf.String(), "System is stable")
	assert.Contains(t, buf.String(), "0.375000")

	buf.Reset()
	m, err = erlang.Solve(3, 2, 1)
	require.NoError(t, err)
	WriteMetrics(&buf, 3, 2, 1, m)
	assert.Contains(t, buf.String(), "System is unstable!")
	assert.NotContains(t, buf.String(), "Wq")
}

func TestEncodeEnvelope(t *testing.T) {
	env := NewEnvelope("compare", []compare.Row{sampleRow(t)})
	_, err := uuid.Parse(env.RunID)
	require.NoError(t, err)

	var jbuf bytes.Buffer
	require.NoError(t, Encode(&jbuf, FormatJSON, env))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &decoded))
	assert.Equal(t, "compare", decoded["kind"])
	assert.Equal(t, env.RunID, decoded["run_id"])

	var ybuf bytes.Buffer
	require.NoError(t, Encode(&ybuf, FormatYAML, env))
	var ydecoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &ydecoded))
	assert.Equal(t, "compare", ydecoded["kind"])

	assert.Error(t, Encode(&ybuf, FormatTable, env))
}

func TestEncodeUnstableMetricsJSON(t *testing.T) {
	m, err := erlang.Solve(3, 2, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FormatJSON, NewEnvelope("solve", m)))
	assert.Contains(t, buf.String(), `"wq": "inf"`)
}

func TestWriteSeriesCSV(t *testing.T) {
	var buf bytes.Buffer
	samples := []des.Sample{{Time: 0.5, Value: 0}, {Time: 1.25, Value: 3}}
	require.NoError(t, WriteSeriesCSV(&buf, "queue_length", samples))
	assert.Equal(t, "time,queue_length\n0.5,0\n1.25,3\n", buf.String())
}
