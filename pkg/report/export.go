// Package report renders comparison and simulation output for people and tools.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mmcsim/engine/des"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format selects how a command prints its result
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat accepts table, yaml/yml and json, case-insensitively
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, yaml or json)", s)
	}
}

// Envelope tags exported data with a run id so separate exports can be correlated
type Envelope struct {
	RunID       string      `yaml:"run_id" json:"run_id"`
	Kind        string      `yaml:"kind" json:"kind"`
	GeneratedAt time.Time   `yaml:"generated_at" json:"generated_at"`
	Data        interface{} `yaml:"data" json:"data"`
}

// NewEnvelope wraps data with a fresh run id
func NewEnvelope(kind string, data interface{}) Envelope {
	return Envelope{
		RunID:       uuid.NewString(),
		Kind:        kind,
		GeneratedAt: time.Now().UTC(),
		Data:        data,
	}
}

// Encode writes v as YAML or JSON
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("format %q is not a structured export format", format)
	}
}

// WriteSeriesCSV writes a (time, value) series with a header row
func WriteSeriesCSV(w io.Writer, valueName string, samples []des.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", valueName}); err != nil {
		return err
	}
	for _, s := range samples {
		rec := []string{strconv.FormatFloat(s.Time, 'g', -1, 64), strconv.Itoa(s.Value)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
