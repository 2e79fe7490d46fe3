package commands

import (
	"fmt"
	"strconv"
	"strings"

	"mmcsim/pkg/compare"
)

const (
	DefaultSeed    int64   = 42
	DefaultHorizon float64 = 10000
)

// parseServerRange accepts "lo:hi" or "2,4,8"
func parseServerRange(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if lo, hi, ok := strings.Cut(s, ":"); ok {
		l, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid server range %q: %w", s, err)
		}
		h, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("invalid server range %q: %w", s, err)
		}
		if h < l {
			return nil, fmt.Errorf("invalid server range %q: upper bound below lower bound", s)
		}
		return compare.IntRange(l, h), nil
	}

	var out []int
	for _, part := range strings.Split(s, ",") {
		c, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid server list %q: %w", s, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// parseFloatRange accepts "start:stop:count" or "1,2.5,4"
func parseFloatRange(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid range %q: want start:stop:count", s)
		}
		start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range start %q: %w", parts[0], err)
		}
		stop, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range stop %q: %w", parts[1], err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid range count %q", parts[2])
		}
		return compare.Linspace(start, stop, n), nil
	}

	var out []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value list %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
