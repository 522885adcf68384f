package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	PegNames [3]string

	Solver    string
	Format    string
	WarnDisks int

	RenderDir   string
	MessagesDir string
}

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		PegNames:  [3]string{"A", "B", "C"},
		Solver:    "recursive",
		Format:    FormatTable,
		WarnDisks: 20,
	}

	if v := strings.TrimSpace(os.Getenv("HANOI_PEG_NAMES")); v != "" {
		names, err := parsePegNames(v)
		if err != nil {
			return nil, err
		}
		cfg.PegNames = names
	}
	if v := strings.TrimSpace(os.Getenv("HANOI_SOLVER")); v != "" {
		cfg.Solver = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("HANOI_FORMAT")); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("HANOI_WARN_DISKS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WarnDisks = n
		}
	}
	cfg.RenderDir = strings.TrimSpace(os.Getenv("HANOI_RENDER_DIR"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("HANOI_MESSAGES_DIR"))
	return cfg, nil
}

// Validate checks the merged settings; call it after command-line overrides are applied.
func (c *AppConfig) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output format must be table or json, got %q", c.Format)
	}
	return nil
}

func parsePegNames(v string) ([3]string, error) {
	var out [3]string
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("HANOI_PEG_NAMES needs exactly 3 names, got %d", len(parts))
	}
	seen := make(map[string]struct{}, 3)
	for i, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			return out, errors.New("HANOI_PEG_NAMES contains an empty name")
		}
		if _, dup := seen[s]; dup {
			return out, fmt.Errorf("HANOI_PEG_NAMES repeats %q", s)
		}
		seen[s] = struct{}{}
		out[i] = s
	}
	return out, nil
}
