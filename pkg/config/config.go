package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultWeeks is the length of a regular semester
	DefaultWeeks = 18
	// DefaultTimezone is where the registrar's exports come from
	DefaultTimezone = "Asia/Manila"

	dateLayout = "2006-01-02"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	AccentColor   string `json:"accent_color,omitempty"`
	TermStart     string `json:"term_start,omitempty"` // YYYY-MM-DD
	TermWeeks     int    `json:"term_weeks,omitempty"`
	Timezone      string `json:"timezone,omitempty"`
	OutputDir     string `json:"output_dir,omitempty"`
	DefaultFormat string `json:"default_format,omitempty"`
}

// getConfigPath returns the absolute path to ~/.rosterctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rosterctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the fields that are parsed later on.
func (c *AppConfig) Validate() error {
	if c.TermStart != "" {
		if _, err := time.Parse(dateLayout, c.TermStart); err != nil {
			return fmt.Errorf("term start %q is not a YYYY-MM-DD date", c.TermStart)
		}
	}
	if c.TermWeeks < 0 {
		return fmt.Errorf("term weeks must be positive, got %d", c.TermWeeks)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
		}
	}
	switch c.DefaultFormat {
	case "", "ics", "json", "yaml", "csv":
	default:
		return fmt.Errorf("unknown default format %q", c.DefaultFormat)
	}
	return nil
}

// Location returns the configured timezone, falling back to DefaultTimezone.
func (c *AppConfig) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone: %w", err)
	}
	return loc, nil
}

// TermStartDate returns the first day of the term in the configured
// timezone. Without a saved date, the Monday of the current week is used.
func (c *AppConfig) TermStartDate(now time.Time) (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}

	if c.TermStart != "" {
		t, err := time.ParseInLocation(dateLayout, c.TermStart, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid term start: %w", err)
		}
		return t, nil
	}

	now = now.In(loc)
	offset := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, loc), nil
}

// Weeks returns the term length in weeks.
func (c *AppConfig) Weeks() int {
	if c.TermWeeks > 0 {
		return c.TermWeeks
	}
	return DefaultWeeks
}
