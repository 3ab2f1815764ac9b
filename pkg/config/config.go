// Package config loads the YAML description of a host rig: which slots
// exist and which daughterboard IDs their EEPROMs report.
//
// Example:
//
//	log_level: debug
//	trace_file: rig.dtrace
//	slots:
//	  - name: A
//	    rx_id: "0x000f"
//	    tx_id: "0x000e"
//	  - name: B
//	    rx_id: "0x0001"
//	    tx_id: none
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdrhost/dboard-go/pkg/dboard"
)

// Validation errors.
var (
	ErrNoSlots         = errors.New("no slots configured")
	ErrInvalidSlotName = errors.New("invalid slot name")
	ErrDuplicateSlot   = errors.New("duplicate slot name")
	ErrInvalidID       = errors.New("invalid dboard ID")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config describes a host rig.
type Config struct {
	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level,omitempty"`

	// TraceFile is where property-access events are appended. Empty
	// disables file tracing.
	TraceFile string `yaml:"trace_file,omitempty"`

	// Slots lists the daughterboard slots in the order they are shown.
	Slots []SlotConfig `yaml:"slots"`
}

// SlotConfig is one daughterboard slot.
type SlotConfig struct {
	// Name identifies the slot in paths and traces.
	Name string `yaml:"name"`

	// RXID and TXID are the EEPROM IDs as written by ParseID: hex with a
	// 0x prefix, decimal, or "none".
	RXID string `yaml:"rx_id"`
	TXID string `yaml:"tx_id"`
}

// IDs parses the slot's board IDs.
func (s SlotConfig) IDs() (rx, tx dboard.ID, err error) {
	if rx, err = dboard.ParseID(s.RXID); err != nil {
		return 0, 0, fmt.Errorf("%w: slot %q rx_id: %v", ErrInvalidID, s.Name, err)
	}
	if tx, err = dboard.ParseID(s.TXID); err != nil {
		return 0, 0, fmt.Errorf("%w: slot %q tx_id: %v", ErrInvalidID, s.Name, err)
	}
	return rx, tx, nil
}

// Default returns a rig with one slot carrying a Basic RX and Basic TX.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Slots: []SlotConfig{
			{Name: "A", RXID: "0x0001", TXID: "0x0000"},
		},
	}
}

// Parse decodes and validates a YAML rig description. Unknown fields are
// rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a rig description from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks slot names, IDs and the log level.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if len(c.Slots) == 0 {
		return ErrNoSlots
	}

	seen := make(map[string]bool, len(c.Slots))
	for i, s := range c.Slots {
		if err := validateSlotName(s.Name); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlot, s.Name)
		}
		seen[s.Name] = true

		if _, _, err := s.IDs(); err != nil {
			return err
		}
	}
	return nil
}

// Slot returns the slot with the given name.
func (c *Config) Slot(name string) (SlotConfig, bool) {
	for _, s := range c.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return SlotConfig{}, false
}

// Level converts LogLevel to an slog level.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Slot names appear as the first segment of inspect paths, so they must not
// collide with unit names or contain the separator.
func validateSlotName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSlotName)
	}
	if strings.ContainsAny(name, "/ \t") {
		return fmt.Errorf("%w: %q contains '/' or whitespace", ErrInvalidSlotName, name)
	}
	if _, err := dboard.ParseUnit(name); err == nil {
		return fmt.Errorf("%w: %q is a unit name", ErrInvalidSlotName, name)
	}
	return nil
}
