package session

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Range bounds for Config fields, following a min/max const-pair
// convention for each validated field.
const (
	TimeoutMin = 1 * time.Second
	TimeoutMax = 255 * time.Second

	MaxRetriesTransportMin = 1
	MaxRetriesTransportMax = 255

	MaxRetriesSessionMin = 1
	MaxRetriesSessionMax = 255

	BaudrateMin = 1200
	BaudrateMax = 115200
)

// Config is a client's connection configuration: a single timeout plus
// the two independent retry counters (transport-level and session-level),
// loadable from YAML for fleet deployments that keep one file per
// controller.
type Config struct {
	Port string `yaml:"port"`

	Timeout time.Duration `yaml:"timeout"`

	// MaxRetriesTransport bounds retries of a single frame read/write.
	MaxRetriesTransport int `yaml:"max_retries_transport"`
	// MaxRetriesSession bounds retries of a whole dialogue step.
	MaxRetriesSession int `yaml:"max_retries_session"`

	Baudrate int `yaml:"baudrate"`

	GPIOChip string `yaml:"gpio_chip"`
	GPIOLine int    `yaml:"gpio_line"`
}

// Valid fills every unspecified field with its default and range-checks
// the rest.
func (c *Config) Valid() error {
	if c == nil {
		return errors.New("pcmi: nil config")
	}
	if c.Port == "" {
		return errors.New("pcmi: config: port is required")
	}

	if c.Timeout == 0 {
		c.Timeout = 5 * time.Second
	} else if c.Timeout < TimeoutMin || c.Timeout > TimeoutMax {
		return fmt.Errorf("pcmi: config: timeout not in [%s, %s]", TimeoutMin, TimeoutMax)
	}

	if c.MaxRetriesTransport == 0 {
		c.MaxRetriesTransport = 6
	} else if c.MaxRetriesTransport < MaxRetriesTransportMin || c.MaxRetriesTransport > MaxRetriesTransportMax {
		return fmt.Errorf("pcmi: config: max_retries_transport not in [%d, %d]", MaxRetriesTransportMin, MaxRetriesTransportMax)
	}

	if c.MaxRetriesSession == 0 {
		c.MaxRetriesSession = 3
	} else if c.MaxRetriesSession < MaxRetriesSessionMin || c.MaxRetriesSession > MaxRetriesSessionMax {
		return fmt.Errorf("pcmi: config: max_retries_session not in [%d, %d]", MaxRetriesSessionMin, MaxRetriesSessionMax)
	}

	if c.Baudrate == 0 {
		c.Baudrate = 19200
	} else if c.Baudrate < BaudrateMin || c.Baudrate > BaudrateMax {
		return fmt.Errorf("pcmi: config: baudrate not in [%d, %d]", BaudrateMin, BaudrateMax)
	}

	return nil
}

// DefaultConfig returns a Config with every default applied, for the given port.
func DefaultConfig(port string) Config {
	cfg := Config{Port: port}
	_ = cfg.Valid()
	return cfg
}

// LoadConfig reads a YAML file into a Config and validates it, filling
// defaults for anything left unspecified.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pcmi: reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pcmi: parsing config %s: %w", path, err)
	}
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
