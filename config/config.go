package config

import (
	"fmt"
	"math/big"
	"time"

	"github.com/kbukum/vmcore/logger"
	"github.com/kbukum/vmcore/observability"
	"github.com/kbukum/vmcore/validation"
)

// Random algorithm selections.
const (
	AlgorithmAuto          = "auto"
	AlgorithmGeneral       = "general"
	AlgorithmDeterministic = "deterministic"
)

// DefaultMaxBits mirrors random.MaxBits; config cannot import random.
const DefaultMaxBits = 1 << 24

// Config is the root configuration of the runtime core.
type Config struct {
	Logger    logger.Config   `yaml:"logger" mapstructure:"logger"`
	Random    RandomConfig    `yaml:"random" mapstructure:"random"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// RandomConfig configures the default random engine.
type RandomConfig struct {
	// Algorithm is auto, general or deterministic. Auto picks deterministic
	// when a seed is set.
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm" validate:"oneof=auto general deterministic"`
	// Seed is an optional decimal integer seed.
	Seed *string `yaml:"seed" mapstructure:"seed" validate:"omitempty,numeric"`
	// MaxBits bounds Engine.Bits.
	MaxBits int `yaml:"max_bits" mapstructure:"max_bits" validate:"gt=0,lte=16777216"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool          `yaml:"enabled" mapstructure:"enabled"`
	ServiceName string        `yaml:"service_name" mapstructure:"service_name"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Endpoint    string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure    bool          `yaml:"insecure" mapstructure:"insecure"`
	Interval    time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Random.ApplyDefaults()
	c.Telemetry.ApplyDefaults()
}

// Validate checks struct rules and cross-field constraints.
func (c *Config) Validate() error {
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Random.validateSeed()
}

// ApplyDefaults fills unset random fields.
func (c *RandomConfig) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmAuto
	}
	if c.MaxBits == 0 {
		c.MaxBits = DefaultMaxBits
	}
}

func (c *RandomConfig) validateSeed() error {
	switch {
	case c.Algorithm == AlgorithmDeterministic && c.Seed == nil:
		return fmt.Errorf("random.seed is required when random.algorithm is %s", AlgorithmDeterministic)
	case c.Algorithm == AlgorithmGeneral && c.Seed != nil:
		return fmt.Errorf("random.seed must be empty when random.algorithm is %s", AlgorithmGeneral)
	}
	_, err := c.ParsedSeed()
	return err
}

// ParsedSeed returns the seed as an integer, or nil when unset.
func (c *RandomConfig) ParsedSeed() (*big.Int, error) {
	if c.Seed == nil {
		return nil, nil
	}
	seed, ok := new(big.Int).SetString(*c.Seed, 10)
	if !ok {
		return nil, fmt.Errorf("random.seed must be a decimal integer (got: %s)", *c.Seed)
	}
	return seed, nil
}

// ApplyDefaults fills unset telemetry fields.
func (c *TelemetryConfig) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "vmcore"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// MeterConfig converts to the observability meter configuration.
func (c *TelemetryConfig) MeterConfig() observability.MeterConfig {
	return observability.MeterConfig{
		ServiceName: c.ServiceName,
		Environment: c.Environment,
		Endpoint:    c.Endpoint,
		Insecure:    c.Insecure,
		Interval:    c.Interval,
	}
}

// TracerConfig converts to the observability tracer configuration.
func (c *TelemetryConfig) TracerConfig() observability.TracerConfig {
	tc := observability.DefaultTracerConfig(c.ServiceName)
	tc.Environment = c.Environment
	tc.Endpoint = c.Endpoint
	tc.Insecure = c.Insecure
	return tc
}
