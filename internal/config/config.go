package config

import (
	"fmt"

	"github.com/ASukhanov/Control/internal/control"
	"github.com/ASukhanov/Control/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultKp = 10.0
	DefaultKi = 0.0
	DefaultKd = 5.0
)

// Config pairs a plant with controller gains.
type Config struct {
	Name  string             `yaml:"name,omitempty"`
	Plant physics.SpringMass `yaml:"plant"`
	Gains control.Gains      `yaml:"gains"`
}

func DefaultConfig() *Config {
	return &Config{
		Plant: physics.NewSpringMass(),
		Gains: control.Gains{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
	}
}

// Parse decodes YAML on top of DefaultConfig, so omitted fields keep their
// defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return data, nil
}
