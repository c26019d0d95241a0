package config

import (
	"sort"

	"github.com/ASukhanov/Control/internal/control"
	"github.com/ASukhanov/Control/internal/physics"
)

var Presets = map[string]*Config{
	"underdamped": {
		Plant: physics.SpringMass{Mass: 1, Damping: 0.5, Stiffness: 10},
		Gains: control.Gains{Kp: 10},
	},
	"critical": {
		Plant: physics.SpringMass{Mass: 1, Damping: 4, Stiffness: 4},
		Gains: control.Gains{Kp: 5, Kd: 2},
	},
	"overdamped": {
		Plant: physics.SpringMass{Mass: 1, Damping: 10, Stiffness: 4},
		Gains: control.Gains{Kp: 20, Ki: 8},
	},
	"integral": {
		Plant: physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3},
		Gains: control.Gains{Ki: 5},
	},
	"pid": {
		Plant: physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3},
		Gains: control.Gains{Kp: 4, Ki: 5, Kd: 6},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Name = name
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
