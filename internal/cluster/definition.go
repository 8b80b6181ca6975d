package cluster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition describes a cluster to boot: the service name, the container
// image and the initial members.
type Definition struct {
	Name     string       `yaml:"name"`
	Image    string       `yaml:"image"`
	Auth     string       `yaml:"auth,omitempty"`
	Machines []MachineDef `yaml:"machines"`
}

// MachineDef is one member in a cluster definition file.
type MachineDef struct {
	Name      string `yaml:"name"`
	Mode      string `yaml:"mode,omitempty"`
	BoltPort  int    `yaml:"boltPort"`
	HTTPPort  int    `yaml:"httpPort"`
	DebugPort int    `yaml:"debugPort,omitempty"`
}

// DefaultDefinition is a single-server cluster.
func DefaultDefinition() *Definition {
	return &Definition{
		Name:  "bolt",
		Image: "graphdb:latest",
		Machines: []MachineDef{
			{Name: "a", BoltPort: 17687, HTTPPort: 17474, DebugPort: 15005},
		},
	}
}

// LoadDefinition reads and validates a YAML cluster definition.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid cluster definition: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("cluster definition needs a name")
	}
	if d.Image == "" {
		return fmt.Errorf("cluster definition needs an image")
	}
	if len(d.Machines) == 0 {
		return fmt.Errorf("cluster definition needs at least one machine")
	}
	seen := make(map[string]bool)
	for _, m := range d.Machines {
		if m.Name == "" {
			return fmt.Errorf("every machine needs a name")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate machine name %q", m.Name)
		}
		seen[m.Name] = true
		if m.BoltPort == 0 || m.HTTPPort == 0 {
			return fmt.Errorf("machine %q needs boltPort and httpPort", m.Name)
		}
	}
	return nil
}
