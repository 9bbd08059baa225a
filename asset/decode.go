package asset

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matt-g-everett/ledseq/component"
	"github.com/matt-g-everett/ledseq/sequence"
)

type document struct {
	Name  string `yaml:"name"`
	Items []struct {
		Name       string      `yaml:"name"`
		Marker     string      `yaml:"marker"`
		Components []yaml.Node `yaml:"components"`
	} `yaml:"items"`
}

type validator interface {
	Validate() error
}

// Decode parses a YAML show. Each component names its registered type in a
// "type" key; the rest of its mapping is decoded over the type's defaults.
func Decode(data []byte, reg *component.Registry) (*Asset, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	a := &Asset{Name: doc.Name, Items: make([]Item, 0, len(doc.Items))}
	for i, raw := range doc.Items {
		item := Item{Name: raw.Name, Marker: raw.Marker}
		for j := range raw.Components {
			c, err := decodeComponent(&raw.Components[j], reg)
			if err != nil {
				return nil, fmt.Errorf("item %d (%s) component %d: %w", i, raw.Name, j, err)
			}
			item.Components = append(item.Components, c)
		}
		a.Items = append(a.Items, item)
	}
	return a, nil
}

func decodeComponent(node *yaml.Node, reg *component.Registry) (sequence.Component, error) {
	var header struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&header); err != nil {
		return nil, err
	}
	if header.Type == "" {
		return nil, errors.New("missing type")
	}

	c, err := reg.New(header.Type)
	if err != nil {
		return nil, err
	}
	if err := node.Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", header.Type, err)
	}
	if v, ok := c.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", header.Type, err)
		}
	}
	return c, nil
}

// Load reads and decodes the show at path.
func Load(path string, reg *component.Registry) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Decode(data, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
