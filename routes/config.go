package routes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/paramkit/params"
)

// FileConfig is the YAML layout of a route file:
//
//	routes:
//	  - name: items
//	    path: /items
//	  - name: company_items
//	    path: /companies/{company_id:int}/items
//	    defaults:
//	      format: html
type FileConfig struct {
	Routes []RouteConfig `yaml:"routes"`
}

// RouteConfig declares a single route.
type RouteConfig struct {
	Name     string      `yaml:"name"`
	Path     string      `yaml:"path"`
	Defaults params.Tree `yaml:"defaults,omitempty"`
}

// LoadFile reads a YAML route file and builds a table from it.
func LoadFile(name string) (*Table, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML builds a table from YAML route declarations. Unknown fields
// are rejected.
func ParseYAML(data []byte) (*Table, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("routes: decode route file: %w", err)
	}

	return cfg.Build()
}

// Build registers the declared routes in a new table.
func (c FileConfig) Build() (*Table, error) {
	t := NewTable()
	for i, rc := range c.Routes {
		r := t.Add(rc.Name, rc.Path)
		if len(rc.Defaults) > 0 {
			r.Defaults(rc.Defaults)
		}
		if err := r.GetError(); err != nil {
			return nil, fmt.Errorf("routes: route #%d: %w", i, err)
		}
	}
	return t, nil
}
