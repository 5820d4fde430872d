package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed cases.yaml
var defaultCases []byte

type config struct {
	Propagate propagateConfig `yaml:"propagate"`
	Graph     graphConfig     `yaml:"graph"`
}

type propagateConfig struct {
	Widths     []int `yaml:"widths"`
	Heights    []int `yaml:"heights"`
	Iterations int   `yaml:"iterations"`
}

type graphConfig struct {
	Repeats int         `yaml:"repeats"`
	Cases   []graphCase `yaml:"cases"`
}

type graphCase struct {
	Name           string  `yaml:"name"`            // friendly name for the test, should be unique
	Width          int     `yaml:"width"`           // width of dependency graph to construct
	Layers         int     `yaml:"layers"`          // depth of dependency graph to construct
	StaticFraction float64 `yaml:"static_fraction"` // fraction of nodes that always read the same sources
	Sources        int     `yaml:"sources"`         // number of sources each node reads
	ReadFraction   float64 `yaml:"read_fraction"`   // fraction of leaves read after each write
	Iterations     int     `yaml:"iterations"`
	ExpectedSum    int     `yaml:"expected_sum,omitempty"`
	ExpectedCount  int64   `yaml:"expected_count,omitempty"`
}

// loadConfig parses the built-in cases and then path, if given, on top of
// them. Sections present in the file replace the built-in ones.
func loadConfig(path string) (*config, error) {
	cfg := &config{}
	if err := yaml.Unmarshal(defaultCases, cfg); err != nil {
		return nil, fmt.Errorf("parsing built-in cases: %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	var errs []error
	if c.Propagate.Iterations < 1 {
		errs = append(errs, errors.New("propagate: iterations must be positive"))
	}
	if c.Graph.Repeats < 1 {
		errs = append(errs, errors.New("graph: repeats must be positive"))
	}
	for _, gc := range c.Graph.Cases {
		if gc.Width < 1 || gc.Layers < 2 || gc.Sources < 1 {
			errs = append(errs, fmt.Errorf("graph case %q: needs width >= 1, layers >= 2 and sources >= 1", gc.Name))
		}
		if gc.Sources > gc.Width {
			errs = append(errs, fmt.Errorf("graph case %q: %d sources exceed width %d", gc.Name, gc.Sources, gc.Width))
		}
		if gc.ReadFraction < 0 || gc.ReadFraction > 1 || gc.StaticFraction < 0 || gc.StaticFraction > 1 {
			errs = append(errs, fmt.Errorf("graph case %q: fractions must be within [0, 1]", gc.Name))
		}
	}
	return errors.Join(errs...)
}
