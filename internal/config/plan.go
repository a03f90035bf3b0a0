// Package config loads an audit plan: the declarative description of
// a draw, allocation, or permutation that an auditor hands to the CLI
// instead of re-typing the same flags for every run. Plans are plain
// YAML so they can be committed alongside an election's audit
// paperwork and diffed in review.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the on-disk shape of an audit plan document.
type Plan struct {
	// Seed is the PRNG base seed, taken verbatim from the document. A
	// plan committed to a public record should set this from a
	// post-election public source of randomness, never a value chosen
	// by the auditor.
	Seed string `yaml:"seed"`

	// Population is the number of ballots, batches, or candidates the
	// plan draws from.
	Population int `yaml:"population"`

	// Method selects the sampling algorithm by name (e.g.
	// "fisher_yates", "sample_by_index"); empty defaults to the
	// command's own default.
	Method string `yaml:"method,omitempty"`

	// Draw, if set, marks the plan as a single sample of this size.
	// Validate uses it to tell a draw plan from an allocation plan; the
	// CLI's draw command takes its sample size from --k and does not
	// read this field.
	Draw int `yaml:"draw,omitempty"`

	// Groups, if set, requests a disjoint allocation with these group
	// sizes, in order.
	Groups []int `yaml:"groups,omitempty"`

	// Weights, if set, requests weighted sampling proportional to
	// these values; len(Weights) must equal Population.
	Weights []float64 `yaml:"weights,omitempty"`

	// Replace requests sampling with replacement, where the chosen
	// Method supports it.
	Replace bool `yaml:"replace,omitempty"`
}

// Load reads and parses a Plan document from path.
func Load(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading plan %q: %w", path, err)
	}
	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("config: parsing plan %q: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("config: plan %q: %w", path, err)
	}
	return &p, nil
}

// Validate checks a Plan for internal consistency, independent of
// whatever sampling algorithm will eventually consume it.
func (p *Plan) Validate() error {
	if p.Seed == "" {
		return fmt.Errorf("seed is required")
	}
	if p.Population <= 0 {
		return fmt.Errorf("population must be positive")
	}
	if p.Draw == 0 && len(p.Groups) == 0 {
		return fmt.Errorf("plan must set either draw or groups")
	}
	if p.Draw != 0 && len(p.Groups) != 0 {
		return fmt.Errorf("plan must not set both draw and groups")
	}
	if len(p.Weights) != 0 && len(p.Weights) != p.Population {
		return fmt.Errorf("weights length %d does not match population %d", len(p.Weights), p.Population)
	}
	return nil
}
