// Package conventions holds the fixed directory layout and naming rules the
// audit runs against. The defaults are embedded in the binary.
package conventions

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed conventions.yaml
var defaultYAML []byte

// ErrInvalid is returned when a conventions document is missing a required field.
var ErrInvalid = errors.New("invalid conventions")

// Conventions describes where the audit looks and what it looks for.
type Conventions struct {
	SourceRoot     string   `yaml:"source_root"`
	ComponentRoots []string `yaml:"component_roots"`
	AppRoot        string   `yaml:"app_root"`
	RouteEntry     string   `yaml:"route_entry"`
	Extensions     []string `yaml:"extensions"`

	HookPrefix       string   `yaml:"hook_prefix"`
	HookNameExcludes []string `yaml:"hook_name_excludes"`
	ScanPathExcludes []string `yaml:"scan_path_excludes"`

	TypeEscapePatterns []string `yaml:"type_escape_patterns"`
	WorkMarkers        []string `yaml:"work_markers"`
	DebugMarker        string   `yaml:"debug_marker"`

	TopN int `yaml:"top_n"`
}

// Default returns the embedded conventions.
func Default() (*Conventions, error) {
	return Parse(defaultYAML)
}

// Parse decodes and validates a conventions document.
func Parse(data []byte) (*Conventions, error) {
	var c Conventions
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding conventions: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first required field that is empty.
func (c *Conventions) Validate() error {
	switch {
	case c.SourceRoot == "":
		return fmt.Errorf("%w: source_root is empty", ErrInvalid)
	case len(c.Extensions) == 0:
		return fmt.Errorf("%w: no extensions", ErrInvalid)
	case c.HookPrefix == "":
		return fmt.Errorf("%w: hook_prefix is empty", ErrInvalid)
	case c.RouteEntry == "":
		return fmt.Errorf("%w: route_entry is empty", ErrInvalid)
	case c.DebugMarker == "":
		return fmt.Errorf("%w: debug_marker is empty", ErrInvalid)
	case c.TopN <= 0:
		return fmt.Errorf("%w: top_n must be positive, got %d", ErrInvalid, c.TopN)
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return fmt.Errorf("%w: empty extension", ErrInvalid)
		}
	}
	return nil
}
