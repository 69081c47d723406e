package config

import (
	"fmt"

	"github.com/slidekit/slidekit/internal/carousel"
)

// SliderConfig holds the user-tunable carousel settings. Fields map onto
// carousel.Options; values the widget considers malformed are degraded at
// construction time, so this layer only validates what users would want an
// early error for.
type SliderConfig struct {
	// Gap is the spacing between cards in cells.
	Gap int `yaml:"gap"`

	// Peek configures partial visibility of the adjacent card.
	Peek PeekConfig `yaml:"peek,omitempty"`

	// Breakpoints is an explicit responsive breakpoint list. When present it
	// takes precedence over the built-in width tiers.
	Breakpoints []BreakpointConfig `yaml:"breakpoints,omitempty"`

	// Tiers overrides entries of the built-in width-tier table
	// (container width threshold -> cards per view).
	Tiers map[int]int `yaml:"tiers,omitempty"`

	// DragThreshold is the fraction of a card width a drag must cover to
	// commit a slide change on release.
	DragThreshold float64 `yaml:"drag_threshold,omitempty"`

	// Spring tunes the offset animation curve.
	Spring SpringConfig `yaml:"spring,omitempty"`

	// Virtualize enables windowed rendering of large collections.
	Virtualize bool `yaml:"virtualize"`

	// Overscan is the number of extra cards rendered beyond each edge of the
	// visible window.
	Overscan int `yaml:"overscan,omitempty"`
}

// PeekConfig mirrors carousel.Peek in YAML form.
type PeekConfig struct {
	Enabled bool   `yaml:"enabled"`
	Amount  string `yaml:"amount,omitempty"`
}

// BreakpointConfig mirrors carousel.Breakpoint in YAML form.
type BreakpointConfig struct {
	Width int `yaml:"width"`
	Items int `yaml:"items"`
}

// SpringConfig mirrors carousel.Spring in YAML form. Zero fields fall back
// to the widget defaults.
type SpringConfig struct {
	Stiffness float64 `yaml:"stiffness,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	Mass      float64 `yaml:"mass,omitempty"`
}

// DefaultSliderConfig returns the slider defaults used by config init.
func DefaultSliderConfig() SliderConfig {
	return SliderConfig{
		Gap:           carousel.DefaultGap,
		DragThreshold: carousel.DefaultDragThreshold,
		Virtualize:    true,
		Overscan:      carousel.DefaultOverscan,
	}
}

// ToOptions converts the YAML settings into widget options.
func (s SliderConfig) ToOptions() carousel.Options {
	opts := carousel.Options{
		Gap:           s.Gap,
		Peek:          carousel.Peek{Enabled: s.Peek.Enabled, Amount: s.Peek.Amount},
		DragThreshold: s.DragThreshold,
		Spring: carousel.Spring{
			Stiffness: s.Spring.Stiffness,
			Damping:   s.Spring.Damping,
			Mass:      s.Spring.Mass,
		},
		Virtualize: s.Virtualize,
		Overscan:   s.Overscan,
	}

	for _, bp := range s.Breakpoints {
		opts.Breakpoints = append(opts.Breakpoints, carousel.Breakpoint{
			Width: bp.Width,
			Items: bp.Items,
		})
	}
	if len(s.Tiers) > 0 {
		opts.TierOverrides = make(map[int]int, len(s.Tiers))
		for w, n := range s.Tiers {
			opts.TierOverrides[w] = n
		}
	}
	return opts
}

// Validate reports settings a user would want flagged by config validate.
// The widget itself degrades these at runtime, so validation here is purely
// advisory.
func (s SliderConfig) Validate() []error {
	var errs []error

	if s.Gap < 0 {
		errs = append(errs, fmt.Errorf("slider.gap must not be negative, got %d", s.Gap))
	}
	if s.DragThreshold < 0 || s.DragThreshold >= 1 {
		errs = append(errs, fmt.Errorf("slider.drag_threshold must be in [0,1), got %g", s.DragThreshold))
	}
	if s.Overscan < 0 {
		errs = append(errs, fmt.Errorf("slider.overscan must not be negative, got %d", s.Overscan))
	}
	for i, bp := range s.Breakpoints {
		if bp.Items <= 0 || bp.Width < 0 {
			errs = append(errs, fmt.Errorf("slider.breakpoints[%d]: width %d / items %d is invalid", i, bp.Width, bp.Items))
		}
	}
	for w, n := range s.Tiers {
		if n <= 0 || w < 0 {
			errs = append(errs, fmt.Errorf("slider.tiers[%d]: %d items is invalid", w, n))
		}
	}
	return errs
}
