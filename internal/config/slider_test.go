package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slidekit/slidekit/internal/carousel"
)

// TestSliderConfigToOptions verifies the YAML settings map onto widget
// options field by field.
func TestSliderConfigToOptions(t *testing.T) {
	cfg := SliderConfig{
		Gap:  3,
		Peek: PeekConfig{Enabled: true, Amount: "15%"},
		Breakpoints: []BreakpointConfig{
			{Width: 0, Items: 1},
			{Width: 120, Items: 3},
		},
		Tiers:         map[int]int{80: 3},
		DragThreshold: 0.25,
		Spring:        SpringConfig{Stiffness: 200, Damping: 30, Mass: 2},
		Virtualize:    true,
		Overscan:      1,
	}

	opts := cfg.ToOptions()
	assert.Equal(t, 3, opts.Gap)
	assert.Equal(t, carousel.Peek{Enabled: true, Amount: "15%"}, opts.Peek)
	assert.Equal(t, []carousel.Breakpoint{{Width: 0, Items: 1}, {Width: 120, Items: 3}}, opts.Breakpoints)
	assert.Equal(t, map[int]int{80: 3}, opts.TierOverrides)
	assert.InDelta(t, 0.25, opts.DragThreshold, 1e-9)
	assert.Equal(t, carousel.Spring{Stiffness: 200, Damping: 30, Mass: 2}, opts.Spring)
	assert.True(t, opts.Virtualize)
	assert.Equal(t, 1, opts.Overscan)
}

// TestSliderConfigValidate checks the advisory validation findings.
func TestSliderConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       SliderConfig
		wantCount int
	}{
		{name: "defaults are clean", cfg: DefaultSliderConfig(), wantCount: 0},
		{name: "negative gap", cfg: SliderConfig{Gap: -1}, wantCount: 1},
		{name: "threshold too high", cfg: SliderConfig{DragThreshold: 1.2}, wantCount: 1},
		{
			name: "bad breakpoint and tier",
			cfg: SliderConfig{
				Breakpoints: []BreakpointConfig{{Width: -1, Items: 2}},
				Tiers:       map[int]int{100: 0},
			},
			wantCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.cfg.Validate(), tt.wantCount)
		})
	}
}

// TestConfigValidate verifies findings roll up from every section.
func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Validate())

	cfg.Version = "9.0"
	cfg.Slider.Gap = -2
	cfg.Logging.Level = "chatty"
	errs := cfg.Validate()
	assert.Len(t, errs, 3)
}
