package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/goappbar/internal/appbar"
)

const (
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
)

// Layout describes a desktop for the simulated docking service: the
// primary screen size and the bars already reserved on it.
type Layout struct {
	Screen Size  `yaml:"screen"`
	Bars   []Bar `yaml:"bars"`
}

// Size is a screen size in pixels.
type Size struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// Bar is a pre-existing reservation such as the taskbar.
type Bar struct {
	Window    uint64 `yaml:"window"`
	Edge      string `yaml:"edge"`
	Thickness int32  `yaml:"thickness"`
}

// DefaultLayout is a bare full HD desktop.
func DefaultLayout() *Layout {
	return &Layout{Screen: Size{Width: defaultScreenWidth, Height: defaultScreenHeight}}
}

// LoadLayout reads a layout file. An empty path yields DefaultLayout.
func LoadLayout(path string) (*Layout, error) {
	if path == "" {
		return DefaultLayout(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	layout, err := ParseLayout(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes and validates a YAML layout document.
func ParseLayout(raw []byte) (*Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	if layout.Screen.Width == 0 && layout.Screen.Height == 0 {
		layout.Screen = Size{Width: defaultScreenWidth, Height: defaultScreenHeight}
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// Validate checks screen dimensions and bar entries. Unlike the command
// line, layout edges must be spelled exactly.
func (l *Layout) Validate() error {
	if l.Screen.Width <= 0 || l.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", l.Screen.Width, l.Screen.Height)
	}

	seen := make(map[uint64]bool, len(l.Bars))
	for i, bar := range l.Bars {
		if bar.Window == 0 {
			return fmt.Errorf("bars[%d]: window must be non-zero", i)
		}
		if seen[bar.Window] {
			return fmt.Errorf("bars[%d]: window %d listed twice", i, bar.Window)
		}
		seen[bar.Window] = true

		if _, ok := appbar.ParseEdge(bar.Edge); !ok {
			return fmt.Errorf("bars[%d]: unknown edge %q", i, bar.Edge)
		}
		if bar.Thickness <= 0 {
			return fmt.Errorf("bars[%d]: thickness must be positive, got %d", i, bar.Thickness)
		}
	}
	return nil
}

// Bounds returns the primary screen rectangle.
func (l *Layout) Bounds() appbar.Rect {
	return appbar.Rect{Right: l.Screen.Width, Bottom: l.Screen.Height}
}

// ResolvedEdge returns the bar's edge.
func (b Bar) ResolvedEdge() appbar.Edge {
	return appbar.ResolveEdge(b.Edge)
}
