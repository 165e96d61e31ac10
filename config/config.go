// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for richsync editors and tools.
package config

import (
	"fmt"
	"os"
	"time"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/mode"
	"github.com/pelletier/go-toml/v2"
)

// Duration is a [time.Duration] that is written in
// config files as a string such as "200ms".
type Duration time.Duration

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements [encoding.TextMarshaler].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config is the main config struct that contains all of the
// configuration options for a richsync editor.
type Config struct {

	// BlurResetDelay is how long after losing focus the format
	// state is reset, giving focus time to move into overlay UI.
	BlurResetDelay Duration `default:"200ms"`

	// Mode is the initial editing mode: PlainText or RichText.
	Mode string `default:"RichText"`

	// ChipTag is the custom element tag of data chip embeds.
	ChipTag string `default:"app-data-chip"`

	// ChipDelimiter separates the segments of a chip lookup path.
	ChipDelimiter string `default:"."`

	// LinkScheme is prefixed to hyperlink URLs that have no scheme.
	LinkScheme string `default:"https://"`

	// LinkTarget is the target attribute value of links that
	// open in a new tab.
	LinkTarget string `default:"_blank"`

	// CharWidth is the width of one character in the surface layout, in pixels.
	CharWidth int `default:"8"`

	// LineHeight is the height of one line in the surface layout, in pixels.
	LineHeight int `default:"20"`

	// ChipPadding is the horizontal padding on each side of a chip label, in pixels.
	ChipPadding int `default:"8"`

	// ChipCloseWidth is the width of the chip close affordance, in pixels.
	ChipCloseWidth int `default:"16"`

	// UndoRawInterval is how often the undo history stores a full
	// state instead of a patch.
	UndoRawInterval int `default:"50"`

	// Keymap overrides editor key chords: chord descriptions such as
	// "Control+Shift+L" map to key function names such as "AlignLeft".
	Keymap map[string]string

	// RichStyle is the default style descriptor for rich text.
	RichStyle mode.Style

	// PlainStyle is the default style descriptor for plain text.
	PlainStyle mode.Style
}

// Defaults returns a new config with the values of its default tags.
func Defaults() *Config {
	c := &Config{
		RichStyle:  mode.DefaultRichStyle(),
		PlainStyle: mode.DefaultPlainStyle(),
	}
	errors.Must(SetFromDefaultTags(c))
	return c
}

// Parse returns a config with defaults overridden by the given TOML data.
func Parse(data []byte) (*Config, error) {
	c := Defaults()
	if err := toml.Unmarshal(data, c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("config: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Open reads the config from the given TOML file.
func Open(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Delay returns [Config.BlurResetDelay] as a [time.Duration].
func (c *Config) Delay() time.Duration {
	return time.Duration(c.BlurResetDelay)
}

// InitialMode returns [Config.Mode] as a [mode.Mode].
func (c *Config) InitialMode() mode.Mode {
	if c.Mode == mode.PlainText.String() {
		return mode.PlainText
	}
	return mode.RichText
}

// Validate returns an error for settings the editor cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Mode != mode.PlainText.String() && c.Mode != mode.RichText.String():
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	case c.ChipTag == "":
		return fmt.Errorf("config: chip tag must not be empty")
	case c.ChipDelimiter == "":
		return fmt.Errorf("config: chip delimiter must not be empty")
	case c.CharWidth <= 0 || c.LineHeight <= 0:
		return fmt.Errorf("config: layout sizes must be positive")
	case c.UndoRawInterval <= 0:
		return fmt.Errorf("config: undo raw interval must be positive")
	}
	return nil
}
