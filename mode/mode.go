// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mode switches an editor between its plain-text and
// rich-text representations. Transitions transform the content:
// plain text becomes escaped markup, and markup is flattened back to
// text, dropping links and data chips in the process.
package mode

import (
	"html"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/richsync/base/errors"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/jinzhu/copier"
)

// Mode is the content representation of an editor.
type Mode int32

const (
	// PlainText edits an unformatted string value.
	PlainText Mode = iota

	// RichText edits markup on an editing surface.
	RichText
)

func (m Mode) String() string {
	switch m {
	case PlainText:
		return "PlainText"
	case RichText:
		return "RichText"
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Spacing holds a box side value for each edge.
type Spacing struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Style is the default style descriptor of the editor host for a mode.
type Style struct {

	// FontFamily is the CSS font family list.
	FontFamily string

	// FontSize is the font size in pixels.
	FontSize float32

	// Color is the text color.
	Color string

	// LineHeight is the line height multiplier.
	LineHeight float32

	// Padding is the inner padding of the host, in pixels.
	Padding Spacing

	// Props are additional style properties, keyed by CSS property name.
	Props map[string]string
}

// DefaultRichStyle returns the style descriptor used for [RichText].
func DefaultRichStyle() Style {
	return Style{
		FontFamily: "Roboto, sans-serif",
		FontSize:   14,
		Color:      "#202124",
		LineHeight: 1.4,
		Padding:    Spacing{Top: 4, Right: 4, Bottom: 4, Left: 4},
		Props:      map[string]string{"white-space": "pre-wrap", "overflow-wrap": "break-word"},
	}
}

// DefaultPlainStyle returns the style descriptor used for [PlainText].
func DefaultPlainStyle() Style {
	return Style{
		FontFamily: "Roboto, sans-serif",
		FontSize:   14,
		Color:      "#202124",
		LineHeight: 1.2,
		Props:      map[string]string{"white-space": "pre"},
	}
}

// Controller runs mode transitions. The hooks connect it to the host:
// OnModeChange is called once the mode field has changed, Refresh must
// synchronously create the editing surface for [RichText], and SetContent
// pushes markup into that surface.
type Controller struct {

	// Mode is the current mode.
	Mode Mode

	// Style is the active style descriptor, a deep copy of
	// RichStyle or PlainStyle.
	Style Style

	// RichStyle is the default descriptor for [RichText].
	RichStyle Style

	// PlainStyle is the default descriptor for [PlainText].
	PlainStyle Style

	OnModeChange func(m Mode)
	Refresh      func()
	SetContent   func(markup string)
}

// NewController returns a controller in the given mode using the
// default style descriptors.
func NewController(m Mode) *Controller {
	c := &Controller{Mode: m, RichStyle: DefaultRichStyle(), PlainStyle: DefaultPlainStyle()}
	if m == RichText {
		c.copyStyle(&c.RichStyle)
	} else {
		c.copyStyle(&c.PlainStyle)
	}
	return c
}

func (c *Controller) copyStyle(from *Style) {
	c.Style = Style{}
	errors.Log(copier.CopyWithOption(&c.Style, from, copier.Option{DeepCopy: true}))
}

// ToRich switches from [PlainText] to [RichText], pushing the given
// text into the surface as escaped markup. It does nothing when
// already in [RichText].
func (c *Controller) ToRich(text string) {
	if c.Mode == RichText {
		return
	}
	c.copyStyle(&c.RichStyle)
	c.Mode = RichText
	if c.OnModeChange != nil {
		c.OnModeChange(c.Mode)
	}
	if c.Refresh != nil {
		c.Refresh()
	}
	if c.SetContent != nil {
		c.SetContent(RichContent(text))
	}
}

// ToPlain switches from [RichText] to [PlainText] and returns the
// plain-text value of the given markup; see [PlainContent]. When already
// in [PlainText] the markup is returned unchanged.
func (c *Controller) ToPlain(markup string) string {
	if c.Mode == PlainText {
		return markup
	}
	text := PlainContent(markup)
	c.copyStyle(&c.PlainStyle)
	c.Mode = PlainText
	if c.OnModeChange != nil {
		c.OnModeChange(c.Mode)
	}
	slog.Debug("mode: rich content flattened", "from", len(markup), "to", len(text))
	return text
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// PlainContent flattens markup to text: all tags are stripped,
// including data chip markup, entities are decoded, non-breaking spaces
// become regular spaces and runs of whitespace collapse to one space.
// Link and chip information is discarded.
func PlainContent(markup string) string {
	s := strip.StripTags(markup)
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return whitespaceRun.ReplaceAllString(s, " ")
}

// RichContent returns the markup for the given plain text.
func RichContent(text string) string {
	return html.EscapeString(text)
}
