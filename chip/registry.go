// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip

import (
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// Registry upgrades the chip elements of a surface into [Embed]
// instances, and drops them once their markup is gone.
type Registry struct {

	// Surface is the surface holding the chips.
	Surface surface.Surface

	// Tag is the element tag of chips.
	Tag string

	// Delimiter separates lookup path segments.
	Delimiter string

	// CharWidth is the width of one label character, in pixels.
	CharWidth int

	// Padding is the horizontal padding on each side of the label, in pixels.
	Padding int

	// CloseWidth is the width of the close affordance, in pixels.
	CloseWidth int

	embeds map[*html.Node]*Embed
}

// NewRegistry returns a registry for the chips of s with default sizes.
func NewRegistry(s surface.Surface) *Registry {
	return &Registry{Surface: s, Tag: DefaultTag, Delimiter: DefaultDelimiter,
		CharWidth: 8, Padding: 8, CloseWidth: 16}
}

func (r *Registry) tag() string {
	if r.Tag == "" {
		return DefaultTag
	}
	return r.Tag
}

func (r *Registry) delimiter() string {
	if r.Delimiter == "" {
		return DefaultDelimiter
	}
	return r.Delimiter
}

func (r *Registry) closeWidth() int {
	return r.CloseWidth
}

// IsChip returns whether n is a chip element.
func (r *Registry) IsChip(n *html.Node) bool {
	return dom.IsElement(n, r.tag())
}

// Sync upgrades new chip elements and prunes embeds whose element
// has left the surface. It returns the embeds in document order.
func (r *Registry) Sync() []*Embed {
	if r.Surface == nil {
		return nil
	}
	if r.embeds == nil {
		r.embeds = map[*html.Node]*Embed{}
	}
	nodes := dom.FindAll(r.Surface.Root(), r.IsChip)
	live := make(map[*html.Node]bool, len(nodes))
	out := make([]*Embed, 0, len(nodes))
	for _, n := range nodes {
		live[n] = true
		e, ok := r.embeds[n]
		if !ok {
			e = &Embed{node: n, reg: r}
			r.embeds[n] = e
			slog.Debug("chip: upgraded embed", "lookup", e.Lookup())
		}
		e.sync()
		out = append(out, e)
	}
	for n := range r.embeds {
		if !live[n] {
			delete(r.embeds, n)
		}
	}
	return out
}

// Embed returns the embed for the chip element n, or nil if n is not
// a chip element in the surface.
func (r *Registry) Embed(n *html.Node) *Embed {
	if !r.IsChip(n) {
		return nil
	}
	if e, ok := r.embeds[n]; ok {
		return e
	}
	for _, e := range r.Sync() {
		if e.node == n {
			return e
		}
	}
	return nil
}

// Last returns the last embed in the surface, or nil.
func (r *Registry) Last() *Embed {
	all := r.Sync()
	if len(all) == 0 {
		return nil
	}
	return all[len(all)-1]
}

// Highlighted returns the highlighted embeds in document order.
func (r *Registry) Highlighted() []*Embed {
	var hl []*Embed
	for _, e := range r.Sync() {
		if e.highlighted {
			hl = append(hl, e)
		}
	}
	return hl
}

// At returns the embed at the viewport point x, y, or nil.
func (r *Registry) At(x, y int) *Embed {
	for _, e := range r.Sync() {
		if e.HitTest(x, y) != HitNone {
			return e
		}
	}
	return nil
}

// Size is a [surface.Sizer] giving chip elements the width of their
// label plus padding and the close affordance.
func (r *Registry) Size(n *html.Node) (int, bool) {
	if !r.IsChip(n) {
		return 0, false
	}
	lookup, _ := dom.Attr(n, "lookup")
	label := Label(lookup, r.delimiter())
	return utf8.RuneCountInString(label)*r.CharWidth + 2*r.Padding + r.CloseWidth, true
}
