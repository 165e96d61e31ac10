// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip

import (
	"image"
	"strconv"

	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

// HitTarget is the part of an embed hit by a point.
type HitTarget int32

const (
	// HitNone is a point outside the embed.
	HitNone HitTarget = iota

	// HitBody is a point on the embed outside its close affordance.
	HitBody

	// HitClose is a point on the close affordance.
	HitClose
)

func (h HitTarget) String() string {
	switch h {
	case HitNone:
		return "HitNone"
	case HitBody:
		return "HitBody"
	case HitClose:
		return "HitClose"
	}
	return "HitTarget(" + strconv.Itoa(int(h)) + ")"
}

// Embed is the live instance of a chip element. Its internals are
// private; it is driven through its attributes, the highlighted flag
// and hit-testing.
type Embed struct {
	node        *html.Node
	highlighted bool
	label       string
	lookup      string
	reg         *Registry
}

// Node returns the chip element.
func (e *Embed) Node() *html.Node {
	return e.node
}

// Source returns the mirrored source attribute.
func (e *Embed) Source() string {
	v, _ := dom.Attr(e.node, "source")
	return v
}

// Lookup returns the mirrored lookup attribute.
func (e *Embed) Lookup() string {
	v, _ := dom.Attr(e.node, "lookup")
	return v
}

// Binding returns the binding mirrored by the attributes.
func (e *Embed) Binding() Binding {
	return Binding{Source: e.Source(), Lookup: e.Lookup()}
}

// Label returns the rendered label.
func (e *Embed) Label() string {
	e.sync()
	return e.label
}

// sync re-renders the label when the lookup attribute changed.
func (e *Embed) sync() {
	if l := e.Lookup(); l != e.lookup || e.label == "" {
		e.lookup = l
		e.label = Label(l, e.reg.delimiter())
	}
}

// Render sets the attributes of the embed to b and re-renders it.
func (e *Embed) Render(b Binding) {
	dom.SetAttr(e.node, "source", b.Source)
	dom.SetAttr(e.node, "lookup", b.Lookup)
	e.sync()
}

// SetHighlighted sets whether the embed is highlighted.
func (e *Embed) SetHighlighted(on bool) {
	e.highlighted = on
}

// Highlighted returns whether the embed is highlighted.
func (e *Embed) Highlighted() bool {
	return e.highlighted
}

// Rect returns the viewport rectangle of the embed.
func (e *Embed) Rect() image.Rectangle {
	if e.reg.Surface == nil {
		return image.Rectangle{}
	}
	return e.reg.Surface.BoundingRect(e.node)
}

// HitTest returns the part of the embed at the viewport point x, y.
// The close affordance is the trailing CloseWidth pixels of the embed.
func (e *Embed) HitTest(x, y int) HitTarget {
	r := e.Rect()
	if !image.Pt(x, y).In(r) {
		return HitNone
	}
	if x >= r.Max.X-e.reg.closeWidth() {
		return HitClose
	}
	return HitBody
}

// HitTestClose returns whether x, y is on the close affordance.
func (e *Embed) HitTestClose(x, y int) bool {
	return e.HitTest(x, y) == HitClose
}
