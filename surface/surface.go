// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines the contract of an editing surface: a mutable
// region of markup driven by named commands, with a single live
// selection. The engine only consumes this contract; package htmlsurface
// provides an in-memory implementation.
package surface

import (
	"image"

	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

// Surface is an editable region of markup.
//
// Any mutation of the surface invalidates all ranges obtained before it;
// [Surface.Version] changes on every mutation so that holders of a
// [dom.Handle] can tell.
type Surface interface {

	// Root returns the root element of the editable content.
	Root() *html.Node

	// Version returns a counter that changes on every mutation.
	Version() uint64

	// Execute runs the given command with an optional argument on the
	// live selection and returns whether it applied.
	Execute(cmd Command, arg string) bool

	// QueryState returns whether the given toggle command is active
	// at the live selection.
	QueryState(cmd Command) bool

	// InsertMarkup replaces the live selection with the given markup.
	InsertMarkup(markup string)

	// InsertPlainText replaces the live selection with the given text.
	InsertPlainText(text string)

	// CreateLink makes the live selection a link to the given URL.
	CreateLink(url string)

	// Unlink removes links intersecting the live selection.
	Unlink()

	// Selection returns the live selection, if there is one
	// inside the surface.
	Selection() (dom.Range, bool)

	// SetSelection makes r the live selection.
	SetSelection(r dom.Range)

	// ClearSelection removes the live selection.
	ClearSelection()

	// CollapseToStart places a collapsed selection at the start of the surface.
	CollapseToStart()

	// SelectNode selects n as a whole.
	SelectNode(n *html.Node)

	// SelectNodeContents selects the contents of n.
	SelectNodeContents(n *html.Node)

	// ClientRects returns the viewport rectangles covered by r.
	ClientRects(r dom.Range) []image.Rectangle

	// BoundingRect returns the viewport rectangle of n.
	BoundingRect(n *html.Node) image.Rectangle
}

// Sizer measures inline elements that have no text content of their
// own, such as embeds, returning their width in pixels.
type Sizer func(n *html.Node) (width int, ok bool)

// Sizable is implemented by surfaces that lay out opaque inline
// elements through a [Sizer].
type Sizable interface {
	SetSizer(sz Sizer)
}

// Observable is implemented by surfaces that report mutation batches.
// The function is called once after each mutating command.
type Observable interface {
	Observe(fn func())
}

// Mutator is implemented by surfaces that let callers edit the
// markup under Root directly as one mutation batch. fn reports
// whether it changed anything; if so the version moves on, observers
// are notified and the new state is recorded for undo.
type Mutator interface {
	Mutate(action string, fn func() bool) bool
}

// Snapshot returns a single-use handle to the live selection of s.
func Snapshot(s Surface) (*dom.Handle, bool) {
	r, ok := s.Selection()
	if !ok {
		return nil, false
	}
	return dom.NewHandle(s.Root(), r, s.Version()), true
}

// Restore takes the range held by h and makes it the live selection,
// returning it. It returns false when the handle is used up or stale.
func Restore(s Surface, h *dom.Handle) (dom.Range, bool) {
	if h == nil {
		return dom.Range{}, false
	}
	r, ok := h.Take(s.Root(), s.Version())
	if !ok {
		return dom.Range{}, false
	}
	s.SetSelection(r)
	return r, true
}
