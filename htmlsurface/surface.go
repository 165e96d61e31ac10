// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlsurface provides an in-memory editing surface: a markup
// document with a live selection and the editing commands of
// [surface.Surface]. It stands in for a browser's editable region,
// including native undo / redo and a simple fixed-width layout for
// geometry queries.
package htmlsurface

import (
	"image"
	"log/slog"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"cogentcore.org/richsync/undo"
	"golang.org/x/net/html"
)

// Surface is an in-memory [surface.Surface].
type Surface struct {

	// CharWidth is the width of one character in the layout, in pixels.
	CharWidth int

	// LineHeight is the height of one line in the layout, in pixels.
	LineHeight int

	// Origin is the viewport position of the top-left of the content.
	Origin image.Point

	root      *html.Node
	sel       dom.Range
	hasSel    bool
	version   uint64
	history   undo.Mgr
	sizer     surface.Sizer
	observers []func()
}

var _ surface.Surface = (*Surface)(nil)

// New returns a new surface with the given initial markup.
func New(markup string) *Surface {
	s := &Surface{CharWidth: 8, LineHeight: 20}
	s.root = dom.NewElement("div", html.Attribute{Key: "contenteditable", Val: "true"})
	errors.Log(dom.SetInnerHTML(s.root, markup))
	s.history.Reset(s.HTML())
	return s
}

// SetUndoInterval sets how often the undo history stores a full state.
func (s *Surface) SetUndoInterval(n int) {
	s.history.RawInterval = n
}

func (s *Surface) Root() *html.Node {
	return s.root
}

func (s *Surface) Version() uint64 {
	return s.version
}

// HTML returns the current markup of the content.
func (s *Surface) HTML() string {
	return dom.InnerHTML(s.root)
}

// SetHTML replaces the content with the given markup and clears the
// selection. It is recorded in the undo history.
func (s *Surface) SetHTML(markup string) {
	s.mutate("setHTML", func() bool {
		s.hasSel = false
		return errors.Log(dom.SetInnerHTML(s.root, markup)) == nil
	})
}

// SetSizer implements [surface.Sizable].
func (s *Surface) SetSizer(sz surface.Sizer) {
	s.sizer = sz
}

// Observe implements [surface.Observable].
func (s *Surface) Observe(fn func()) {
	s.observers = append(s.observers, fn)
}

// mutate runs fn as one mutation batch. fn reports whether it changed
// the content; if so the version moves on, the new state is recorded
// for undo and observers are notified.
func (s *Surface) mutate(action string, fn func() bool) bool {
	if !fn() {
		return false
	}
	s.changed()
	s.history.Save(action, s.HTML())
	return true
}

// Mutate implements [surface.Mutator].
func (s *Surface) Mutate(action string, fn func() bool) bool {
	return s.mutate(action, fn)
}

func (s *Surface) changed() {
	s.version++
	for _, fn := range s.observers {
		fn()
	}
}

func (s *Surface) Selection() (dom.Range, bool) {
	if !s.hasSel || !s.sel.Valid(s.root) {
		return dom.Range{}, false
	}
	return s.sel, true
}

func (s *Surface) SetSelection(r dom.Range) {
	if !r.Start.Valid(s.root) || !r.End.Valid(s.root) {
		slog.Debug("htmlsurface: ignoring selection outside the surface")
		s.hasSel = false
		return
	}
	if dom.Compare(s.root, r.Start, r.End) > 0 {
		r.Start, r.End = r.End, r.Start
	}
	s.sel, s.hasSel = r, true
}

func (s *Surface) ClearSelection() {
	s.hasSel = false
}

func (s *Surface) CollapseToStart() {
	s.SetSelection(dom.Caret(dom.Point{Node: s.root}))
}

// CollapseToEnd places a collapsed selection at the end of the surface.
func (s *Surface) CollapseToEnd() {
	s.SetSelection(dom.Caret(dom.Point{Node: s.root, Offset: dom.NumChildren(s.root)}))
}

func (s *Surface) SelectNode(n *html.Node) {
	if n == nil || n == s.root || !dom.Contains(s.root, n) {
		return
	}
	s.SetSelection(dom.NodeRange(n))
}

func (s *Surface) SelectNodeContents(n *html.Node) {
	if n == nil || !dom.Contains(s.root, n) {
		return
	}
	s.SetSelection(dom.ContentsRange(n))
}

// restore replaces the content with a state from the undo history.
func (s *Surface) restore(step func() (action, state string, ok bool)) bool {
	action, state, ok := step()
	if !ok {
		return false
	}
	if errors.Log(dom.SetInnerHTML(s.root, state)) != nil {
		return false
	}
	slog.Debug("htmlsurface: restored history state", "action", action)
	s.CollapseToEnd()
	s.changed()
	return true
}
