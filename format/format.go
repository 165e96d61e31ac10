// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format tracks the formatting state at the selection of an
// editing surface. The state is always re-derived from the surface's
// command state and never assumed from the commands that were issued.
package format

import (
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// DefaultAlignment is the alignment applied by [Tracker.Toggle]
// when no command is given.
var DefaultAlignment = surface.JustifyLeft

// State is the formatting state at the selection.
type State struct {
	Bold          bool
	Italic        bool
	Underline     bool
	UnorderedList bool

	// Alignment is the active alignment command, or
	// [surface.NoCommand] if none is active.
	Alignment surface.Command

	// Hyperlink is whether the selection is inside a link.
	Hyperlink bool
}

// Active returns whether the given toggle command is active in the state.
func (st *State) Active(cmd surface.Command) bool {
	switch cmd {
	case surface.Bold:
		return st.Bold
	case surface.Italic:
		return st.Italic
	case surface.Underline:
		return st.Underline
	case surface.InsertUnorderedList:
		return st.UnorderedList
	}
	return cmd.IsAlignment() && st.Alignment == cmd
}

// Tracker maintains the [State] of a [surface.Surface].
type Tracker struct {
	State

	// Surface is the surface being tracked. The tracker does nothing
	// while it is nil.
	Surface surface.Surface
}

// Compute updates the toggle and alignment state from the surface.
// Alignments are queried in the order of [surface.Alignments] and the
// first active one wins.
func (t *Tracker) Compute() {
	if t.Surface == nil {
		return
	}
	s := t.Surface
	t.Bold = s.QueryState(surface.Bold)
	t.Italic = s.QueryState(surface.Italic)
	t.Underline = s.QueryState(surface.Underline)
	t.UnorderedList = s.QueryState(surface.InsertUnorderedList)
	t.Alignment = surface.NoCommand
	for _, a := range surface.Alignments {
		if s.QueryState(a) {
			t.Alignment = a
			break
		}
	}
}

// Toggle executes cmd on the surface and recomputes the state.
// [surface.NoCommand] executes [DefaultAlignment].
func (t *Tracker) Toggle(cmd surface.Command) {
	if t.Surface == nil {
		return
	}
	if cmd == surface.NoCommand {
		cmd = DefaultAlignment
	}
	t.Surface.Execute(cmd, "")
	t.Compute()
}

// ComputeHyperlink updates and returns the hyperlink state: whether
// the nearest element of the selection start is a link inside root.
func (t *Tracker) ComputeHyperlink(root *html.Node) bool {
	t.Hyperlink = false
	if t.Surface == nil || root == nil {
		return false
	}
	r, ok := t.Surface.Selection()
	if !ok {
		return false
	}
	el := dom.ElementOf(r.Start.Node)
	t.Hyperlink = dom.IsElement(el, "a") && el != root && dom.Contains(root, el)
	return t.Hyperlink
}

// Reset clears the state without touching the surface.
func (t *Tracker) Reset() {
	t.State = State{}
}
