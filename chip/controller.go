// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip

import (
	"log/slog"

	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// Controller inserts chips into a surface and routes clicks on them.
type Controller struct {

	// Surface is the editing surface.
	Surface surface.Surface

	// Registry holds the embeds of the surface.
	Registry *Registry

	// OnChange is called after the content was changed by the controller.
	OnChange func()

	// OnOpenPicker is called to open the binding picker seeded
	// with the binding of a clicked chip.
	OnOpenPicker func(b Binding)

	// active is the embed the picker was last opened for.
	active *Embed
}

// NewController returns a controller for the chips of s.
func NewController(s surface.Surface, reg *Registry) *Controller {
	if reg == nil {
		reg = NewRegistry(s)
	}
	return &Controller{Surface: s, Registry: reg}
}

func (c *Controller) emit() {
	c.Registry.Sync()
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Insert inserts a chip for b at the selection, or at the start of the
// surface when there is none, then highlights and selects it. It
// returns the inserted embed, or nil if it could not be located.
func (c *Controller) Insert(b Binding) *Embed {
	s := c.Surface
	if s == nil {
		return nil
	}
	if _, ok := s.Selection(); !ok {
		s.CollapseToStart()
	}
	h, ok := surface.Snapshot(s)
	if !ok {
		slog.Debug("chip: no selection to insert at")
		return nil
	}
	r, _ := h.Peek(s.Version())
	s.InsertMarkup(b.Markup(c.Registry.tag()))
	e := c.Relocate(r)
	if e == nil {
		slog.Debug("chip: inserted embed could not be located")
	} else {
		e.SetHighlighted(true)
		s.SelectNode(e.node)
	}
	c.emit()
	return e
}

// Relocate finds a chip inserted at r, which may be stale. It looks at
// the boundary containers of r, their children at the boundary offsets
// and the immediate siblings of both, falling back to the last chip of
// the surface. It returns nil if there are no chips.
func (c *Controller) Relocate(r dom.Range) *Embed {
	root := c.Surface.Root()
	var cands []*html.Node
	for _, p := range []dom.Point{r.Start, r.End} {
		if p.Node == nil {
			continue
		}
		for _, n := range []*html.Node{p.Node, dom.ChildAt(p.Node, p.Offset)} {
			if n != nil {
				cands = append(cands, n, n.PrevSibling, n.NextSibling)
			}
		}
	}
	for _, n := range cands {
		if n != nil && c.Registry.IsChip(n) && dom.Contains(root, n) {
			if e := c.Registry.Embed(n); e != nil {
				return e
			}
		}
	}
	return c.Registry.Last()
}

// Click routes a click at the viewport point x, y on e. The embed
// is selected; a click on its close affordance deletes it, and any
// other click highlights it and opens the picker for its binding.
func (c *Controller) Click(e *Embed, x, y int) {
	if e == nil || !dom.Contains(c.Surface.Root(), e.node) {
		slog.Debug("chip: click on an embed that is gone")
		return
	}
	c.Surface.SelectNode(e.node)
	if e.HitTestClose(x, y) {
		c.Surface.Execute(surface.Delete, "")
		if c.active == e {
			c.active = nil
		}
		c.emit()
		return
	}
	e.SetHighlighted(true)
	c.active = e
	if c.OnOpenPicker != nil {
		c.OnOpenPicker(e.Binding())
	}
}

// ClickAt routes a click at the viewport point x, y to the chip there,
// returning whether there was one.
func (c *Controller) ClickAt(x, y int) bool {
	e := c.Registry.At(x, y)
	if e == nil {
		return false
	}
	c.Click(e, x, y)
	return true
}

// Update sets the binding of the chip the picker was opened for.
func (c *Controller) Update(b Binding) {
	e := c.active
	if e == nil || !dom.Contains(c.Surface.Root(), e.node) {
		slog.Debug("chip: no picker embed to update")
		return
	}
	e.Render(b)
	c.emit()
}

// PickerClosed unhighlights every highlighted chip, moving the caret
// to just after each of them. Highlights are only made exclusive here:
// several chips clicked before the picker closes stay highlighted
// until then.
func (c *Controller) PickerClosed() {
	for _, e := range c.Registry.Highlighted() {
		e.SetHighlighted(false)
		c.Surface.SetSelection(dom.Caret(dom.After(e.node)))
	}
	c.active = nil
}
