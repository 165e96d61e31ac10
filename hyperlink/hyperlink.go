// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyperlink implements the overlay that creates, edits and
// removes links on an editing surface. Opening the overlay captures the
// selection in a [Draft]; the draft is written back to the surface
// exactly once, when the overlay is applied, removed or cancelled.
package hyperlink

import (
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// ErrAlreadyOpen is returned by [Controller.Open] while a draft is open.
var ErrAlreadyOpen = errors.New("hyperlink: overlay is already open")

// Draft is the pending, not yet applied state of a link edit.
type Draft struct {

	// Text is the link text.
	Text string

	// URL is the link target as entered by the user.
	URL string

	// OpenInTab is whether the link opens in a new browsing context.
	OpenInTab bool

	// Range is the single-use capability for the selection
	// the overlay was opened on.
	Range *dom.Handle

	// selected is the text that was selected when the overlay opened.
	selected string
}

// TextChanged returns whether the draft text differs from the
// text selected when the overlay opened.
func (d *Draft) TextChanged() bool {
	return d.Text != d.selected
}

// Polygon is a closed polygon in host coordinates.
type Polygon []image.Point

// String returns the polygon in the format of the SVG points attribute.
func (p Polygon) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = strconv.Itoa(pt.X) + "," + strconv.Itoa(pt.Y)
	}
	return strings.Join(parts, " ")
}

// RectPolygon returns the closed polygon around r.
func RectPolygon(r image.Rectangle) Polygon {
	return Polygon{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
}

// Controller is the hyperlink overlay state machine for a surface.
type Controller struct {

	// Surface is the editing surface links are edited on.
	Surface surface.Surface

	// Scheme is prefixed to URLs that have none.
	Scheme string

	// Target is the link target used when a draft opens in a new tab.
	Target string

	// OnClose is called with the terminal state each time the overlay
	// closes: [Applying], [Removing] or [Cancelling].
	OnClose func(st State)

	// Anchor is the position of the overlay in host coordinates,
	// just below the selection it was opened on.
	Anchor image.Point

	// Outline outlines the selection the overlay was opened on, one
	// polygon per client rectangle, in host coordinates. It stands in
	// for the native selection highlight while focus is in the overlay.
	Outline []Polygon

	state State
	draft *Draft
}

// State returns the current state of the overlay.
func (c *Controller) State() State {
	return c.state
}

// IsOpen returns whether a draft is open.
func (c *Controller) IsOpen() bool {
	return c.state == Open
}

// Draft returns the open draft, or nil.
func (c *Controller) Draft() *Draft {
	return c.draft
}

// Open captures the selection of the surface in a new draft. If the
// selection is inside a link, the whole link is selected first and its
// attributes seed the draft. host is the viewport position of the
// overlay host, used for [Controller.Anchor] and [Controller.Outline].
// Open does nothing if there is no selection inside the surface.
func (c *Controller) Open(host image.Point) error {
	if c.state != Idle {
		return ErrAlreadyOpen
	}
	if c.Surface == nil {
		return nil
	}
	s := c.Surface
	r, ok := s.Selection()
	if !ok {
		slog.Debug("hyperlink: no selection to open on")
		return nil
	}
	c.state = Opening
	root := s.Root()
	d := &Draft{}
	if a := dom.Closest(root, r.StartNode(), dom.Tag("a")); a != nil {
		s.SelectNode(a)
		if sr, ok := s.Selection(); ok {
			r = sr
		}
		d.URL, _ = dom.Attr(a, "href")
		target, _ := dom.Attr(a, "target")
		d.OpenInTab = target != "" && target != "_self"
	}
	d.selected = r.Text(root)
	d.Text = d.selected
	d.Range = dom.NewHandle(root, r, s.Version())
	c.layout(s.ClientRects(r), host)
	c.draft = d
	c.state = Open
	slog.Debug("hyperlink: overlay opened", "text", d.Text, "url", d.URL)
	return nil
}

// layout computes the overlay anchor and selection outline.
func (c *Controller) layout(rects []image.Rectangle, host image.Point) {
	c.Outline = nil
	if len(rects) == 0 {
		c.Anchor = c.Surface.BoundingRect(c.Surface.Root()).Min.Sub(host)
		return
	}
	u := rects[0]
	for _, r := range rects {
		c.Outline = append(c.Outline, RectPolygon(r.Sub(host)))
		u = u.Union(r)
	}
	c.Anchor = image.Pt(u.Min.X, u.Max.Y).Sub(host)
}

// SetText sets the draft link text.
func (c *Controller) SetText(text string) {
	if c.IsOpen() {
		c.draft.Text = text
	}
}

// SetURL sets the draft link URL.
func (c *Controller) SetURL(url string) {
	if c.IsOpen() {
		c.draft.URL = url
	}
}

// SetOpenInTab sets whether the draft link opens in a new tab.
func (c *Controller) SetOpenInTab(tab bool) {
	if c.IsOpen() {
		c.draft.OpenInTab = tab
	}
}

// Apply writes the draft to the surface as a link and closes the
// overlay. An empty URL removes the link instead.
func (c *Controller) Apply() {
	if !c.IsOpen() {
		return
	}
	d := c.draft
	url := NormalizeURL(d.URL, c.Scheme)
	if url == "" {
		c.state = Removing
		c.remove(d)
		return
	}
	c.state = Applying
	defer c.close()
	if _, ok := surface.Restore(c.Surface, d.Range); !ok {
		slog.Debug("hyperlink: draft range is gone, not applying")
		return
	}
	if d.TextChanged() {
		c.Surface.InsertMarkup(c.anchorMarkup(d, url))
		return
	}
	c.Surface.CreateLink(url)
	r, ok := c.Surface.Selection()
	if !ok {
		return
	}
	for _, a := range Links(c.Surface.Root(), r) {
		if d.OpenInTab {
			dom.SetAttr(a, "target", c.target())
		} else {
			dom.RemoveAttr(a, "target")
		}
	}
}

func (c *Controller) target() string {
	if c.Target == "" {
		return "_blank"
	}
	return c.Target
}

// anchorMarkup returns the markup of a link for the draft.
func (c *Controller) anchorMarkup(d *Draft, url string) string {
	a := dom.NewElement("a", html.Attribute{Key: "href", Val: url})
	if d.OpenInTab {
		dom.SetAttr(a, "target", c.target())
	}
	text := d.Text
	if text == "" {
		text = url
	}
	a.AppendChild(dom.NewText(text))
	return dom.OuterHTML(a)
}

// Remove removes the link from the draft's range and closes the
// overlay. A changed, non-empty draft text replaces the link text.
func (c *Controller) Remove() {
	if !c.IsOpen() {
		return
	}
	c.state = Removing
	c.remove(c.draft)
}

func (c *Controller) remove(d *Draft) {
	defer c.close()
	if _, ok := surface.Restore(c.Surface, d.Range); !ok {
		slog.Debug("hyperlink: draft range is gone, not removing")
		return
	}
	c.Surface.Unlink()
	if d.TextChanged() && d.Text != "" {
		c.Surface.InsertPlainText(d.Text)
	}
}

// Cancel discards the draft and closes the overlay, clearing the
// selection it was opened on.
func (c *Controller) Cancel() {
	if !c.IsOpen() {
		return
	}
	c.state = Cancelling
	if c.draft.Range != nil && !c.draft.Range.Used() {
		c.Surface.ClearSelection()
	}
	c.close()
}

func (c *Controller) close() {
	st := c.state
	c.draft = nil
	c.Outline = nil
	c.state = Idle
	slog.Debug("hyperlink: overlay closed", "via", st)
	if c.OnClose != nil {
		c.OnClose(st)
	}
}

// Links returns the links intersecting r in document order.
func Links(root *html.Node, r dom.Range) []*html.Node {
	var links []*html.Node
	seen := map[*html.Node]bool{}
	add := func(a *html.Node) {
		if a != nil && !seen[a] {
			seen[a] = true
			links = append(links, a)
		}
	}
	isLink := dom.Tag("a")
	add(dom.Closest(root, r.StartNode(), isLink))
	for _, n := range r.Contained(root) {
		dom.Walk(n, func(n *html.Node) bool {
			if isLink(n) {
				add(n)
			}
			return true
		})
	}
	add(dom.Closest(root, r.EndNode(), isLink))
	return links
}

var (
	schemeRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	portRE   = regexp.MustCompile(`^(localhost|[^/:]*\.[^/:]*):\d+(/|$)`)
)

// NormalizeURL trims url and prefixes scheme when it has none.
// Fragment, absolute-path and query references are kept as is,
// and a protocol-relative URL takes the scheme without its slashes.
func NormalizeURL(url, scheme string) string {
	url = strings.TrimSpace(url)
	if scheme == "" {
		scheme = "https://"
	}
	switch {
	case url == "":
		return ""
	case strings.HasPrefix(url, "//"):
		return strings.TrimSuffix(scheme, "//") + url
	case strings.HasPrefix(url, "#"), strings.HasPrefix(url, "/"), strings.HasPrefix(url, "?"):
		return url
	case schemeRE.MatchString(url) && !portRE.MatchString(url):
		return url
	}
	return scheme + url
}
