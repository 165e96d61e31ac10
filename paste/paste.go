// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paste handles clipboard events of an editing surface and
// keeps the surface markup clean after mutations. Markup payloads are
// only pasted when they come from a copy made in the same session;
// anything else is pasted as plain text.
package paste

import (
	"log/slog"
	"strings"

	"cogentcore.org/richsync/base/mimedata"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// Result is what a paste inserted.
type Result int32

const (
	// Nothing was inserted.
	Nothing Result = iota

	// PlainText was inserted.
	PlainText

	// Markup was inserted, after sanitizing.
	Markup
)

func (r Result) String() string {
	switch r {
	case PlainText:
		return "PlainText"
	case Markup:
		return "Markup"
	}
	return "Nothing"
}

// Pipeline handles the copy, cut and paste events of a surface.
type Pipeline struct {

	// Surface is the editing surface.
	Surface surface.Surface

	// Sanitizer cleans trusted markup before it is inserted.
	// Markup is never inserted without one.
	Sanitizer Sanitizer

	snapshot    string
	hasSnapshot bool
}

// Snapshot returns the plain text of the last copy or cut.
func (p *Pipeline) Snapshot() (string, bool) {
	return p.snapshot, p.hasSnapshot
}

// Copy records the plain text of the selection and returns the
// clipboard payloads for it.
func (p *Pipeline) Copy() mimedata.Mimes {
	if p.Surface == nil {
		return nil
	}
	r, ok := p.Surface.Selection()
	if !ok {
		slog.Debug("paste: no selection to copy")
		return nil
	}
	root := p.Surface.Root()
	p.snapshot = r.Text(root)
	p.hasSnapshot = true
	return mimedata.NewHTML(p.snapshot, Fragment(root, r))
}

// Cut is [Pipeline.Copy] followed by deleting the selection.
func (p *Pipeline) Cut() mimedata.Mimes {
	md := p.Copy()
	if md != nil {
		p.Surface.Execute(surface.Delete, "")
	}
	return md
}

// Paste inserts the clipboard payloads at the selection. The markup
// payload is used only when the plain-text payload matches the last
// copy or cut; otherwise just the plain text is inserted.
func (p *Pipeline) Paste(md mimedata.Mimes) Result {
	if p.Surface == nil {
		return Nothing
	}
	if _, ok := p.Surface.Selection(); !ok {
		slog.Debug("paste: no selection to paste at")
		return Nothing
	}
	plain := md.Text(mimedata.TextPlain)
	markup := md.Text(mimedata.TextHTML)
	if markup != "" && p.hasSnapshot && plain == p.snapshot && p.Sanitizer != nil {
		p.Surface.InsertMarkup(p.Sanitizer.Sanitize(markup))
		return Markup
	}
	if markup != "" {
		slog.Info("paste: markup from outside the session pasted as plain text")
	}
	if plain == "" {
		return Nothing
	}
	p.Surface.InsertPlainText(plain)
	return PlainText
}

// Fragment returns the markup of the content of r, including the
// elements that partially contain it.
func Fragment(root *html.Node, r dom.Range) string {
	in := map[*html.Node]dom.Segment{}
	for _, sg := range r.Segments(root) {
		in[sg.Node] = sg
	}
	var clone func(n *html.Node) *html.Node
	clone = func(n *html.Node) *html.Node {
		if sg, ok := in[n]; ok {
			if dom.IsText(n) {
				return dom.NewText(n.Data[sg.Start:sg.End])
			}
			return shallowClone(n)
		}
		if !dom.IsElement(n) {
			return nil
		}
		var kids []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if k := clone(c); k != nil {
				kids = append(kids, k)
			}
		}
		if len(kids) == 0 {
			return nil
		}
		el := shallowClone(n)
		for _, k := range kids {
			el.AppendChild(k)
		}
		return el
	}
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if k := clone(c); k != nil {
			b.WriteString(dom.OuterHTML(k))
		}
	}
	return b.String()
}

func shallowClone(n *html.Node) *html.Node {
	return &html.Node{Type: n.Type, Data: n.Data, DataAtom: n.DataAtom,
		Namespace: n.Namespace, Attr: append([]html.Attribute(nil), n.Attr...)}
}
