// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlsurface

import (
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"golang.org/x/net/html"
)

// inlineTags are the elements that carry each inline format;
// the first one is used when applying it.
var inlineTags = map[surface.Command][]string{
	surface.Bold:      {"b", "strong"},
	surface.Italic:    {"i", "em"},
	surface.Underline: {"u"},
}

func (s *Surface) Execute(cmd surface.Command, arg string) bool {
	switch {
	case inlineTags[cmd] != nil:
		return s.toggleInline(cmd)
	case cmd.IsAlignment():
		return s.justify(cmd)
	}
	switch cmd {
	case surface.InsertUnorderedList:
		return s.toggleList()
	case surface.Indent:
		return s.indent()
	case surface.Outdent:
		return s.outdent()
	case surface.InsertHTML:
		return s.insertMarkup(arg)
	case surface.InsertText:
		return s.insertText(arg)
	case surface.CreateLink:
		return s.createLink(arg)
	case surface.Unlink:
		return s.unlink()
	case surface.Delete:
		return s.delete()
	case surface.Undo:
		return s.restore(s.history.Undo)
	case surface.Redo:
		return s.restore(s.history.Redo)
	}
	slog.Debug("htmlsurface: unsupported command", "command", cmd)
	return false
}

func (s *Surface) QueryState(cmd surface.Command) bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	n := r.StartNode()
	switch {
	case inlineTags[cmd] != nil:
		return dom.Closest(s.root, n, dom.Tag(inlineTags[cmd]...)) != nil
	case cmd == surface.InsertUnorderedList:
		return dom.Closest(s.root, n, dom.Tag("ul")) != nil
	case cmd.IsAlignment():
		return s.alignmentAt(n) == cmd
	}
	return false
}

func (s *Surface) InsertMarkup(markup string) {
	s.insertMarkup(markup)
}

func (s *Surface) InsertPlainText(text string) {
	s.insertText(text)
}

func (s *Surface) CreateLink(url string) {
	s.createLink(url)
}

func (s *Surface) Unlink() {
	s.unlink()
}

// alignmentAt returns the alignment in effect at n, inherited
// from the nearest element with a text-align declaration.
func (s *Surface) alignmentAt(n *html.Node) surface.Command {
	for e := dom.ElementOf(n); e != nil; e = e.Parent {
		if v := dom.StyleValue(e, "text-align"); v != "" {
			return surface.AlignmentFor(v)
		}
		if e == s.root {
			break
		}
	}
	return surface.JustifyLeft
}

func (s *Surface) toggleInline(cmd surface.Command) bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	tags := inlineTags[cmd]
	if el := dom.Closest(s.root, r.StartNode(), dom.Tag(tags...)); el != nil {
		return s.mutate("remove "+cmd.String(), func() bool {
			s.unwrapSelect(el)
			return true
		})
	}
	if r.Collapsed() {
		return false
	}
	return s.mutate(cmd.String(), func() bool {
		return s.wrapSelection(r, tags)
	})
}

// unwrapSelect unwraps el and selects what were its children.
func (s *Surface) unwrapSelect(el *html.Node) {
	at := dom.Before(el)
	first, last := dom.Unwrap(el)
	if first == nil {
		s.SetSelection(dom.Caret(at))
		return
	}
	s.SetSelection(dom.Between(first, last))
}

// wrapSelection wraps the inline content of r in new elements with
// the first of the given tags, one per run of sibling nodes. Elements
// with any of the tags inside r are unwrapped so they do not nest.
// The wrapped content becomes the selection.
func (s *Surface) wrapSelection(r dom.Range, tags []string, attrs ...html.Attribute) bool {
	n := r.Normalize()
	nodes, same := flatten(n.Contained(s.root), tags)
	if len(nodes) == 0 {
		s.SetSelection(n)
		return false
	}
	for _, el := range same {
		dom.Unwrap(el)
	}
	var wrappers []*html.Node
	for _, run := range siblingRuns(nodes) {
		el := dom.NewElement(tags[0], append([]html.Attribute(nil), attrs...)...)
		dom.Wrap(el, run...)
		wrappers = append(wrappers, el)
	}
	last := wrappers[len(wrappers)-1]
	s.SetSelection(dom.Range{Start: dom.Point{Node: wrappers[0]}, End: dom.Point{Node: last, Offset: dom.Len(last)}})
	return true
}

// flatten returns the inline nodes to wrap for the given contained
// nodes, descending into blocks and into elements with one of the
// given tags, which are returned separately for unwrapping.
func flatten(nodes []*html.Node, tags []string) (inline, same []*html.Node) {
	for _, n := range nodes {
		switch {
		case dom.IsBlock(n):
			in, sm := flatten(dom.Children(n), tags)
			inline = append(inline, in...)
			same = append(same, sm...)
		case dom.IsElement(n, tags...):
			in, sm := flatten(dom.Children(n), tags)
			inline = append(inline, in...)
			same = append(same, sm...)
			same = append(same, n)
		default:
			inline = append(inline, n)
		}
	}
	return
}

// siblingRuns splits nodes into runs of consecutive siblings.
func siblingRuns(nodes []*html.Node) [][]*html.Node {
	var runs [][]*html.Node
	for i, n := range nodes {
		if i > 0 && n.PrevSibling == nodes[i-1] {
			runs[len(runs)-1] = append(runs[len(runs)-1], n)
			continue
		}
		runs = append(runs, []*html.Node{n})
	}
	return runs
}

// lineNodes returns the consecutive sibling nodes making up the lines
// touched by r: the enclosing block and any following sibling blocks
// within r, or, for content directly in the root, the inline nodes
// between line breaks.
func (s *Surface) lineNodes(r dom.Range) []*html.Node {
	if blk := dom.Closest(s.root, r.StartNode(), dom.IsBlock); blk != nil {
		nodes := []*html.Node{blk}
		for n := blk.NextSibling; n != nil && dom.Compare(s.root, dom.Before(n), r.End) < 0; n = n.NextSibling {
			nodes = append(nodes, n)
		}
		return nodes
	}
	var nodes []*html.Node
	for c := s.root.FirstChild; c != nil; c = c.NextSibling {
		endCmp := dom.Compare(s.root, dom.Before(c), r.End)
		if dom.Compare(s.root, dom.After(c), r.Start) > 0 && (endCmp < 0 || (r.Collapsed() && endCmp == 0)) {
			nodes = append(nodes, c)
		}
	}
	if len(nodes) == 0 {
		if s.root.LastChild == nil {
			return nil
		}
		nodes = append(nodes, s.root.LastChild)
	}
	lineBreak := func(n *html.Node) bool {
		return dom.IsBlock(n) || dom.IsElement(n, "br")
	}
	first, last := nodes[0], nodes[len(nodes)-1]
	for p := first.PrevSibling; p != nil && !lineBreak(p) && !lineBreak(first); p = p.PrevSibling {
		first = p
	}
	for n := last.NextSibling; n != nil && !lineBreak(n) && !lineBreak(last); n = n.NextSibling {
		last = n
	}
	nodes = nodes[:0]
	for n := first; ; n = n.NextSibling {
		nodes = append(nodes, n)
		if n == last {
			break
		}
	}
	return nodes
}

// wrapLines wraps each run of non-block line nodes in a new element
// made by mk, and returns the blocks covering the lines.
func wrapLines(nodes []*html.Node, mk func() *html.Node) []*html.Node {
	var blocks, run []*html.Node
	flush := func() {
		if len(run) == 0 {
			return
		}
		el := mk()
		dom.Wrap(el, run...)
		blocks = append(blocks, el)
		run = nil
	}
	for _, n := range nodes {
		if dom.IsBlock(n) {
			flush()
			blocks = append(blocks, n)
			continue
		}
		run = append(run, n)
	}
	flush()
	return blocks
}

func (s *Surface) justify(cmd surface.Command) bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	return s.mutate(cmd.String(), func() bool {
		nodes := s.lineNodes(r)
		if len(nodes) == 0 {
			return false
		}
		wrapped := false
		blocks := wrapLines(nodes, func() *html.Node {
			wrapped = true
			return dom.NewElement("div")
		})
		for _, b := range blocks {
			dom.SetStyleValue(b, "text-align", cmd.TextAlign())
		}
		if wrapped {
			s.selectBlocks(blocks)
		}
		return true
	})
}

func (s *Surface) selectBlocks(blocks []*html.Node) {
	last := blocks[len(blocks)-1]
	s.SetSelection(dom.Range{Start: dom.Point{Node: blocks[0]}, End: dom.Point{Node: last, Offset: dom.Len(last)}})
}

func (s *Surface) toggleList() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	if ul := dom.Closest(s.root, r.StartNode(), dom.Tag("ul")); ul != nil {
		return s.mutate("remove "+surface.InsertUnorderedList.String(), func() bool {
			for _, li := range dom.Children(ul) {
				if !dom.IsElement(li, "li") {
					continue
				}
				if li.NextSibling != nil {
					li.AppendChild(dom.NewElement("br"))
				}
				dom.Unwrap(li)
			}
			s.unwrapSelect(ul)
			return true
		})
	}
	return s.mutate(surface.InsertUnorderedList.String(), func() bool {
		nodes := s.lineNodes(r)
		if len(nodes) == 0 {
			return false
		}
		li := dom.NewElement("li")
		dom.Wrap(li, nodes...)
		dom.Wrap(dom.NewElement("ul"), li)
		s.SetSelection(dom.ContentsRange(li))
		return true
	})
}

func (s *Surface) indent() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	return s.mutate(surface.Indent.String(), func() bool {
		nodes := s.lineNodes(r)
		if len(nodes) == 0 {
			return false
		}
		bq := dom.NewElement("blockquote", html.Attribute{Key: "style", Val: "margin: 0 0 0 40px;"})
		dom.Wrap(bq, nodes...)
		s.SetSelection(dom.ContentsRange(bq))
		return true
	})
}

func (s *Surface) outdent() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	bq := dom.Closest(s.root, r.StartNode(), dom.Tag("blockquote"))
	if bq == nil {
		return false
	}
	return s.mutate(surface.Outdent.String(), func() bool {
		s.unwrapSelect(bq)
		return true
	})
}

func (s *Surface) insertMarkup(markup string) bool {
	r, ok := s.Selection()
	if !ok {
		slog.Debug("htmlsurface: insertHTML without a selection")
		return false
	}
	nodes, err := dom.ParseFragment(markup, s.root)
	if errors.Log(err) != nil {
		return false
	}
	return s.mutate(surface.InsertHTML.String(), func() bool {
		c := r.Delete(s.root)
		s.SetSelection(c.InsertNodes(nodes...))
		return true
	})
}

func (s *Surface) insertText(text string) bool {
	r, ok := s.Selection()
	if !ok {
		slog.Debug("htmlsurface: insertText without a selection")
		return false
	}
	return s.mutate(surface.InsertText.String(), func() bool {
		c := r.Delete(s.root)
		if p := c.Start; dom.IsText(p.Node) {
			p.Node.Data = p.Node.Data[:p.Offset] + text + p.Node.Data[p.Offset:]
			s.SetSelection(dom.Caret(dom.Point{Node: p.Node, Offset: p.Offset + len(text)}))
			return true
		}
		if text == "" {
			s.SetSelection(c)
			return !r.Collapsed()
		}
		s.SetSelection(c.InsertNodes(dom.NewText(text)))
		return true
	})
}

func (s *Surface) createLink(url string) bool {
	r, ok := s.Selection()
	if !ok || url == "" {
		return false
	}
	href := html.Attribute{Key: "href", Val: url}
	if r.Collapsed() {
		return s.mutate(surface.CreateLink.String(), func() bool {
			a := dom.NewElement("a", href)
			a.AppendChild(dom.NewText(url))
			r.InsertNodes(a)
			s.SetSelection(dom.ContentsRange(a))
			return true
		})
	}
	return s.mutate(surface.CreateLink.String(), func() bool {
		return s.wrapSelection(r, []string{"a"}, href)
	})
}

// linksIn returns the anchors intersecting r, in document order.
func (s *Surface) linksIn(r dom.Range) []*html.Node {
	var links []*html.Node
	add := func(a *html.Node) {
		for _, l := range links {
			if l == a {
				return
			}
		}
		links = append(links, a)
	}
	isLink := dom.Tag("a")
	if a := dom.Closest(s.root, r.StartNode(), isLink); a != nil {
		add(a)
	}
	for _, c := range r.Contained(s.root) {
		dom.Walk(c, func(n *html.Node) bool {
			if isLink(n) {
				add(n)
			}
			return true
		})
	}
	if a := dom.Closest(s.root, r.EndNode(), isLink); a != nil {
		add(a)
	}
	return links
}

func (s *Surface) unlink() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	links := s.linksIn(r)
	if len(links) == 0 {
		return false
	}
	return s.mutate(surface.Unlink.String(), func() bool {
		var first, last *html.Node
		for _, a := range links {
			f, l := dom.Unwrap(a)
			if first == nil {
				first = f
			}
			if l != nil {
				last = l
			}
		}
		if first != nil && last != nil {
			s.SetSelection(dom.Between(first, last))
		}
		return true
	})
}

func (s *Surface) delete() bool {
	r, ok := s.Selection()
	if !ok {
		return false
	}
	if !r.Collapsed() {
		return s.mutate(surface.Delete.String(), func() bool {
			s.SetSelection(r.Delete(s.root))
			return true
		})
	}
	p := r.Start
	if dom.IsText(p.Node) && p.Offset > 0 {
		return s.mutate(surface.Delete.String(), func() bool {
			_, size := utf8.DecodeLastRuneInString(p.Node.Data[:p.Offset])
			p.Node.Data = p.Node.Data[:p.Offset-size] + p.Node.Data[p.Offset:]
			s.SetSelection(dom.Caret(dom.Point{Node: p.Node, Offset: p.Offset - size}))
			return true
		})
	}
	var prev *html.Node
	if dom.IsText(p.Node) {
		prev = p.Node.PrevSibling
	} else {
		prev = dom.ChildAt(p.Node, p.Offset-1)
	}
	if prev == nil {
		return false
	}
	return s.mutate(surface.Delete.String(), func() bool {
		if dom.IsText(prev) && prev.Data != "" {
			_, size := utf8.DecodeLastRuneInString(prev.Data)
			prev.Data = prev.Data[:len(prev.Data)-size]
			s.SetSelection(dom.Caret(dom.Point{Node: prev, Offset: len(prev.Data)}))
			return true
		}
		at := dom.Before(prev)
		dom.Remove(prev)
		s.SetSelection(dom.Caret(at))
		return true
	})
}
