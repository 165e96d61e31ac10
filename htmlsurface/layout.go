// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlsurface

import (
	"image"
	"unicode/utf8"

	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

// box is the laid out position of a text node or leaf element:
// its line index, and its x offset and width in pixels.
type box struct {
	line, x, width int
}

// layout lays out the content with a fixed character width,
// starting a new line at each block boundary and line break.
// Text does not wrap.
func (s *Surface) layout() map[*html.Node]box {
	boxes := map[*html.Node]box{}
	line, x := 0, 0
	newline := func() {
		if x > 0 {
			line++
			x = 0
		}
	}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case dom.IsText(c):
				w := utf8.RuneCountInString(c.Data) * s.CharWidth
				boxes[c] = box{line, x, w}
				x += w
			case dom.IsElement(c, "br"):
				boxes[c] = box{line, x, 0}
				line++
				x = 0
			case dom.IsBlock(c):
				newline()
				walk(c)
				newline()
			case dom.IsElement(c) && c.FirstChild == nil:
				w := 0
				if s.sizer != nil {
					w, _ = s.sizer(c)
				}
				boxes[c] = box{line, x, w}
				x += w
			default:
				walk(c)
			}
		}
	}
	walk(s.root)
	return boxes
}

func (s *Surface) rect(line, x, width int) image.Rectangle {
	r := image.Rect(x, line*s.LineHeight, x+width, (line+1)*s.LineHeight)
	return r.Add(s.Origin)
}

func (s *Surface) ClientRects(r dom.Range) []image.Rectangle {
	if !r.Valid(s.root) {
		return nil
	}
	boxes := s.layout()
	if r.Collapsed() {
		return []image.Rectangle{s.caretRect(boxes, r.Start)}
	}
	var rects []image.Rectangle
	for _, sg := range r.Segments(s.root) {
		b, ok := boxes[sg.Node]
		if !ok {
			continue
		}
		if !dom.IsText(sg.Node) {
			rects = append(rects, s.rect(b.line, b.x, b.width))
			continue
		}
		x := b.x + utf8.RuneCountInString(sg.Node.Data[:sg.Start])*s.CharWidth
		w := utf8.RuneCountInString(sg.Node.Data[sg.Start:sg.End]) * s.CharWidth
		rects = append(rects, s.rect(b.line, x, w))
	}
	return rects
}

// caretRect returns the zero-width rectangle of the caret at p.
func (s *Surface) caretRect(boxes map[*html.Node]box, p dom.Point) image.Rectangle {
	if dom.IsText(p.Node) {
		b := boxes[p.Node]
		x := b.x + utf8.RuneCountInString(p.Node.Data[:p.Offset])*s.CharWidth
		return s.rect(b.line, x, 0)
	}
	if c := dom.ChildAt(p.Node, p.Offset); c != nil {
		r := s.bounds(boxes, c)
		return image.Rect(r.Min.X, r.Min.Y, r.Min.X, r.Max.Y)
	}
	if c := dom.ChildAt(p.Node, p.Offset-1); c != nil {
		r := s.bounds(boxes, c)
		return image.Rect(r.Max.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	r := s.bounds(boxes, p.Node)
	return image.Rect(r.Min.X, r.Min.Y, r.Min.X, r.Min.Y+s.LineHeight)
}

// bounds returns the union of the laid out boxes within n.
func (s *Surface) bounds(boxes map[*html.Node]box, n *html.Node) image.Rectangle {
	var r image.Rectangle
	found := false
	dom.Walk(n, func(c *html.Node) bool {
		b, ok := boxes[c]
		if !ok {
			return true
		}
		br := s.rect(b.line, b.x, b.width)
		if !found {
			r, found = br, true
		} else {
			r = r.Union(br)
		}
		return true
	})
	if !found {
		return image.Rectangle{Min: s.Origin, Max: s.Origin}
	}
	return r
}

func (s *Surface) BoundingRect(n *html.Node) image.Rectangle {
	if n == nil || !dom.Contains(s.root, n) {
		return image.Rectangle{}
	}
	return s.bounds(s.layout(), n)
}
