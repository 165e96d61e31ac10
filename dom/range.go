// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Point is a boundary point in a document: a container node and an
// offset into it. For text nodes Offset is a byte offset into Data;
// for other nodes it is a child index.
type Point struct {
	Node   *html.Node
	Offset int
}

// Before returns the point just before n in its parent.
func Before(n *html.Node) Point {
	return Point{n.Parent, ChildIndex(n)}
}

// After returns the point just after n in its parent.
func After(n *html.Node) Point {
	return Point{n.Parent, ChildIndex(n) + 1}
}

// Valid returns whether p is inside root with an in-range offset.
func (p Point) Valid(root *html.Node) bool {
	return p.Node != nil && Contains(root, p.Node) && p.Offset >= 0 && p.Offset <= Len(p.Node)
}

// path returns the path of p from root with the offset appended.
func (p Point) path(root *html.Node) ([]int, bool) {
	path, ok := Path(root, p.Node)
	if !ok {
		return nil, false
	}
	return append(path, p.Offset), true
}

// comparePaths orders boundary paths in document order,
// with a prefix ordered before its extensions.
func comparePaths(a, b []int) int {
	return slices.Compare(a, b)
}

// Compare returns -1, 0 or +1 when a is before, equal to or after b
// in the document order of root. Points outside root compare equal.
func Compare(root *html.Node, a, b Point) int {
	pa, oka := a.path(root)
	pb, okb := b.path(root)
	if !oka || !okb {
		return 0
	}
	return comparePaths(pa, pb)
}

// Range is a contiguous part of a document between two boundary points.
// A Range is a plain value: it is only meaningful until the document
// it points into is next mutated.
type Range struct {
	Start Point
	End   Point
}

// Caret returns a collapsed range at p.
func Caret(p Point) Range {
	return Range{p, p}
}

// NodeRange returns the range that selects n as a whole.
func NodeRange(n *html.Node) Range {
	return Range{Before(n), After(n)}
}

// ContentsRange returns the range that selects the contents of n.
func ContentsRange(n *html.Node) Range {
	return Range{Point{n, 0}, Point{n, Len(n)}}
}

// Between returns the range from just before first to just after last.
func Between(first, last *html.Node) Range {
	return Range{Before(first), After(last)}
}

// Collapsed returns whether the range is empty.
func (r Range) Collapsed() bool {
	return r.Start == r.End
}

// Valid returns whether both boundaries of r are valid in root
// and Start is not after End.
func (r Range) Valid(root *html.Node) bool {
	return r.Start.Valid(root) && r.End.Valid(root) && Compare(root, r.Start, r.End) <= 0
}

// StartNode returns the node where the content of r begins: the start
// container when it is a text node, otherwise the first leaf at or
// after the start point, falling back to the container itself.
func (r Range) StartNode() *html.Node {
	return leafAt(r.Start)
}

// EndNode is like [Range.StartNode] for the end boundary, looking at the
// last leaf before the end point.
func (r Range) EndNode() *html.Node {
	p := r.End
	if IsText(p.Node) || p.Offset == 0 {
		return p.Node
	}
	c := ChildAt(p.Node, p.Offset-1)
	if c == nil {
		return p.Node
	}
	for c.LastChild != nil {
		c = c.LastChild
	}
	return c
}

func leafAt(p Point) *html.Node {
	if IsText(p.Node) {
		return p.Node
	}
	c := ChildAt(p.Node, p.Offset)
	if c == nil {
		return p.Node
	}
	for c.FirstChild != nil {
		c = c.FirstChild
	}
	return c
}

// CommonAncestor returns the deepest node containing both boundaries.
func (r Range) CommonAncestor() *html.Node {
	for a := r.Start.Node; a != nil; a = a.Parent {
		if Contains(a, r.End.Node) {
			return a
		}
	}
	return nil
}

// normalizePoint converts a text boundary into a child-index boundary of
// the text's parent, splitting the text node when the offset is interior.
func normalizePoint(p Point) Point {
	if !IsText(p.Node) || p.Node.Parent == nil {
		return p
	}
	switch {
	case p.Offset <= 0:
		return Before(p.Node)
	case p.Offset >= len(p.Node.Data):
		return After(p.Node)
	}
	tail := SplitText(p.Node, p.Offset)
	return Before(tail)
}

// Normalize splits text nodes at the boundaries of r so that both
// boundaries are child indexes of element nodes, and returns the
// resulting range. It mutates the document.
func (r Range) Normalize() Range {
	end := normalizePoint(r.End)
	split := IsText(r.Start.Node) && r.Start.Offset > 0 && r.Start.Offset < len(r.Start.Node.Data)
	start := normalizePoint(r.Start)
	// splitting the start text inserts a sibling that shifts later indexes
	if split && end.Node == start.Node && end.Offset >= start.Offset {
		end.Offset++
	}
	return Range{start, end}
}

// Contained returns the maximal nodes that lie completely inside r,
// in document order. Nodes that are only partially inside are not
// returned, but their fully contained descendants are.
func (r Range) Contained(root *html.Node) []*html.Node {
	sp, ok1 := r.Start.path(root)
	ep, ok2 := r.End.path(root)
	if !ok1 || !ok2 {
		return nil
	}
	var out []*html.Node
	var walk func(parent *html.Node, ppath []int)
	walk = func(parent *html.Node, ppath []int) {
		i := 0
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			before := append(slices.Clone(ppath), i)
			after := append(slices.Clone(ppath), i+1)
			i++
			if comparePaths(after, sp) <= 0 || comparePaths(before, ep) >= 0 {
				continue
			}
			if comparePaths(before, sp) >= 0 && comparePaths(after, ep) <= 0 {
				out = append(out, c)
				continue
			}
			walk(c, before)
		}
	}
	walk(root, nil)
	return out
}

// Segment is a part of the content of a range: a text node with a
// byte span of its data, or a whole leaf element such as an embed.
type Segment struct {
	Node       *html.Node
	Start, End int
}

// Segments returns the text spans and leaf elements that lie inside r,
// in document order, without mutating the document.
func (r Range) Segments(root *html.Node) []Segment {
	var out []Segment
	Walk(root, func(n *html.Node) bool {
		switch {
		case IsText(n):
			s, e := 0, len(n.Data)
			if r.Start.Node == n {
				s = r.Start.Offset
			}
			if r.End.Node == n {
				e = r.End.Offset
			}
			if s < e && Compare(root, Point{n, s}, r.Start) >= 0 && Compare(root, Point{n, e}, r.End) <= 0 {
				out = append(out, Segment{n, s, e})
			}
		case n != root && IsElement(n) && n.FirstChild == nil:
			if Compare(root, Before(n), r.Start) >= 0 && Compare(root, After(n), r.End) <= 0 {
				out = append(out, Segment{Node: n})
			}
		}
		return true
	})
	return out
}

// Text returns the plain-text rendering of the content of r:
// the selected text, with a newline for each line break.
func (r Range) Text(root *html.Node) string {
	var b strings.Builder
	for _, sg := range r.Segments(root) {
		switch {
		case IsText(sg.Node):
			b.WriteString(sg.Node.Data[sg.Start:sg.End])
		case IsElement(sg.Node, "br"):
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Delete removes the content of r from the document and returns the
// collapsed range where it was.
func (r Range) Delete(root *html.Node) Range {
	if r.Collapsed() {
		return r
	}
	n := r.Normalize()
	for _, c := range n.Contained(root) {
		Remove(c)
	}
	return Caret(n.Start)
}

// InsertNodes inserts the detached nodes at the start of r, splitting a
// text container if needed, and returns the caret just after them.
func (r Range) InsertNodes(nodes ...*html.Node) Range {
	p := normalizePoint(r.Start)
	if len(nodes) == 0 {
		return Caret(p)
	}
	ref := ChildAt(p.Node, p.Offset)
	for _, n := range nodes {
		p.Node.InsertBefore(n, ref)
	}
	return Caret(After(nodes[len(nodes)-1]))
}
