// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"log/slog"
	"slices"

	"golang.org/x/net/html"
)

// Anchor is a stable boundary point: the child path of its
// container from the document root plus an offset.
type Anchor struct {
	Path   []int
	Offset int
}

// Bookmark is a stable form of a [Range] that does not hold node
// pointers, so it can be resolved again after the document changes.
// The resolved range is only as good as the structure it points into.
type Bookmark struct {
	Start Anchor
	End   Anchor
}

// NewBookmark returns the bookmark of r in root.
func NewBookmark(root *html.Node, r Range) (Bookmark, bool) {
	sp, ok := Path(root, r.Start.Node)
	if !ok {
		return Bookmark{}, false
	}
	ep, ok := Path(root, r.End.Node)
	if !ok {
		return Bookmark{}, false
	}
	return Bookmark{Anchor{sp, r.Start.Offset}, Anchor{ep, r.End.Offset}}, true
}

// Resolve returns the range of the bookmark in root, if it still
// denotes a valid range.
func (b Bookmark) Resolve(root *html.Node) (Range, bool) {
	sn := NodeAt(root, b.Start.Path)
	en := NodeAt(root, b.End.Path)
	if sn == nil || en == nil {
		return Range{}, false
	}
	r := Range{Point{sn, b.Start.Offset}, Point{en, b.End.Offset}}
	if !r.Valid(root) {
		return Range{}, false
	}
	return r, true
}

// Equal returns whether the bookmarks denote the same positions.
func (b Bookmark) Equal(o Bookmark) bool {
	return slices.Equal(b.Start.Path, o.Start.Path) && b.Start.Offset == o.Start.Offset &&
		slices.Equal(b.End.Path, o.End.Path) && b.End.Offset == o.End.Offset
}

// Handle is a single-use range capability. It holds a range taken at a
// given document version; [Handle.Take] gives it out once. When the
// document has been mutated since, the range is re-derived from its
// [Bookmark] instead of trusting stale node pointers.
type Handle struct {
	rng      Range
	bookmark Bookmark
	anchored bool
	version  uint64
	used     bool
}

// NewHandle returns a handle for r, taken at the given document version.
func NewHandle(root *html.Node, r Range, version uint64) *Handle {
	bm, ok := NewBookmark(root, r)
	return &Handle{rng: r, bookmark: bm, anchored: ok, version: version}
}

// Version returns the document version the handle was taken at.
func (h *Handle) Version() uint64 {
	return h.version
}

// Used returns whether the handle has been taken.
func (h *Handle) Used() bool {
	return h.used
}

// Peek returns the held range without consuming the handle, as long
// as the document is still at the handle's version.
func (h *Handle) Peek(version uint64) (Range, bool) {
	if h.used || version != h.version {
		return Range{}, false
	}
	return h.rng, true
}

// Take consumes the handle and returns its range for the current
// document version. It returns false if the handle was already used
// or the range cannot be re-derived.
func (h *Handle) Take(root *html.Node, version uint64) (Range, bool) {
	if h.used {
		return Range{}, false
	}
	h.used = true
	if version == h.version && h.rng.Valid(root) {
		return h.rng, true
	}
	r, ok := h.bookmark.Resolve(root)
	if !h.anchored || !ok {
		slog.Debug("dom: stale range handle could not be re-derived", "taken", h.version, "now", version)
		return Range{}, false
	}
	slog.Debug("dom: range handle re-derived after mutation", "taken", h.version, "now", version)
	return r, true
}
