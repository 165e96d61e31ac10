// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlsurface

import (
	"image"
	"testing"

	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func selectText(s *Surface, n *html.Node, start, end int) {
	s.SetSelection(dom.Range{Start: dom.Point{Node: n, Offset: start}, End: dom.Point{Node: n, Offset: end}})
}

func TestBoldToggle(t *testing.T) {
	s := New("hello world")
	selectText(s, s.Root().FirstChild, 0, 5)
	require.True(t, s.Execute(surface.Bold, ""))
	assert.Equal(t, "<b>hello</b> world", s.HTML())
	assert.True(t, s.QueryState(surface.Bold))
	assert.False(t, s.QueryState(surface.Italic))

	require.True(t, s.Execute(surface.Bold, ""))
	assert.Equal(t, "hello world", s.HTML())
	assert.False(t, s.QueryState(surface.Bold))
}

func TestBoldMergesNested(t *testing.T) {
	s := New("a<b>b</b>c")
	s.SetSelection(dom.Range{Start: dom.Point{Node: s.Root().FirstChild, Offset: 0}, End: dom.Point{Node: s.Root().LastChild, Offset: 1}})
	// the caret starts outside any bold element, so this applies bold
	require.True(t, s.Execute(surface.Bold, ""))
	assert.Equal(t, "<b>abc</b>", s.HTML())
}

func TestCollapsedInlineIsNoop(t *testing.T) {
	s := New("hello")
	selectText(s, s.Root().FirstChild, 2, 2)
	assert.False(t, s.Execute(surface.Italic, ""))
	assert.Equal(t, uint64(0), s.Version())
}

func TestAlignmentExclusive(t *testing.T) {
	s := New("line")
	selectText(s, s.Root().FirstChild, 0, 0)
	assert.True(t, s.QueryState(surface.JustifyLeft))

	require.True(t, s.Execute(surface.JustifyCenter, ""))
	assert.Equal(t, `<div style="text-align: center;">line</div>`, s.HTML())
	assert.True(t, s.QueryState(surface.JustifyCenter))
	assert.False(t, s.QueryState(surface.JustifyLeft))

	require.True(t, s.Execute(surface.JustifyRight, ""))
	assert.Equal(t, `<div style="text-align: right;">line</div>`, s.HTML())
	for _, a := range surface.Alignments {
		assert.Equal(t, a == surface.JustifyRight, s.QueryState(a), a.String())
	}
}

func TestListToggle(t *testing.T) {
	s := New("item")
	selectText(s, s.Root().FirstChild, 0, 0)
	require.True(t, s.Execute(surface.InsertUnorderedList, ""))
	assert.Equal(t, "<ul><li>item</li></ul>", s.HTML())
	assert.True(t, s.QueryState(surface.InsertUnorderedList))

	require.True(t, s.Execute(surface.InsertUnorderedList, ""))
	assert.Equal(t, "item", s.HTML())
	assert.False(t, s.QueryState(surface.InsertUnorderedList))
}

func TestIndentOutdent(t *testing.T) {
	s := New("x")
	selectText(s, s.Root().FirstChild, 0, 0)
	require.True(t, s.Execute(surface.Indent, ""))
	assert.Equal(t, `<blockquote style="margin: 0 0 0 40px;">x</blockquote>`, s.HTML())
	require.True(t, s.Execute(surface.Outdent, ""))
	assert.Equal(t, "x", s.HTML())
	assert.False(t, s.Execute(surface.Outdent, ""))
}

func TestLinkUnlink(t *testing.T) {
	s := New("hello world")
	selectText(s, s.Root().FirstChild, 0, 5)
	s.CreateLink("https://x.test")
	assert.Equal(t, `<a href="https://x.test">hello</a> world`, s.HTML())

	s.Unlink()
	assert.Equal(t, "hello world", s.HTML())
}

func TestCollapsedLink(t *testing.T) {
	s := New("")
	s.CollapseToStart()
	s.CreateLink("https://x.test")
	assert.Equal(t, `<a href="https://x.test">https://x.test</a>`, s.HTML())
}

func TestInsert(t *testing.T) {
	s := New("ab")
	selectText(s, s.Root().FirstChild, 1, 1)
	s.InsertMarkup("<b>X</b>")
	assert.Equal(t, "a<b>X</b>b", s.HTML())

	s = New("ab")
	selectText(s, s.Root().FirstChild, 1, 1)
	s.InsertPlainText("X")
	assert.Equal(t, "aXb", s.HTML())
	r, ok := s.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, r.Start.Offset)

	s = New("ab")
	s.ClearSelection()
	s.InsertPlainText("X")
	assert.Equal(t, "ab", s.HTML())
}

func TestDelete(t *testing.T) {
	s := New("ab")
	selectText(s, s.Root().FirstChild, 2, 2)
	require.True(t, s.Execute(surface.Delete, ""))
	assert.Equal(t, "a", s.HTML())

	s = New("abc")
	selectText(s, s.Root().FirstChild, 0, 2)
	require.True(t, s.Execute(surface.Delete, ""))
	assert.Equal(t, "c", s.HTML())

	s = New(`a<app-data-chip source="s" lookup="l"></app-data-chip>`)
	s.SelectNode(s.Root().LastChild)
	require.True(t, s.Execute(surface.Delete, ""))
	assert.Equal(t, "a", s.HTML())
}

func TestUndoRedo(t *testing.T) {
	s := New("hello world")
	selectText(s, s.Root().FirstChild, 0, 5)
	s.Execute(surface.Bold, "")
	s.Execute(surface.Bold, "")
	assert.Equal(t, "hello world", s.HTML())

	require.True(t, s.Execute(surface.Undo, ""))
	assert.Equal(t, "<b>hello</b> world", s.HTML())
	require.True(t, s.Execute(surface.Undo, ""))
	assert.Equal(t, "hello world", s.HTML())
	assert.False(t, s.Execute(surface.Undo, ""))

	require.True(t, s.Execute(surface.Redo, ""))
	assert.Equal(t, "<b>hello</b> world", s.HTML())
}

func TestVersionAndObservers(t *testing.T) {
	s := New("hello")
	calls := 0
	s.Observe(func() { calls++ })
	selectText(s, s.Root().FirstChild, 0, 5)
	s.Execute(surface.Underline, "")
	assert.Equal(t, uint64(1), s.Version())
	assert.Equal(t, 1, calls)

	s.SetSelection(dom.Caret(dom.Point{Node: dom.NewText("elsewhere")}))
	_, ok := s.Selection()
	assert.False(t, ok)
	assert.False(t, s.Execute(surface.Bold, ""))
	assert.Equal(t, 1, calls)
}

func TestMutate(t *testing.T) {
	s := New("hello")
	calls := 0
	s.Observe(func() { calls++ })
	assert.False(t, s.Mutate("noop", func() bool { return false }))
	assert.Equal(t, uint64(0), s.Version())
	assert.Equal(t, 0, calls)

	assert.True(t, s.Mutate("append", func() bool {
		s.Root().AppendChild(dom.NewText("!"))
		return true
	}))
	assert.Equal(t, uint64(1), s.Version())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "hello!", s.HTML())

	require.True(t, s.Execute(surface.Undo, ""))
	assert.Equal(t, "hello", s.HTML())
}

func TestClientRects(t *testing.T) {
	s := New("hello")
	text := s.Root().FirstChild
	rects := s.ClientRects(dom.Range{Start: dom.Point{Node: text, Offset: 1}, End: dom.Point{Node: text, Offset: 3}})
	assert.Equal(t, []image.Rectangle{image.Rect(8, 0, 24, 20)}, rects)

	s.Origin = image.Pt(100, 50)
	rects = s.ClientRects(dom.Caret(dom.Point{Node: text, Offset: 2}))
	assert.Equal(t, []image.Rectangle{image.Rect(116, 50, 116, 70)}, rects)
}

func TestBoundingRect(t *testing.T) {
	s := New(`a<app-data-chip source="s" lookup="l"></app-data-chip>b`)
	s.SetSizer(func(n *html.Node) (int, bool) {
		return 40, dom.IsElement(n, "app-data-chip")
	})
	chip := s.Root().FirstChild.NextSibling
	assert.Equal(t, image.Rect(8, 0, 48, 20), s.BoundingRect(chip))
	assert.Equal(t, image.Rect(48, 0, 56, 20), s.BoundingRect(s.Root().LastChild))

	s = New(`<div>ab</div>cd`)
	assert.Equal(t, image.Rect(0, 20, 16, 40), s.BoundingRect(s.Root().LastChild))
}
