// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paste

import (
	"testing"

	"cogentcore.org/richsync/base/mimedata"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/htmlsurface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func selectText(s *htmlsurface.Surface, n *html.Node, start, end int) {
	s.SetSelection(dom.Range{Start: dom.Point{Node: n, Offset: start}, End: dom.Point{Node: n, Offset: end}})
}

func newPipeline(markup string) (*Pipeline, *htmlsurface.Surface) {
	s := htmlsurface.New(markup)
	return &Pipeline{Surface: s, Sanitizer: NewSanitizer("app-data-chip")}, s
}

func TestPasteTrust(t *testing.T) {
	p, s := newPipeline("Hello")
	text := s.Root().FirstChild
	selectText(s, text, 0, 5)
	p.Copy()
	snap, ok := p.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "Hello", snap)

	selectText(s, text, 5, 5)
	assert.Equal(t, Markup, p.Paste(mimedata.NewHTML("Hello", "<b>Hello</b>")))
	assert.Equal(t, "Hello<b>Hello</b>", s.HTML())

	s.SetHTML("")
	s.CollapseToStart()
	assert.Equal(t, PlainText, p.Paste(mimedata.NewHTML("World", "<b>Hello</b>")))
	assert.Equal(t, "World", s.HTML())
}

func TestPasteWithoutCopy(t *testing.T) {
	p, s := newPipeline("")
	s.CollapseToStart()
	assert.Equal(t, PlainText, p.Paste(mimedata.NewHTML("Hello", "<b>Hello</b>")))
	assert.Equal(t, "Hello", s.HTML())

	assert.Equal(t, Nothing, p.Paste(mimedata.Mimes{}))
	s.ClearSelection()
	assert.Equal(t, Nothing, p.Paste(mimedata.NewText("x")))
}

func TestPasteSanitizes(t *testing.T) {
	p, s := newPipeline("Hello")
	selectText(s, s.Root().FirstChild, 0, 5)
	p.Copy()
	assert.Equal(t, Markup, p.Paste(mimedata.NewHTML("Hello", `<b onclick="steal()">Hello</b><script>alert(1)</script>`)))
	assert.Equal(t, "<b>Hello</b>", s.HTML())
}

func TestSanitizer(t *testing.T) {
	out := NewSanitizer("app-data-chip").Sanitize(
		`<app-data-chip source="a" lookup="a.b" onclick="x"></app-data-chip><p style="color: red; text-align: center">x</p>`)
	assert.Contains(t, out, `<app-data-chip source="a" lookup="a.b"></app-data-chip>`)
	assert.Contains(t, out, "text-align: center")
	assert.NotContains(t, out, "color")
	assert.NotContains(t, out, "onclick")
}

func TestCopyCut(t *testing.T) {
	p, s := newPipeline("<b>Hello</b> world")
	selectText(s, s.Root().FirstChild.FirstChild, 1, 4)
	md := p.Copy()
	assert.Equal(t, "ell", md.Text(mimedata.TextPlain))
	assert.Equal(t, "<b>ell</b>", md.Text(mimedata.TextHTML))

	md = p.Cut()
	assert.Equal(t, "ell", md.Text(mimedata.TextPlain))
	assert.Equal(t, "<b>Ho</b> world", s.HTML())

	s.ClearSelection()
	assert.Nil(t, p.Copy())
}

func TestCleanStyle(t *testing.T) {
	assert.Equal(t, "text-align: center;", CleanStyle("color: red; text-align: center;"))
	assert.Equal(t, "", CleanStyle("color: red;"))
	assert.Equal(t, "text-align: right;", CleanStyle("TEXT-ALIGN: right"))
}

func TestCleanup(t *testing.T) {
	root := dom.NewElement("div")
	require.NoError(t, dom.SetInnerHTML(root,
		`<p style="color: red; text-align: center;">a</p><span style="color: red;">b</span><br/><br/>`))
	assert.True(t, Cleanup(root))
	assert.Equal(t, `<p style="text-align: center;">a</p><span>b</span><br/>`, dom.InnerHTML(root))

	require.NoError(t, dom.SetInnerHTML(root, `<p style="text-align: center;">a</p>`))
	assert.False(t, Cleanup(root))
}

func TestFontRule(t *testing.T) {
	root := dom.NewElement("div")
	require.NoError(t, dom.SetInnerHTML(root, `a<font color="red">b</font>c<font>d</font>`))
	w := NewWatcher()
	assert.Equal(t, 1, w.Batch(root))
	assert.Equal(t, "abc<font>d</font>", dom.InnerHTML(root))
	assert.Equal(t, 1, w.Batch(root))
	assert.Equal(t, "abcd", dom.InnerHTML(root))
	assert.Equal(t, 0, w.Batch(root))
	assert.True(t, w.Rules[0].Heuristic)
}

func TestEmptyInlineRule(t *testing.T) {
	root := dom.NewElement("div")
	require.NoError(t, dom.SetInnerHTML(root, `a<b></b>c<span></span><i>x</i>`))
	w := NewWatcher()
	assert.Equal(t, 1, w.Batch(root))
	assert.Equal(t, "ac<span></span><i>x</i>", dom.InnerHTML(root))
}

func TestValidateRules(t *testing.T) {
	w := NewWatcher()
	assert.NoError(t, w.Validate())

	w.Rules = append(w.Rules, Rule{Name: "broken", Selector: "b[", Fix: unwrap})
	err := w.Validate()
	assert.ErrorContains(t, err, "rule broken")

	root := dom.NewElement("div")
	require.NoError(t, dom.SetInnerHTML(root, `a<font>b</font>`))
	assert.Equal(t, 1, w.Batch(root))
	assert.Equal(t, "ab", dom.InnerHTML(root))
}
