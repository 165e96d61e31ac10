// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richedit

import (
	"image"
	"sync"
	"testing"
	"time"

	"cogentcore.org/richsync/base/mimedata"
	"cogentcore.org/richsync/chip"
	"cogentcore.org/richsync/config"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/events"
	"cogentcore.org/richsync/htmlsurface"
	"cogentcore.org/richsync/mode"
	"cogentcore.org/richsync/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// fakeScheduler records deferred calls for the test to fire.
type fakeScheduler struct {
	delays    []time.Duration
	fns       []func()
	cancelled []bool
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	i := len(f.fns)
	f.delays = append(f.delays, d)
	f.fns = append(f.fns, fn)
	f.cancelled = append(f.cancelled, false)
	return func() { f.cancelled[i] = true }
}

func (f *fakeScheduler) fire(i int) {
	if !f.cancelled[i] {
		f.fns[i]()
	}
}

func newEditor(t *testing.T, content string) (*Editor, *htmlsurface.Surface, *fakeScheduler, *[]string) {
	e := New(nil)
	fs := &fakeScheduler{}
	e.Scheduler = fs
	var changes []string
	e.OnChange(func(c string) { changes = append(changes, c) })
	e.SetContent(content)
	s, ok := e.Surface().(*htmlsurface.Surface)
	require.True(t, ok)
	return e, s, fs, &changes
}

func selectAllText(s *htmlsurface.Surface) {
	s.SelectNodeContents(s.Root().FirstChild)
}

func TestBlurReset(t *testing.T) {
	e, s, fs, _ := newEditor(t, "hello")
	selectAllText(s)
	e.HandleEvent(events.NewKey("Control+B"))
	assert.True(t, e.State().Bold)

	e.HandleEvent(events.New(events.Blur))
	require.Len(t, fs.delays, 1)
	assert.Equal(t, 200*time.Millisecond, fs.delays[0])
	assert.True(t, e.State().Bold)
	fs.fire(0)
	assert.False(t, e.State().Bold)
}

func TestFocusCancelsReset(t *testing.T) {
	e, s, fs, _ := newEditor(t, "hello")
	selectAllText(s)
	e.Toggle(0)
	e.HandleEvent(events.NewKey("Meta+I"))
	assert.True(t, e.State().Italic)

	e.HandleEvent(events.New(events.Blur))
	e.HandleEvent(events.New(events.Focus))
	assert.True(t, fs.cancelled[0])
	fs.fns[0]()
	assert.True(t, e.State().Italic)
}

func TestBlurWhileLinkOpen(t *testing.T) {
	e, s, fs, _ := newEditor(t, "docs")
	selectAllText(s)
	require.NoError(t, e.OpenLink())
	e.HandleEvent(events.New(events.Blur))
	assert.Empty(t, fs.delays)
	e.CancelLink()
}

func TestKeyChords(t *testing.T) {
	e, s, _, changes := newEditor(t, "hello")
	selectAllText(s)
	e.HandleEvent(events.NewKey("ctrl+b"))
	assert.Equal(t, []string{"<b>hello</b>"}, *changes)

	e.HandleEvent(events.NewKey("Control+Z"))
	assert.Equal(t, "hello", e.Content())
	e.HandleEvent(events.NewKey("Control+Shift+Z"))
	assert.Equal(t, "<b>hello</b>", e.Content())

	ev := events.NewKey("Control+Q")
	e.HandleEvent(ev)
	assert.False(t, ev.IsHandled())
}

func TestListenerOverride(t *testing.T) {
	e, s, _, changes := newEditor(t, "hello")
	selectAllText(s)
	e.On(events.KeyChord, func(ev *events.Event) { ev.SetHandled() })
	e.HandleEvent(events.NewKey("Control+B"))
	assert.Empty(t, *changes)
	assert.Equal(t, "hello", e.Content())
}

func TestConcurrentListeners(t *testing.T) {
	e := New(nil)
	e.SetContent("hello")
	var mu sync.Mutex
	n := 0
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			e.OnChange(func(string) {
				mu.Lock()
				n++
				mu.Unlock()
			})
		}()
		go func() {
			defer wg.Done()
			e.HandleEvent(events.New(events.Input))
		}()
	}
	wg.Wait()
	e.HandleEvent(events.New(events.Input))
	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, n, 8)
}

func TestCleanupIsMutation(t *testing.T) {
	e, s, _, changes := newEditor(t, "ab")
	root := s.Root()
	v := s.Version()
	h := dom.NewHandle(root, dom.Caret(dom.Point{Node: root.FirstChild, Offset: 2}), v)

	// the host edits the markup natively, then reports the input
	span := dom.NewElement("span", html.Attribute{Key: "style", Val: "color: red"})
	span.AppendChild(dom.NewText("c"))
	root.AppendChild(span)
	e.HandleEvent(events.New(events.Input))

	assert.Equal(t, "ab<span>c</span>", e.Content())
	assert.Equal(t, []string{"ab<span>c</span>"}, *changes)
	assert.Greater(t, s.Version(), v)
	_, ok := h.Peek(s.Version())
	assert.False(t, ok)

	require.True(t, s.Execute(surface.Undo, ""))
	assert.Equal(t, "ab", s.HTML())
}

func TestConfigKeymap(t *testing.T) {
	cfg := config.Defaults()
	cfg.Keymap = map[string]string{"alt+b": "Bold"}
	e := New(cfg)
	e.SetContent("hello")
	s := e.Surface().(*htmlsurface.Surface)
	selectAllText(s)
	e.HandleEvent(events.NewKey("Alt+B"))
	assert.Equal(t, "<b>hello</b>", e.Content())
}

func TestModeRoundTrip(t *testing.T) {
	cfg := config.Defaults()
	cfg.Mode = mode.PlainText.String()
	e := New(cfg)
	var modes []string
	e.On(events.ModeChange, func(ev *events.Event) { modes = append(modes, ev.Mode) })
	assert.Nil(t, e.Surface())

	text := "Hello <world> & co"
	e.SetContent(text)
	e.SetMode(mode.RichText)
	require.NotNil(t, e.Surface())
	assert.Equal(t, "Hello &lt;world&gt; &amp; co", e.Content())
	assert.Equal(t, mode.RichText, e.Mode.Mode)

	e.SetMode(mode.PlainText)
	assert.Nil(t, e.Surface())
	assert.Equal(t, text, e.Content())
	assert.Equal(t, []string{"RichText", "PlainText"}, modes)
	assert.Equal(t, "pre", e.Mode.Style.Props["white-space"])
}

func TestChips(t *testing.T) {
	e, s, _, changes := newEditor(t, "ab")
	s.SetSelection(dom.Caret(dom.Point{Node: s.Root().FirstChild, Offset: 2}))
	var picked []chip.Binding
	e.OnOpenPicker(func(b chip.Binding) {
		picked = append(picked, b)
		e.PickerDone(chip.Binding{Source: "ds", Lookup: "ds.user.email"}, true)
	})
	em := e.InsertChip(chip.Binding{Source: "ds", Lookup: "ds.name"})
	require.NotNil(t, em)
	assert.Equal(t, `ab<app-data-chip source="ds" lookup="ds.name"></app-data-chip>`, (*changes)[len(*changes)-1])

	click := events.NewClick(image.Pt(20, 10))
	e.HandleEvent(click)
	assert.True(t, click.IsHandled())
	assert.Equal(t, []chip.Binding{{Source: "ds", Lookup: "ds.name"}}, picked)
	assert.Equal(t, `ab<app-data-chip source="ds" lookup="ds.user.email"></app-data-chip>`, e.Content())
	assert.False(t, em.Highlighted())

	// the label is now "email": 5*8 + 2*8 + 16 = 72px wide, from x = 16
	e.HandleEvent(events.NewClick(image.Pt(80, 10)))
	assert.Equal(t, "ab", e.Content())
	assert.Equal(t, "ab", (*changes)[len(*changes)-1])

	miss := events.NewClick(image.Pt(500, 10))
	e.HandleEvent(miss)
	assert.False(t, miss.IsHandled())
}

func TestClipboard(t *testing.T) {
	e, s, _, changes := newEditor(t, "Hello")
	text := s.Root().FirstChild
	selectAllText(s)
	cp := events.New(events.Copy)
	e.HandleEvent(cp)
	assert.Equal(t, "Hello", cp.Mimes.Text(mimedata.TextPlain))

	s.SetSelection(dom.Caret(dom.Point{Node: text, Offset: 5}))
	e.HandleEvent(events.NewPaste(mimedata.NewHTML("Hello", "<b>Hello</b>")))
	assert.Equal(t, "Hello<b>Hello</b>", e.Content())

	e.HandleEvent(events.NewPaste(mimedata.NewHTML("World", "<b>World</b>")))
	assert.Equal(t, "Hello<b>Hello</b>World", e.Content())
	assert.Len(t, *changes, 2)
}

func TestLinkFlow(t *testing.T) {
	e, s, _, changes := newEditor(t, "see docs")
	s.SetSelection(dom.Range{Start: dom.Point{Node: s.Root().FirstChild, Offset: 4},
		End: dom.Point{Node: s.Root().FirstChild, Offset: 8}})
	e.HandleEvent(events.NewKey("Control+K"))
	d, ok := e.LinkDraft()
	require.True(t, ok)
	assert.Equal(t, "docs", d.Text)

	e.SetLinkDraft("docs", "example.com", false)
	e.ApplyLink()
	assert.Equal(t, `see <a href="https://example.com">docs</a>`, e.Content())
	assert.True(t, e.State().Hyperlink)
	assert.Len(t, *changes, 1)

	_, ok = e.LinkDraft()
	assert.False(t, ok)
}

func TestCleanupOnInput(t *testing.T) {
	e, _, _, changes := newEditor(t, `<p style="color: red; text-align: center;">x</p><span style="color: red;">y</span>`)
	e.HandleEvent(events.New(events.Input))
	require.Len(t, *changes, 1)
	assert.Equal(t, `<p style="text-align: center;">x</p><span>y</span>`, (*changes)[0])
}

func TestRepairAfterMutation(t *testing.T) {
	e, s, _, _ := newEditor(t, `<font color="red">hello</font>`)
	assert.Equal(t, "hello", e.Content())
	selectAllText(s)
	e.Toggle(0)
	assert.NotContains(t, e.Content(), "font")
}
