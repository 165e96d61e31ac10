// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package richedit provides [Editor], which keeps the formatting
// state, hyperlink overlay, data chips, mode and clipboard handling of
// one editor in sync with its editing surface, and emits the content
// value after every change.
package richedit

import (
	"image"
	"log/slog"
	"sync"
	"time"

	"cogentcore.org/richsync/base/errors"
	"cogentcore.org/richsync/chip"
	"cogentcore.org/richsync/config"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/events"
	"cogentcore.org/richsync/format"
	"cogentcore.org/richsync/htmlsurface"
	"cogentcore.org/richsync/hyperlink"
	"cogentcore.org/richsync/keyfun"
	"cogentcore.org/richsync/mode"
	"cogentcore.org/richsync/paste"
	"cogentcore.org/richsync/surface"
)

// Scheduler runs functions after a delay.
type Scheduler interface {

	// AfterFunc calls f after d and returns a function that
	// cancels the call if it has not happened yet.
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// timeScheduler is the [Scheduler] based on [time.AfterFunc].
type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

// SurfaceFactory makes the editing surface when an editor
// enters rich-text mode.
type SurfaceFactory func(cfg *config.Config) surface.Surface

// NewHTMLSurface is the default [SurfaceFactory], making an
// in-memory [htmlsurface.Surface] laid out per the config.
func NewHTMLSurface(cfg *config.Config) surface.Surface {
	s := htmlsurface.New("")
	s.CharWidth = cfg.CharWidth
	s.LineHeight = cfg.LineHeight
	s.SetUndoInterval(cfg.UndoRawInterval)
	return s
}

// Editor is one rich-text editor. All of its methods are safe to call
// from multiple goroutines. Events sent to listeners added with [Editor.On] and the
// picker callback run after the editor is unlocked, so they may call
// back into it.
type Editor struct {

	// Config is the editor configuration.
	Config *config.Config

	// Format tracks the formatting state at the selection.
	Format format.Tracker

	// Link is the hyperlink overlay.
	Link hyperlink.Controller

	// Registry holds the chip embeds of the surface.
	Registry *chip.Registry

	// Chips inserts chips and routes clicks on them.
	Chips *chip.Controller

	// Mode switches between plain and rich text.
	Mode *mode.Controller

	// Clipboard handles copy, cut and paste.
	Clipboard paste.Pipeline

	// Repair applies repair rules after each mutation batch.
	Repair *paste.Watcher

	// Keymap maps key chords to editor functions.
	Keymap keyfun.Map

	// listeners receive the events the editor sends and the host
	// events passed to HandleEvent. Guarded by mu.
	listeners events.Listeners

	// Scheduler runs the deferred format reset after blur.
	Scheduler Scheduler

	// NewSurface makes the surface on entering rich-text mode.
	NewSurface SurfaceFactory

	// Host is the viewport position of the editor host, used to place
	// the hyperlink overlay.
	Host image.Point

	mu          sync.Mutex
	surface     surface.Surface
	text        string
	cancelReset func()
	resetGen    uint64
	openPicker  func(b chip.Binding)
	pending     []func()
}

// New returns a new editor with the given config, which may be nil
// for defaults. In rich-text mode the surface is made right away.
func New(cfg *config.Config) *Editor {
	if cfg == nil {
		cfg = config.Defaults()
	}
	e := &Editor{
		Config:     cfg,
		Keymap:     keyfun.StdMap.Merge(cfg.Keymap),
		Repair:     paste.NewWatcher(),
		Scheduler:  timeScheduler{},
		NewSurface: NewHTMLSurface,
	}
	e.Registry = &chip.Registry{Tag: cfg.ChipTag, Delimiter: cfg.ChipDelimiter,
		CharWidth: cfg.CharWidth, Padding: cfg.ChipPadding, CloseWidth: cfg.ChipCloseWidth}
	e.Chips = chip.NewController(nil, e.Registry)
	e.Chips.OnChange = e.emit
	e.Chips.OnOpenPicker = func(b chip.Binding) {
		if fn := e.openPicker; fn != nil {
			e.later(func() { fn(b) })
		}
	}
	e.Link.Scheme = cfg.LinkScheme
	e.Link.Target = cfg.LinkTarget
	e.Link.OnClose = e.linkClosed
	e.Clipboard.Sanitizer = paste.NewSanitizer(cfg.ChipTag)

	m := mode.NewController(cfg.InitialMode())
	m.RichStyle = cfg.RichStyle
	m.PlainStyle = cfg.PlainStyle
	m.OnModeChange = func(md mode.Mode) {
		ev := events.New(events.ModeChange)
		ev.Mode = md.String()
		e.send(ev)
	}
	m.Refresh = e.refresh
	m.SetContent = e.setMarkup
	e.Mode = m
	e.refresh()
	return e
}

// lock locks the editor.
func (e *Editor) lock() {
	e.mu.Lock()
}

// unlock unlocks the editor and then runs the functions
// deferred while it was locked.
func (e *Editor) unlock() {
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

// later defers fn until the editor is unlocked.
func (e *Editor) later(fn func()) {
	e.pending = append(e.pending, fn)
}

// send queues ev for delivery to the listeners on unlock.
func (e *Editor) send(ev *events.Event) {
	ls := e.listeners.Funcs(ev.Type())
	e.later(func() { ls.Call(ev) })
}

// On adds a listener for the given event type: [events.Change] and
// [events.ModeChange] sent by the editor, or a host event type, which
// the listener can mark handled to skip the default handling.
func (e *Editor) On(typ events.Types, fn func(ev *events.Event)) {
	e.lock()
	defer e.unlock()
	e.listeners.Add(typ, fn)
}

// OnChange adds a listener for the content value after each change.
func (e *Editor) OnChange(fn func(content string)) {
	e.On(events.Change, func(ev *events.Event) { fn(ev.Content) })
}

// Surface returns the editing surface, or nil in plain-text mode.
func (e *Editor) Surface() surface.Surface {
	e.lock()
	defer e.unlock()
	return e.surface
}

// refresh makes the surface for rich-text mode, or drops it otherwise.
func (e *Editor) refresh() {
	switch {
	case e.Mode.Mode == mode.RichText && e.surface == nil:
		e.attach(e.NewSurface(e.Config))
	case e.Mode.Mode == mode.PlainText && e.surface != nil:
		e.attach(nil)
	}
}

// attach connects all parts of the editor to s, which may be nil.
func (e *Editor) attach(s surface.Surface) {
	e.surface = s
	e.Format.Surface = s
	e.Link.Surface = s
	e.Chips.Surface = s
	e.Registry.Surface = s
	e.Clipboard.Surface = s
	if s == nil {
		return
	}
	if sz, ok := s.(surface.Sizable); ok {
		sz.SetSizer(e.Registry.Size)
	}
	if ob, ok := s.(surface.Observable); ok {
		ob.Observe(e.mutated)
	}
}

// mutated runs the repair rules once per mutation batch.
func (e *Editor) mutated() {
	if e.surface != nil {
		e.Repair.Batch(e.surface.Root())
	}
}

// setMarkup replaces the surface content with markup.
func (e *Editor) setMarkup(markup string) {
	s := e.surface
	if s == nil {
		return
	}
	s.SelectNodeContents(s.Root())
	s.InsertMarkup(markup)
}

// content returns the current content value.
func (e *Editor) content() string {
	if e.surface == nil {
		return e.text
	}
	return dom.InnerHTML(e.surface.Root())
}

// Content returns the current content value: the surface markup in
// rich-text mode and the text in plain-text mode.
func (e *Editor) Content() string {
	e.lock()
	defer e.unlock()
	return e.content()
}

// SetContent sets the content value without emitting a change.
func (e *Editor) SetContent(value string) {
	e.lock()
	defer e.unlock()
	if e.surface == nil {
		e.text = value
		return
	}
	e.setMarkup(value)
	e.update()
}

// emit cleans up the surface and sends the content value.
func (e *Editor) emit() {
	if s := e.surface; s != nil {
		root := s.Root()
		tidy := func() bool {
			cleaned := paste.Cleanup(root)
			if _, ok := s.(surface.Observable); ok {
				return cleaned
			}
			return e.Repair.Batch(root) > 0 || cleaned
		}
		if m, ok := s.(surface.Mutator); ok {
			m.Mutate("cleanup", tidy)
		} else {
			tidy()
		}
		e.Registry.Sync()
	}
	ev := events.New(events.Change)
	ev.Content = e.content()
	e.send(ev)
}

// update recomputes the format state from the surface.
func (e *Editor) update() {
	if e.surface == nil {
		return
	}
	e.Format.Compute()
	e.Format.ComputeHyperlink(e.surface.Root())
}

// SetMode switches the editor to the given mode, transforming the content.
func (e *Editor) SetMode(m mode.Mode) {
	e.lock()
	defer e.unlock()
	if m == e.Mode.Mode {
		return
	}
	if m == mode.RichText {
		e.Mode.ToRich(e.text)
		e.text = ""
		e.update()
	} else {
		if e.Link.IsOpen() {
			e.Link.Cancel()
		}
		e.text = e.Mode.ToPlain(e.content())
		e.refresh()
		e.Format.Reset()
	}
	e.emit()
}

// HandleEvent handles an event from the host. Listeners for the event
// type are called first and can mark it handled to skip the default
// handling.
func (e *Editor) HandleEvent(ev *events.Event) {
	e.lock()
	ls := e.listeners.Funcs(ev.Type())
	e.unlock()
	ls.Call(ev)
	if ev.IsHandled() {
		return
	}
	e.lock()
	defer e.unlock()
	switch ev.Type() {
	case events.Focus:
		e.stopReset()
	case events.Blur:
		e.scheduleReset()
	case events.Input:
		e.emit()
		e.update()
	case events.SelectionChange:
		e.update()
	case events.KeyChord:
		if fun := e.Keymap.Of(ev.Chord); fun != keyfun.Nil {
			e.run(fun)
			ev.SetHandled()
		}
	case events.Click:
		if e.surface != nil && e.Chips.ClickAt(ev.Pos.X, ev.Pos.Y) {
			e.update()
			ev.SetHandled()
		}
	case events.Copy:
		ev.Mimes = e.Clipboard.Copy()
	case events.Cut:
		ev.Mimes = e.Clipboard.Cut()
		if ev.Mimes != nil {
			e.emit()
			e.update()
		}
	case events.Paste:
		if e.Clipboard.Paste(ev.Mimes) != paste.Nothing {
			e.emit()
			e.update()
		}
		ev.SetHandled()
	}
}

// stopReset cancels a pending deferred format reset.
func (e *Editor) stopReset() {
	e.resetGen++
	if e.cancelReset != nil {
		e.cancelReset()
		e.cancelReset = nil
	}
}

// scheduleReset resets the format state after the blur delay, unless
// focus comes back first. Nothing is scheduled while the hyperlink
// overlay is open, since it holds the focus.
func (e *Editor) scheduleReset() {
	if e.Link.IsOpen() {
		return
	}
	e.stopReset()
	gen := e.resetGen
	e.cancelReset = e.Scheduler.AfterFunc(e.Config.Delay(), func() {
		e.lock()
		defer e.unlock()
		if e.resetGen != gen {
			return
		}
		e.cancelReset = nil
		e.Format.Reset()
		slog.Debug("richedit: format state reset after blur")
	})
}

// funCommands are the surface commands of key functions.
var funCommands = map[keyfun.Funs]surface.Command{
	keyfun.Bold:        surface.Bold,
	keyfun.Italic:      surface.Italic,
	keyfun.Underline:   surface.Underline,
	keyfun.List:        surface.InsertUnorderedList,
	keyfun.AlignLeft:   surface.JustifyLeft,
	keyfun.AlignCenter: surface.JustifyCenter,
	keyfun.AlignRight:  surface.JustifyRight,
	keyfun.AlignFull:   surface.JustifyFull,
	keyfun.Undo:        surface.Undo,
	keyfun.Redo:        surface.Redo,
}

// run performs a key function.
func (e *Editor) run(fun keyfun.Funs) {
	if fun == keyfun.Link {
		if err := e.openLink(); errors.Is(err, hyperlink.ErrAlreadyOpen) {
			slog.Debug("richedit: link overlay already open")
		} else {
			errors.Log(err)
		}
		return
	}
	if cmd, ok := funCommands[fun]; ok {
		e.toggle(cmd)
	}
}

// Toggle executes a formatting command on the surface. The zero
// command applies the default alignment.
func (e *Editor) Toggle(cmd surface.Command) {
	e.lock()
	defer e.unlock()
	e.toggle(cmd)
}

func (e *Editor) toggle(cmd surface.Command) {
	if e.surface == nil {
		return
	}
	v := e.surface.Version()
	e.Format.Toggle(cmd)
	e.Format.ComputeHyperlink(e.surface.Root())
	if e.surface.Version() != v {
		e.emit()
	}
}

// State returns the current formatting state.
func (e *Editor) State() format.State {
	e.lock()
	defer e.unlock()
	return e.Format.State
}
