// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events that drive an editor and the
// events it sends back to its host.
package events

import (
	"image"

	"cogentcore.org/richsync/base/mimedata"
	"cogentcore.org/richsync/keyfun"
)

// Event is one editor event. Only the fields relevant to its type are set.
type Event struct {
	typ Types

	// Pos is the viewport position of a [Click].
	Pos image.Point

	// Chord is the key chord of a [KeyChord].
	Chord keyfun.Chord

	// Mimes are the clipboard payloads of a [Paste], and are set by
	// the editor on [Copy] and [Cut] for the host to put on the clipboard.
	Mimes mimedata.Mimes

	// Content is the new content value of a [Change].
	Content string

	// Mode is the new mode of a [ModeChange].
	Mode string

	handled bool
}

// New returns a new event of the given type.
func New(typ Types) *Event {
	return &Event{typ: typ}
}

// NewClick returns a new [Click] event at the given point.
func NewClick(pos image.Point) *Event {
	return &Event{typ: Click, Pos: pos}
}

// NewKey returns a new [KeyChord] event for the given chord.
func NewKey(chord string) *Event {
	return &Event{typ: KeyChord, Chord: keyfun.ParseChord(chord)}
}

// NewPaste returns a new [Paste] event with the given payloads.
func NewPaste(md mimedata.Mimes) *Event {
	return &Event{typ: Paste, Mimes: md}
}

// Type returns the type of the event.
func (e *Event) Type() Types {
	return e.typ
}

// IsHandled returns whether the event has been handled.
func (e *Event) IsHandled() bool {
	return e.handled
}

// SetHandled marks the event as handled.
func (e *Event) SetHandled() {
	e.handled = true
}
