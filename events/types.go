// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strconv"

// Types determines the type of an editor event.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Focus is sent when the surface gains input focus.
	Focus

	// Blur is sent when the surface loses input focus.
	Blur

	// Input is sent after the surface content was changed by the user.
	Input

	// SelectionChange is sent when the selection of the surface moved.
	SelectionChange

	// KeyChord is sent for a key press with its chord.
	KeyChord

	// Click is sent for a click at a viewport point.
	Click

	// Copy is sent for a clipboard copy.
	Copy

	// Cut is sent for a clipboard cut.
	Cut

	// Paste is sent for a clipboard paste, with its payloads.
	Paste

	// Change is sent by the editor with its new content value.
	Change

	// ModeChange is sent by the editor when its mode changes.
	ModeChange
)

var typeNames = [...]string{"UnknownType", "Focus", "Blur", "Input", "SelectionChange",
	"KeyChord", "Click", "Copy", "Cut", "Paste", "Change", "ModeChange"}

func (t Types) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Types(" + strconv.Itoa(int(t)) + ")"
}
