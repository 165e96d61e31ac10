// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyperlink

import "strconv"

// State is the state of the hyperlink overlay.
type State int32

const (
	// Idle is the state when no overlay is open.
	Idle State = iota

	// Opening is the state while the draft is being captured
	// from the selection.
	Opening

	// Open is the state while the user edits the draft.
	Open

	// Applying is the state while the draft is written to the surface.
	Applying

	// Removing is the state while the link is removed from the surface.
	Removing

	// Cancelling is the state while the draft is discarded.
	Cancelling
)

var stateNames = [...]string{"Idle", "Opening", "Open", "Applying", "Removing", "Cancelling"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}
