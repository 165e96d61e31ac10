// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richedit

import (
	"cogentcore.org/richsync/chip"
)

// InsertChip inserts a data chip for b at the selection.
func (e *Editor) InsertChip(b chip.Binding) *chip.Embed {
	e.lock()
	defer e.unlock()
	if e.surface == nil {
		return nil
	}
	em := e.Chips.Insert(b)
	e.update()
	return em
}

// OnOpenPicker sets the function that opens the binding picker
// when a chip is clicked.
func (e *Editor) OnOpenPicker(fn func(b chip.Binding)) {
	e.lock()
	defer e.unlock()
	e.openPicker = fn
}

// PickerDone is called when the binding picker closes: with the picked
// binding for the chip it was opened for, or with ok false when nothing
// was picked.
func (e *Editor) PickerDone(b chip.Binding, ok bool) {
	e.lock()
	defer e.unlock()
	if e.surface == nil {
		return
	}
	if ok {
		e.Chips.Update(b)
	}
	e.Chips.PickerClosed()
	e.update()
}
