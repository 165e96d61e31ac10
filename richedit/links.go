// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richedit

import (
	"cogentcore.org/richsync/hyperlink"
)

// OpenLink opens the hyperlink overlay on the selection.
// Focus moves into the overlay, so a pending blur reset is cancelled.
func (e *Editor) OpenLink() error {
	e.lock()
	defer e.unlock()
	return e.openLink()
}

func (e *Editor) openLink() error {
	if e.surface == nil {
		return nil
	}
	e.stopReset()
	return e.Link.Open(e.Host)
}

// LinkDraft returns a copy of the open hyperlink draft.
func (e *Editor) LinkDraft() (hyperlink.Draft, bool) {
	e.lock()
	defer e.unlock()
	d := e.Link.Draft()
	if d == nil {
		return hyperlink.Draft{}, false
	}
	return *d, true
}

// SetLinkDraft sets the fields of the open hyperlink draft.
func (e *Editor) SetLinkDraft(text, url string, openInTab bool) {
	e.lock()
	defer e.unlock()
	e.Link.SetText(text)
	e.Link.SetURL(url)
	e.Link.SetOpenInTab(openInTab)
}

// ApplyLink applies the open hyperlink draft.
func (e *Editor) ApplyLink() {
	e.lock()
	defer e.unlock()
	e.Link.Apply()
}

// RemoveLink removes the link the overlay was opened on.
func (e *Editor) RemoveLink() {
	e.lock()
	defer e.unlock()
	e.Link.Remove()
}

// CancelLink closes the overlay without changes.
func (e *Editor) CancelLink() {
	e.lock()
	defer e.unlock()
	e.Link.Cancel()
}

// linkClosed emits the content after the overlay changed it.
func (e *Editor) linkClosed(st hyperlink.State) {
	if st != hyperlink.Cancelling {
		e.emit()
	}
	e.update()
}
