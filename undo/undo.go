// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a generic undo / redo history of
// serialized document states. Most records only store a patch
// from the previous state, with a full copy saved at intervals.
package undo

import (
	"log/slog"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultRawInterval is interval for saving raw state -- need to do this
// at some interval to prevent having it take too long to compute patches
// from all the diffs.
var DefaultRawInterval = 50

// Rec is one undo record, associated with one action that changed state from one to next.
type Rec struct {

	// Action is a description of this action, for user to see.
	Action string

	// Raw, if Full is set, is a direct save of the full state.
	Raw string

	// Full indicates that Raw holds the state.
	Full bool

	// Patch gets from the previous record state to this one.
	Patch []diffmatchpatch.Patch
}

// Mgr is the undo manager, managing the undo / redo process.
// Record 0 is the initial state; Index is the record whose state is current.
type Mgr struct {

	// Index is the current index in the undo records; this is the
	// record that will be undone if the user hits undo.
	Index int

	// Recs is the list of saved state / action records.
	Recs []*Rec

	// RawInterval is the interval for saving raw data.
	RawInterval int

	dmp *diffmatchpatch.DiffMatchPatch
}

func (um *Mgr) init() {
	if um.RawInterval <= 0 {
		um.RawInterval = DefaultRawInterval
	}
	if um.dmp == nil {
		um.dmp = diffmatchpatch.New()
	}
}

// Reset discards all records and starts a new history at the given state.
func (um *Mgr) Reset(state string) {
	um.init()
	um.Recs = []*Rec{{Action: "init", Raw: state, Full: true}}
	um.Index = 0
}

// RecState returns the state for given index, reconstructing from
// patches as needed.
func (um *Mgr) RecState(idx int) string {
	if idx < 0 || idx >= len(um.Recs) {
		return ""
	}
	st := 0
	for i := idx; i >= 0; i-- {
		if um.Recs[i].Full {
			st = i
			break
		}
	}
	cur := um.Recs[st].Raw
	for i := st + 1; i <= idx; i++ {
		var ok []bool
		cur, ok = um.dmp.PatchApply(um.Recs[i].Patch, cur)
		for _, applied := range ok {
			if !applied {
				slog.Debug("undo: patch hunk did not apply", "record", i)
			}
		}
	}
	return cur
}

// Save saves a new action as next action to be undone, with the
// full state of the system after the action. Any redo records
// past the current index are discarded.
func (um *Mgr) Save(action, state string) {
	um.init()
	if len(um.Recs) == 0 {
		um.Reset(state)
		um.Recs[0].Action = action
		return
	}
	prev := um.RecState(um.Index)
	um.Recs = um.Recs[:um.Index+1]
	um.Index++
	nr := &Rec{Action: action}
	if um.Index%um.RawInterval == 0 {
		nr.Raw = state
		nr.Full = true
	} else {
		nr.Patch = um.dmp.PatchMake(prev, state)
	}
	um.Recs = append(um.Recs, nr)
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr) IsUndoAvail() bool {
	return um.Index > 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr) IsRedoAvail() bool {
	return um.Index < len(um.Recs)-1
}

// Undo returns the action that was undone and the state prior to it,
// moving the index back one record. It returns false when there is
// nothing to undo.
func (um *Mgr) Undo() (action, state string, ok bool) {
	if !um.IsUndoAvail() {
		return
	}
	action = um.Recs[um.Index].Action
	um.Index--
	return action, um.RecState(um.Index), true
}

// Redo returns the action that was redone and the state after it,
// moving the index forward one record. It returns false when already
// at the end of the saved records.
func (um *Mgr) Redo() (action, state string, ok bool) {
	if !um.IsRedoAvail() {
		return
	}
	um.Index++
	return um.Recs[um.Index].Action, um.RecState(um.Index), true
}
