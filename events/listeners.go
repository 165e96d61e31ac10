// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "slices"

// Listeners registers lists of event listener functions
// to receive different event types.
type Listeners map[Types][]func(e *Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls all functions for given event.
// It goes in _reverse_ order so the last functions added are the first called,
// and it stops when the event is marked as handled.
func (ls *Listeners) Call(e *Event) {
	if e.IsHandled() {
		return
	}
	fns := (*ls)[e.Type()]
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i](e)
		if e.IsHandled() {
			break
		}
	}
}

// Funcs returns a copy of the functions for the given type, so that
// they can be called after the caller releases a lock guarding ls.
func (ls Listeners) Funcs(typ Types) Listeners {
	fns := ls[typ]
	if len(fns) == 0 {
		return nil
	}
	return Listeners{typ: slices.Clone(fns)}
}
