// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keyfun maps key chords to editor functions.
package keyfun

import (
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Funs are functions that key chords can perform in an editor.
type Funs int32

const (
	Nil Funs = iota
	Bold
	Italic
	Underline
	Link
	List
	AlignLeft
	AlignCenter
	AlignRight
	AlignFull
	Undo
	Redo
)

var funNames = [...]string{"Nil", "Bold", "Italic", "Underline", "Link", "List",
	"AlignLeft", "AlignCenter", "AlignRight", "AlignFull", "Undo", "Redo"}

func (f Funs) String() string {
	if f >= 0 && int(f) < len(funNames) {
		return funNames[f]
	}
	return "Funs(" + strconv.Itoa(int(f)) + ")"
}

// Chord is a key with its modifiers in canonical form,
// for example "Control+Shift+L".
type Chord string

// modifiers in canonical order, with their accepted spellings.
var modifiers = []struct {
	name    string
	aliases []string
}{
	{"Control", []string{"control", "ctrl"}},
	{"Meta", []string{"meta", "cmd", "command", "super"}},
	{"Alt", []string{"alt", "option"}},
	{"Shift", []string{"shift"}},
}

// ParseChord returns the canonical chord for a "+" separated key
// description, with modifier names in any case and order.
func ParseChord(s string) Chord {
	var mods []string
	key := ""
	for _, part := range strings.Split(s, "+") {
		p := strings.TrimSpace(part)
		if p == "" {
			// a "+" key itself
			key = "+"
			continue
		}
		mod := ""
		for _, m := range modifiers {
			if slices.Contains(m.aliases, strings.ToLower(p)) {
				mod = m.name
			}
		}
		if mod == "" {
			key = p
			continue
		}
		if !slices.Contains(mods, mod) {
			mods = append(mods, mod)
		}
	}
	if len([]rune(key)) == 1 {
		key = strings.ToUpper(key)
	}
	var b strings.Builder
	for _, m := range modifiers {
		if slices.Contains(mods, m.name) {
			b.WriteString(m.name + "+")
		}
	}
	b.WriteString(key)
	return Chord(b.String())
}

// Map is a map between a key chord and a specific key function.
// Each chord has a unique function, but multiple chords can
// trigger the same function.
type Map map[Chord]Funs

// StdMap is the standard key map, with both Control and Meta
// variants of the formatting shortcuts.
var StdMap = Map{
	"Control+B":       Bold,
	"Meta+B":          Bold,
	"Control+I":       Italic,
	"Meta+I":          Italic,
	"Control+U":       Underline,
	"Meta+U":          Underline,
	"Control+K":       Link,
	"Meta+K":          Link,
	"Control+Shift+7": List,
	"Meta+Shift+7":    List,
	"Control+Shift+L": AlignLeft,
	"Control+Shift+E": AlignCenter,
	"Control+Shift+R": AlignRight,
	"Control+Shift+J": AlignFull,
	"Control+Z":       Undo,
	"Meta+Z":          Undo,
	"Control+Shift+Z": Redo,
	"Meta+Shift+Z":    Redo,
	"Control+Y":       Redo,
}

// Of translates chord into a key function.
func (km Map) Of(chord Chord) Funs {
	if chord == "" {
		return Nil
	}
	return km[chord]
}

// MapItem records one element of the key map.
type MapItem struct {

	// the key chord that activates a function
	Key Chord

	// the function of that key
	Fun Funs
}

// ToSlice returns the map items sorted by function, then chord.
func (km Map) ToSlice() []MapItem {
	kms := make([]MapItem, 0, len(km))
	for key, fun := range km {
		kms = append(kms, MapItem{key, fun})
	}
	sort.Slice(kms, func(i, j int) bool {
		if kms[i].Fun != kms[j].Fun {
			return kms[i].Fun < kms[j].Fun
		}
		return kms[i].Key < kms[j].Key
	})
	return kms
}

// ChordFor returns the first key chord, in sorted order, for given function.
func (km Map) ChordFor(kf Funs) Chord {
	for _, it := range km.ToSlice() {
		if it.Fun == kf {
			return it.Key
		}
	}
	return ""
}

// Merge returns a copy of km with the chords in overrides, given as
// chord descriptions to function names, added or replaced. Unknown
// function names are logged and skipped; "Nil" removes a chord.
func (km Map) Merge(overrides map[string]string) Map {
	out := make(Map, len(km)+len(overrides))
	for k, v := range km {
		out[k] = v
	}
	for chord, name := range overrides {
		i := slices.Index(funNames[:], name)
		if i < 0 {
			slog.Warn("keyfun: unknown key function", "chord", chord, "function", name)
			continue
		}
		c := ParseChord(chord)
		if Funs(i) == Nil {
			delete(out, c)
			continue
		}
		out[c] = Funs(i)
	}
	return out
}
