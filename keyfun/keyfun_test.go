// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keyfun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseChord(t *testing.T) {
	assert.Equal(t, Chord("Control+B"), ParseChord("ctrl+b"))
	assert.Equal(t, Chord("Control+Shift+L"), ParseChord("Shift+Control+l"))
	assert.Equal(t, Chord("Meta+Shift+Z"), ParseChord("cmd+shift+z"))
	assert.Equal(t, Chord("Control++"), ParseChord("Control++"))
	assert.Equal(t, Chord("Escape"), ParseChord("Escape"))
}

func TestStdMap(t *testing.T) {
	assert.Equal(t, Bold, StdMap.Of(ParseChord("Meta+b")))
	assert.Equal(t, List, StdMap.Of(ParseChord("ctrl+shift+7")))
	assert.Equal(t, Redo, StdMap.Of(ParseChord("Control+Shift+Z")))
	assert.Equal(t, Nil, StdMap.Of("Control+Q"))
	assert.Equal(t, Nil, StdMap.Of(""))
	assert.Equal(t, Chord("Control+K"), StdMap.ChordFor(Link))
}

func TestMerge(t *testing.T) {
	km := StdMap.Merge(map[string]string{
		"alt+l":     "Link",
		"Control+B": "Nil",
		"Control+Q": "Quit",
	})
	assert.Equal(t, Link, km.Of("Alt+L"))
	assert.Equal(t, Nil, km.Of("Control+B"))
	assert.Equal(t, Nil, km.Of("Control+Q"))
	assert.Equal(t, Bold, StdMap.Of("Control+B"))
}
