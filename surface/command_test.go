// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "insertUnorderedList", InsertUnorderedList.String())
	assert.Equal(t, "Command(99)", Command(99).String())
	c, err := ParseCommand("justifyCenter")
	assert.NoError(t, err)
	assert.Equal(t, JustifyCenter, c)
	_, err = ParseCommand("explode")
	assert.Error(t, err)
	_, err = ParseCommand("")
	assert.Error(t, err)
}

func TestAlignments(t *testing.T) {
	for _, a := range Alignments {
		assert.True(t, a.IsAlignment())
		assert.Equal(t, a, AlignmentFor(a.TextAlign()))
	}
	assert.False(t, Bold.IsAlignment())
	assert.Equal(t, JustifyLeft, AlignmentFor(""))
	assert.Equal(t, JustifyLeft, AlignmentFor("start"))
}
