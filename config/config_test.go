// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/richsync/mode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := Defaults()
	assert.NoError(t, c.Validate())
	assert.Equal(t, 200*time.Millisecond, c.Delay())
	assert.Equal(t, mode.RichText, c.InitialMode())
	assert.Equal(t, "app-data-chip", c.ChipTag)
	assert.Equal(t, ".", c.ChipDelimiter)
	assert.Equal(t, "https://", c.LinkScheme)
	assert.Equal(t, "_blank", c.LinkTarget)
	assert.Equal(t, 8, c.CharWidth)
	assert.Equal(t, 20, c.LineHeight)
	assert.Equal(t, 16, c.ChipCloseWidth)
	assert.Equal(t, 50, c.UndoRawInterval)
	assert.Equal(t, mode.DefaultRichStyle(), c.RichStyle)
}

func TestSetFromDefaultTags(t *testing.T) {
	type sample struct {
		Name  string   `default:"x"`
		Count int      `default:"3"`
		Wait  Duration `default:"1s"`
		Keep  string
	}
	s := sample{Keep: "kept"}
	require.NoError(t, SetFromDefaultTags(&s))
	assert.Equal(t, sample{Name: "x", Count: 3, Wait: Duration(time.Second), Keep: "kept"}, s)

	assert.Error(t, SetFromDefaultTags(s))
	bad := struct {
		Count int `default:"many"`
	}{}
	assert.ErrorContains(t, SetFromDefaultTags(&bad), "Count")
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
BlurResetDelay = "350ms"
Mode = "PlainText"
ChipDelimiter = "/"

[RichStyle]
FontSize = 16.0
`))
	require.NoError(t, err)
	assert.Equal(t, 350*time.Millisecond, c.Delay())
	assert.Equal(t, mode.PlainText, c.InitialMode())
	assert.Equal(t, "/", c.ChipDelimiter)
	assert.Equal(t, float32(16), c.RichStyle.FontSize)
	assert.Equal(t, "https://", c.LinkScheme)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`Mode = "Fancy"`))
	assert.Error(t, err)
	_, err = Parse([]byte(`BlurResetDelay = "soon"`))
	assert.Error(t, err)
	_, err = Parse([]byte(`CharWidth = 0`))
	assert.Error(t, err)
	_, err = Parse([]byte("LinkScheme = \"http://\"\nMode = \"Rich"))
	assert.ErrorContains(t, err, "line 2")
}

func TestOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "richsync.toml")
	require.NoError(t, os.WriteFile(file, []byte(`LinkScheme = "http://"`), 0o644))
	c, err := Open(file)
	require.NoError(t, err)
	assert.Equal(t, "http://", c.LinkScheme)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseKeymap(t *testing.T) {
	c, err := Parse([]byte(`
[Keymap]
"alt+l" = "Link"
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alt+l": "Link"}, c.Keymap)
}
