// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/richsync/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func run(t *testing.T, clip string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out, func() (string, error) { return clip, nil })
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlain(t *testing.T) {
	file := writeFile(t, "doc.html", `<b>Hello</b>&nbsp;<a href="https://x.test">docs</a>`+
		`<app-data-chip source="ds" lookup="ds.name"></app-data-chip>`)
	out, err := run(t, "", "plain", file)
	require.NoError(t, err)
	assert.Equal(t, "Hello docs\n", out)
}

func TestClean(t *testing.T) {
	file := writeFile(t, "doc.html", `<p style="color: red; text-align: center;">a<font>b</font><font>c</font></p><br>`)
	out, err := run(t, "", "-q", "clean", file)
	require.NoError(t, err)
	assert.Equal(t, "<p style=\"text-align: center;\">abc</p>\n", out)
}

func TestPasteUntrusted(t *testing.T) {
	file := writeFile(t, "doc.html", `<b>Hi</b>`)
	out, err := run(t, "<i>there</i>", "paste", file)
	require.NoError(t, err)
	assert.Equal(t, "<b>Hi</b>&lt;i&gt;there&lt;/i&gt;\n", out)
}

func TestConfigFlag(t *testing.T) {
	cfgFile := writeFile(t, "richsync.toml", `Mode = "Fancy"`)
	file := writeFile(t, "doc.html", "x")
	_, err := run(t, "", "--config", cfgFile, "plain", file)
	assert.Error(t, err)

	_, err = run(t, "", "plain", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestPasteAtEndEmpty(t *testing.T) {
	assert.Equal(t, "hello", pasteAtEnd(config.Defaults(), "", "hello"))
}
