// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paste

import (
	"log/slog"
	"strings"

	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

// Cleanup normalizes the markup under root after a mutation: inline
// styles keep only their text-align declaration, or are removed when
// they have none, and a single trailing line break of root is removed.
// It returns whether anything changed.
func Cleanup(root *html.Node) bool {
	changed := false
	styled := dom.FindAll(root, func(n *html.Node) bool {
		_, ok := dom.Attr(n, "style")
		return ok
	})
	for _, n := range styled {
		old, _ := dom.Attr(n, "style")
		switch style := CleanStyle(old); {
		case style == "":
			dom.RemoveAttr(n, "style")
			changed = true
		case style != old:
			dom.SetAttr(n, "style", style)
			changed = true
		}
	}
	if last := root.LastChild; dom.IsElement(last, "br") {
		dom.Remove(last)
		changed = true
	}
	if changed {
		slog.Debug("paste: cleaned up markup")
	}
	return changed
}

// CleanStyle returns the cleaned form of an inline style:
// its text-align declaration alone, or "" when it has none.
func CleanStyle(style string) string {
	align := ""
	for _, d := range dom.ParseDeclarations(style) {
		if strings.EqualFold(d.Property, "text-align") {
			align = d.Value
		}
	}
	if align == "" {
		return ""
	}
	return "text-align: " + align + ";"
}
