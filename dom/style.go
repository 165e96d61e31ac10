// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dom

import (
	"log/slog"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// Declarations parses the inline style attribute of n.
// A style that fails to parse yields no declarations.
func Declarations(n *html.Node) []*css.Declaration {
	st, ok := Attr(n, "style")
	if !ok {
		return nil
	}
	return ParseDeclarations(st)
}

// ParseDeclarations parses a list of inline style declarations.
func ParseDeclarations(style string) []*css.Declaration {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil
	}
	// our CSS parser is strict about semicolons, but
	// they aren't needed in normal inline styles in HTML
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		slog.Debug("dom: invalid inline style", "style", style, "err", err)
		return nil
	}
	return decls
}

// StyleValue returns the value of the last declaration of the given
// property in the inline style of n.
func StyleValue(n *html.Node, prop string) string {
	v := ""
	for _, d := range Declarations(n) {
		if strings.EqualFold(d.Property, prop) {
			v = d.Value
		}
	}
	return v
}

// FormatDeclarations renders declarations as an inline style.
func FormatDeclarations(decls []*css.Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		s := d.Property + ": " + d.Value
		if d.Important {
			s += " !important"
		}
		parts = append(parts, s+";")
	}
	return strings.Join(parts, " ")
}

// SetStyleValue sets one property in the inline style of n,
// replacing any existing declarations of it.
func SetStyleValue(n *html.Node, prop, value string) {
	var decls []*css.Declaration
	for _, d := range Declarations(n) {
		if !strings.EqualFold(d.Property, prop) {
			decls = append(decls, d)
		}
	}
	decls = append(decls, &css.Declaration{Property: prop, Value: value})
	SetAttr(n, "style", FormatDeclarations(decls))
}
