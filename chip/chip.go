// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chip implements data chips: opaque inline embeds on an
// editing surface that each represent a binding to a dataset value.
// Chips are only seen through their two mirrored attributes, a
// highlighted flag and point hit-testing.
package chip

import (
	"strings"

	"cogentcore.org/richsync/dom"
	"golang.org/x/net/html"
)

const (
	// DefaultTag is the default element tag of chips.
	DefaultTag = "app-data-chip"

	// DefaultDelimiter is the default separator of lookup path segments.
	DefaultDelimiter = "."
)

// Binding is the data binding represented by a chip.
type Binding struct {

	// Source is the dataset identifier.
	Source string

	// Lookup is the delimited path of the value within the dataset.
	Lookup string
}

// Label returns the visible label for a lookup path:
// its final delimiter-separated segment.
func Label(lookup, delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	if i := strings.LastIndex(lookup, delim); i >= 0 {
		return lookup[i+len(delim):]
	}
	return lookup
}

// Markup returns the markup of a chip element with the given tag
// carrying the binding as attributes.
func (b Binding) Markup(tag string) string {
	if tag == "" {
		tag = DefaultTag
	}
	return dom.OuterHTML(dom.NewElement(tag,
		html.Attribute{Key: "source", Val: b.Source},
		html.Attribute{Key: "lookup", Val: b.Lookup}))
}
