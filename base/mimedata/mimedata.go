// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mimedata defines the clipboard payloads exchanged by copy,
// cut and paste. One clipboard item is a [Mimes] value holding the
// same content in one or more flavors.
package mimedata

import "strings"

const (
	// TextPlain is the plain-text clipboard flavor.
	TextPlain = "text/plain"

	// TextHTML is the markup clipboard flavor.
	TextHTML = "text/html"
)

// Data is one flavor of a clipboard item.
type Data struct {

	// Type is the MIME type of Data, such as text/plain.
	Type string

	// Data is the payload.
	Data []byte
}

// Mimes holds the flavors of one clipboard item.
type Mimes []*Data

// NewText returns an item with only a text/plain flavor.
func NewText(text string) Mimes {
	return Mimes{{TextPlain, []byte(text)}}
}

// NewTextPlus returns an item with a text/plain flavor plus
// one flavor of the given type.
func NewTextPlus(text, typ string, data []byte) Mimes {
	return append(NewText(text), &Data{typ, data})
}

// NewHTML returns an item with both the plain-text and markup
// flavors of the same content.
func NewHTML(text, markup string) Mimes {
	return NewTextPlus(text, TextHTML, []byte(markup))
}

// HasType returns whether mi has a flavor of the given type.
func (mi Mimes) HasType(typ string) bool {
	return mi.find(typ) != nil
}

// TypeData returns the payload of the first flavor of the given type.
func (mi Mimes) TypeData(typ string) []byte {
	if d := mi.find(typ); d != nil {
		return d.Data
	}
	return nil
}

func (mi Mimes) find(typ string) *Data {
	for _, d := range mi {
		if d.Type == typ {
			return d
		}
	}
	return nil
}

// Text returns the concatenated payloads of the given type as a string.
func (mi Mimes) Text(typ string) string {
	var b strings.Builder
	for _, d := range mi {
		if d.Type == typ {
			b.Write(d.Data)
		}
	}
	return b.String()
}
