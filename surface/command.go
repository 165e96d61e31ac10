// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "fmt"

// Command is a named formatting or editing operation of a [Surface].
type Command int32

const (
	NoCommand Command = iota
	Bold
	Italic
	Underline
	InsertUnorderedList
	JustifyLeft
	JustifyCenter
	JustifyRight
	JustifyFull
	Indent
	Outdent
	InsertHTML
	InsertText
	CreateLink
	Unlink
	Delete
	Undo
	Redo
)

var commandNames = [...]string{
	NoCommand:           "",
	Bold:                "bold",
	Italic:              "italic",
	Underline:           "underline",
	InsertUnorderedList: "insertUnorderedList",
	JustifyLeft:         "justifyLeft",
	JustifyCenter:       "justifyCenter",
	JustifyRight:        "justifyRight",
	JustifyFull:         "justifyFull",
	Indent:              "indent",
	Outdent:             "outdent",
	InsertHTML:          "insertHTML",
	InsertText:          "insertText",
	CreateLink:          "createLink",
	Unlink:              "unlink",
	Delete:              "delete",
	Undo:                "undo",
	Redo:                "redo",
}

// String returns the command name as used by editable surfaces.
func (c Command) String() string {
	if c >= 0 && int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", int32(c))
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n != "" && n == name {
			return Command(i), nil
		}
	}
	return NoCommand, fmt.Errorf("surface: unknown command %q", name)
}

// Alignments are the mutually exclusive alignment commands,
// in the order their state is queried.
var Alignments = []Command{JustifyLeft, JustifyCenter, JustifyRight, JustifyFull}

// IsAlignment returns whether c is one of [Alignments].
func (c Command) IsAlignment() bool {
	return c >= JustifyLeft && c <= JustifyFull
}

// TextAlign returns the CSS text-align value of an alignment command.
func (c Command) TextAlign() string {
	switch c {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	case JustifyFull:
		return "justify"
	}
	return ""
}

// AlignmentFor returns the alignment command for a CSS text-align value.
// Values that align to the start of the line map to [JustifyLeft].
func AlignmentFor(textAlign string) Command {
	switch textAlign {
	case "center", "-webkit-center":
		return JustifyCenter
	case "right", "end", "-webkit-right":
		return JustifyRight
	case "justify":
		return JustifyFull
	}
	return JustifyLeft
}
