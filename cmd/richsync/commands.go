// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/richsync/base/logx"
	"cogentcore.org/richsync/base/mimedata"
	"cogentcore.org/richsync/config"
	"cogentcore.org/richsync/dom"
	"cogentcore.org/richsync/events"
	"cogentcore.org/richsync/mode"
	"cogentcore.org/richsync/paste"
	"cogentcore.org/richsync/richedit"
	"github.com/spf13/cobra"
)

// maxRepairBatches bounds the repair passes of the clean command.
const maxRepairBatches = 100

// options are the global flags.
type options struct {
	verbose     bool
	veryVerbose bool
	quiet       bool
	configFile  string
	config      *config.Config
}

// newRootCmd returns the richsync command tree writing to out and
// reading the clipboard with readClipboard.
func newRootCmd(out io.Writer, readClipboard func() (string, error)) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "richsync",
		Short:         "Run the rich-text editing engine on HTML files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.SetDefault(logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet))
			opts.config = config.Defaults()
			if opts.configFile == "" {
				return nil
			}
			c, err := config.Open(opts.configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			opts.config = c
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")
	pf.StringVar(&opts.configFile, "config", "", "TOML config file")

	root.AddCommand(&cobra.Command{
		Use:   "plain <file>",
		Short: "Print the plain-text value of an HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, mode.PlainContent(string(markup)))
			return err
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "clean <file>",
		Short: "Print an HTML file after style cleanup and markup repairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cleaned, err := clean(string(markup))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, cleaned)
			return err
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "paste <file>",
		Short: "Print an HTML file with the system clipboard pasted at its end",
		Long: `Paste the system clipboard at the end of an HTML file and print the result.
The clipboard does not come from a copy in this session, so it is
always pasted as plain text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text, err := readClipboard()
			if err != nil {
				return fmt.Errorf("reading clipboard: %w", err)
			}
			_, err = fmt.Fprintln(out, pasteAtEnd(opts.config, string(markup), text))
			return err
		},
	})
	return root
}

// clean returns markup after cleanup and repeated repair batches.
func clean(markup string) (string, error) {
	root := dom.NewElement("div")
	if err := dom.SetInnerHTML(root, markup); err != nil {
		return "", err
	}
	paste.Cleanup(root)
	w := paste.NewWatcher()
	for i := 0; i < maxRepairBatches; i++ {
		if w.Batch(root) == 0 {
			break
		}
	}
	return dom.InnerHTML(root), nil
}

// pasteAtEnd pastes text at the end of markup in a new editor and
// returns the resulting content.
func pasteAtEnd(cfg *config.Config, markup, text string) string {
	ed := richedit.New(cfg)
	ed.SetContent(markup)
	if s := ed.Surface(); s != nil {
		root := s.Root()
		s.SetSelection(dom.Caret(dom.Point{Node: root, Offset: dom.NumChildren(root)}))
	}
	ed.HandleEvent(events.NewPaste(mimedata.NewText(text)))
	return ed.Content()
}
