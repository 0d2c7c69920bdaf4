package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Unificon/confluence-content-parser/parser"
)

func newTextCmd() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "text [file]",
		Short: "Render storage-format markup as plain text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := readInput(args)
			if err != nil {
				return err
			}

			p := parser.New(parser.WithStrict(!lenient))
			doc, err := p.Parse(markup)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if text := doc.Text(); text != "" {
				fmt.Println(text)
			}
			for _, d := range doc.Diagnostics() {
				log.Warningf("%s", d)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "report diagnostics on the document instead of failing")

	return cmd
}
