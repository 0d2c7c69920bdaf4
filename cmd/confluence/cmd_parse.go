package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/Unificon/confluence-content-parser/format"
	"github.com/Unificon/confluence-content-parser/parser"
)

var log = commonlog.GetLogger("confluence")

func newParseCmd() *cobra.Command {
	var outputFormat string
	var lenient bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse storage-format markup and dump the document",
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
			if diags := doc.Diagnostics(); len(diags) > 0 {
				log.Infof("parsed with %d diagnostics", len(diags))
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "tree":
				encoder = format.NewTreeEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree, text)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "report diagnostics on the document instead of failing")

	return cmd
}

// readInput reads the named file, or stdin when no file (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
