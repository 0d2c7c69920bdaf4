package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/Unificon/confluence-content-parser/parser"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse markup interactively, one snippet per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("markup> ")
			if err != nil {
				return fmt.Errorf("init readline: %w", err)
			}
			defer rl.Close()

			p := parser.New(parser.WithStrict(false))
			for {
				line, err := rl.Readline()
				if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}

				doc, err := p.Parse(line)
				if err != nil {
					fmt.Println("error:", err)
					continue
				}
				if text := doc.Text(); text != "" {
					fmt.Println(text)
				}
				for _, d := range doc.Diagnostics() {
					fmt.Println("!", d)
				}
			}
		},
	}
}
