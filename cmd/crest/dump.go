package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"crest/internal/syntax"
	"crest/internal/treewire"
)

var dumpCmd = &cobra.Command{
	Use:   "dump file.tree",
	Short: "Dump the structure of a serialized tree",
	Long:  `Dump decodes a serialized syntax tree and prints its structure: kinds, slots, token text and missing placeholders`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Bool("stats", false, "append token and missing-node counts")
}

var (
	dumpKindColor    = color.New(color.FgCyan)
	dumpTokenColor   = color.New(color.FgGreen)
	dumpMissingColor = color.New(color.FgRed, color.Bold)
	dumpTriviaColor  = color.New(color.FgHiBlack)
)

func runDump(cmd *cobra.Command, args []string) error {
	if !useColor(cmd, os.Stdout) {
		color.NoColor = true
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open tree file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	node, err := treewire.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	d := &dumper{cmd: cmd}
	d.walk(node, 0)

	showStats, _ := cmd.Flags().GetBool("stats")
	if showStats {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d tokens, %d missing nodes\n", d.tokens, d.missing)
	}
	return nil
}

type dumper struct {
	cmd     *cobra.Command
	tokens  int
	missing int
}

func (d *dumper) walk(n syntax.Node, depth int) {
	out := d.cmd.OutOrStdout()
	indent := strings.Repeat("  ", depth)

	if n.IsMissing() {
		d.missing++
	}
	if tok, ok := n.Token(); ok {
		d.tokens++
		if tok.IsMissing() {
			fmt.Fprintf(out, "%s%s %s\n", indent,
				dumpTokenColor.Sprint(tok.TokenKind()), dumpMissingColor.Sprint("<missing>"))
			return
		}
		line := fmt.Sprintf("%s%s %q", indent, dumpTokenColor.Sprint(tok.TokenKind()), tok.RawText())
		if preview := triviaPreview(tok.LeadingTrivia()); preview != "" {
			line += dumpTriviaColor.Sprint(" leading=" + preview)
		}
		if preview := triviaPreview(tok.TrailingTrivia()); preview != "" {
			line += dumpTriviaColor.Sprint(" trailing=" + preview)
		}
		fmt.Fprintln(out, line)
		return
	}

	label := dumpKindColor.Sprint(n.Kind())
	if n.IsMissing() {
		label += " " + dumpMissingColor.Sprint("<missing>")
	}
	fmt.Fprintf(out, "%s%s\n", indent, label)

	for i := 0; i < n.NumChildren(); i++ {
		c, ok := n.Child(i)
		if !ok {
			continue
		}
		d.walk(c, depth+1)
	}
}

// triviaPreview compacts a trivia run into one quoted, width-bounded string.
func triviaPreview(tr syntax.Trivia) string {
	if len(tr) == 0 {
		return ""
	}
	return fmt.Sprintf("%q", runewidth.Truncate(tr.Text(), 24, "…"))
}
