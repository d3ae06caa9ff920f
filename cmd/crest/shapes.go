package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"crest/internal/syntax"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [kind...]",
	Short: "Print the registered node shapes",
	Long:  `Shapes prints the slot contract of every node kind, or only the kinds named as arguments`,
	RunE:  runShapes,
}

var (
	shapeHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	shapeListStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func runShapes(cmd *cobra.Command, args []string) error {
	kinds, err := resolveKinds(args)
	if err != nil {
		return err
	}

	styled := useColor(cmd, os.Stdout)

	out := cmd.OutOrStdout()
	for _, kind := range kinds {
		shape := syntax.ShapeOf(kind)
		header := kind.String()
		suffix := ""
		if shape.Variadic {
			suffix = " (list)"
		}
		if styled {
			header = shapeHeaderStyle.Render(header)
			if suffix != "" {
				suffix = " " + shapeListStyle.Render("(list)")
			}
		}
		fmt.Fprintln(out, header+suffix)

		nameWidth := 0
		for _, slot := range shape.Slots {
			if w := runewidth.StringWidth(slot.Name); w > nameWidth {
				nameWidth = w
			}
		}
		for i, slot := range shape.Slots {
			marker := "required"
			if slot.Optional {
				marker = "optional"
			}
			if shape.Variadic {
				marker = "element"
			}
			fmt.Fprintf(out, "  %d  %s  %s  %s\n",
				i, runewidth.FillRight(slot.Name, nameWidth), marker, describeSlot(slot))
		}
		fmt.Fprintln(out)
	}
	return nil
}

func resolveKinds(args []string) ([]syntax.Kind, error) {
	if len(args) == 0 {
		return syntax.Kinds(), nil
	}
	kinds := make([]syntax.Kind, 0, len(args))
	for _, name := range args {
		kind, ok := syntax.KindByName(name)
		if !ok || kind == syntax.KindToken {
			return nil, fmt.Errorf("unknown node kind %q", name)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func describeSlot(slot syntax.SlotSpec) string {
	if slot.AnyToken {
		return "any token"
	}
	if len(slot.Tokens) > 0 {
		names := make([]string, len(slot.Tokens))
		for i, k := range slot.Tokens {
			names[i] = k.String()
		}
		return "token " + strings.Join(names, "|")
	}
	names := make([]string, len(slot.Kinds))
	for i, k := range slot.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, "|")
}
