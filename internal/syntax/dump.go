package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented structural rendering of the subtree, one node per
// line: kind, missing markers, token text, and trivia. Meant for debugging
// and the CLI, not for reconstruction; use WriteText for that.
func (n Node) Dump(w io.Writer) error {
	if n.raw == nil {
		_, err := io.WriteString(w, "<absent>\n")
		return err
	}
	return dumpRaw(w, n.raw, 0)
}

// DumpString returns Dump's output as a string.
func (n Node) DumpString() string {
	var sb strings.Builder
	_ = n.Dump(&sb)
	return sb.String()
}

func dumpRaw(w io.Writer, n *rawNode, depth int) error {
	indent := strings.Repeat("  ", depth)
	if n.isToken() {
		line := fmt.Sprintf("%s%s %q", indent, n.tokKind, n.text)
		if n.missing {
			line = indent + n.tokKind.String() + " <missing>"
		}
		if len(n.leading) > 0 {
			line += " leading=" + formatTrivia(n.leading)
		}
		if len(n.trailing) > 0 {
			line += " trailing=" + formatTrivia(n.trailing)
		}
		_, err := io.WriteString(w, line+"\n")
		return err
	}
	line := indent + n.kind.String()
	if n.missing {
		line += " <missing>"
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	shape := shapes[n.kind]
	variadic := shape.Variadic
	for i, c := range n.children {
		slotName := ""
		if !variadic && i < len(shape.Slots) {
			slotName = shape.Slots[i].Name
		}
		childIndent := strings.Repeat("  ", depth+1)
		if c == nil {
			name := slotName
			if name == "" {
				name = fmt.Sprintf("slot %d", i)
			}
			if _, err := fmt.Fprintf(w, "%s%s: <absent>\n", childIndent, name); err != nil {
				return err
			}
			continue
		}
		if slotName != "" {
			if _, err := fmt.Fprintf(w, "%s%s:\n", childIndent, slotName); err != nil {
				return err
			}
			if err := dumpRaw(w, c, depth+2); err != nil {
				return err
			}
			continue
		}
		if err := dumpRaw(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func formatTrivia(tr Trivia) string {
	parts := make([]string, len(tr))
	for i, p := range tr {
		parts[i] = fmt.Sprintf("%s%q", p.Kind, p.Text)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
