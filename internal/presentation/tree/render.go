// Package tree renders expression trees as indented text.
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ayeganov/gptree/pkg/node"
)

// Render writes the textual representation of the tree to w: one node per
// line, "(<name>" with depth-proportional tab indentation.
func Render(w io.Writer, n node.Node) error {
	return render(w, n, 0, nil)
}

// RenderColor behaves like Render but colors operators and leaves for TTY
// output. The color profile is detected from the environment.
func RenderColor(w io.Writer, n node.Node) error {
	p := termenv.ColorProfile()
	return render(w, n, 0, &p)
}

func render(w io.Writer, n node.Node, indent int, profile *termenv.Profile) error {
	label := "(" + n.Name()
	if profile != nil {
		// Indigo for operators, violet for leaves.
		color := "#818cf8"
		if len(n.Children()) == 0 {
			color = "#a78bfa"
		}
		label = termenv.String(label).Foreground(profile.Color(color)).String()
	}

	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("\t", indent), label); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := render(w, c, indent+1, profile); err != nil {
			return err
		}
	}
	return nil
}

// Sprint returns the plain rendering of the tree as a string.
func Sprint(n node.Node) string {
	var sb strings.Builder
	_ = Render(&sb, n)
	return sb.String()
}
