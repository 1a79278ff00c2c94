package css

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

const indent = "  "

// String serializes the tree back to CSS text. Block rules are written one
// declaration per line with two-space indentation; runs of whitespace inside
// values are collapsed. The output has no trailing newline.
func (s *Stylesheet) String() string {
	var b strings.Builder
	writeNodes(&b, s.Nodes, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeNodes(b *strings.Builder, nodes []Node, depth int) {
	pad := strings.Repeat(indent, depth)
	for _, n := range nodes {
		switch n := n.(type) {
		case *AtRule:
			b.WriteString(pad)
			b.WriteString("@")
			b.WriteString(n.Name)
			if prelude := joinTokens(n.Prelude); prelude != "" {
				b.WriteString(" ")
				b.WriteString(prelude)
			}
			if !n.HasBlock {
				b.WriteString(";\n")
				continue
			}
			writeBlock(b, n.Block, depth)

		case *Ruleset:
			b.WriteString(pad)
			b.WriteString(joinTokens(n.Selector))
			writeBlock(b, n.Block, depth)

		case *Declaration:
			b.WriteString(pad)
			b.WriteString(n.Property)
			b.WriteString(": ")
			if n.Custom {
				b.WriteString(strings.TrimSpace(rawTokens(n.Values)))
			} else {
				b.WriteString(joinTokens(n.Values))
			}
			b.WriteString(";\n")
		}
	}
}

func writeBlock(b *strings.Builder, nodes []Node, depth int) {
	b.WriteString(" {\n")
	writeNodes(b, nodes, depth+1)
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString("}\n")
}

// joinTokens concatenates tokens, collapsing whitespace to single spaces.
// Commas are followed by one space and never preceded by one.
func joinTokens(tokens []Token) string {
	var b strings.Builder
	space := false
	for _, t := range tokens {
		switch t.Type {
		case css.WhitespaceToken:
			space = true
			continue
		case css.CommaToken:
			b.WriteString(",")
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteString(" ")
		}
		space = false
		b.WriteString(t.Data)
	}
	return b.String()
}

func rawTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Data)
	}
	return b.String()
}
