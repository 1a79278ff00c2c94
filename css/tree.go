// Package css provides a mutable CSS syntax tree built on tdewolff/parse,
// and the font-face extraction and URL rewriting that operate on it.
package css

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// Node is an element of the syntax tree.
type Node interface {
	node()
}

// Token is a single lexical token. Data holds the exact source text.
type Token struct {
	Type css.TokenType
	Data string
}

// Stylesheet is the root of a parsed syntax tree.
// A tree is owned by the caller that parsed it and is mutated in place.
type Stylesheet struct {
	Nodes []Node
}

// AtRule is an at-rule such as @font-face, @media or @import.
type AtRule struct {
	// Name is the lowercased rule name without the leading "@".
	Name    string
	Prelude []Token

	// HasBlock is false for statement at-rules like @import.
	HasBlock bool
	Block    []Node
}

// Ruleset is a qualified rule: a selector list followed by a block.
type Ruleset struct {
	Selector []Token
	Block    []Node
}

// Declaration is a property/value pair inside a block.
type Declaration struct {
	Property string
	Values   []Token

	// Custom marks a custom property (--name) whose value is kept verbatim.
	Custom bool
}

func (*AtRule) node()      {}
func (*Ruleset) node()     {}
func (*Declaration) node() {}

// Walk visits every node depth-first, parents before children.
func Walk(sheet *Stylesheet, fn func(Node)) {
	walkNodes(sheet.Nodes, fn)
}

func walkNodes(nodes []Node, fn func(Node)) {
	for _, n := range nodes {
		fn(n)
		switch n := n.(type) {
		case *AtRule:
			walkNodes(n.Block, fn)
		case *Ruleset:
			walkNodes(n.Block, fn)
		}
	}
}

// FindAll returns every node matching pred in depth-first order.
func FindAll(sheet *Stylesheet, pred func(Node) bool) []Node {
	var found []Node
	Walk(sheet, func(n Node) {
		if pred(n) {
			found = append(found, n)
		}
	})
	return found
}

// WalkTokens visits every token of every node depth-first. The callback
// receives a pointer into the tree, so assignments are visible to String.
func WalkTokens(sheet *Stylesheet, fn func(*Token)) {
	Walk(sheet, func(n Node) {
		var tokens []Token
		switch n := n.(type) {
		case *AtRule:
			tokens = n.Prelude
		case *Ruleset:
			tokens = n.Selector
		case *Declaration:
			tokens = n.Values
		}
		for i := range tokens {
			fn(&tokens[i])
		}
	})
}

// IsFontFace reports whether n is an @font-face rule.
func IsFontFace(n Node) bool {
	r, ok := n.(*AtRule)
	return ok && r.Name == "font-face"
}

// URLValue returns the address inside a url(...) token, unquoted.
// The boolean is false if data is not a url token.
func URLValue(data string) (string, bool) {
	if len(data) < len("url()") || !strings.EqualFold(data[:4], "url(") || data[len(data)-1] != ')' {
		return "", false
	}
	return unquote(strings.TrimSpace(data[4 : len(data)-1])), true
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
