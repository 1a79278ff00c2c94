package css

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse parses CSS text into a Stylesheet. Parsing is forgiving:
// malformed input yields whatever rules could be recovered, never an error.
// Comments are not retained.
func Parse(text string) *Stylesheet {
	p := css.NewParser(parse.NewInputString(text), false)
	return &Stylesheet{Nodes: parseNodes(p, true)}
}

// parseNodes consumes grammar items until the end of the enclosing block.
func parseNodes(p *css.Parser, top bool) []Node {
	var nodes []Node
	var selector []Token

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			return nodes

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			// A stray closing brace at the top level is ignored.
			if top {
				continue
			}
			return nodes

		case css.AtRuleGrammar:
			nodes = append(nodes, &AtRule{
				Name:    atRuleName(data),
				Prelude: tokens(p.Values()),
			})

		case css.BeginAtRuleGrammar:
			r := &AtRule{
				Name:     atRuleName(data),
				Prelude:  tokens(p.Values()),
				HasBlock: true,
			}
			r.Block = parseNodes(p, false)
			nodes = append(nodes, r)

		case css.QualifiedRuleGrammar:
			// One selector of a comma-separated list; the last one arrives
			// with BeginRulesetGrammar.
			selector = append(selector, tokens(p.Values())...)
			selector = append(selector, Token{Type: css.CommaToken, Data: ","})

		case css.BeginRulesetGrammar:
			rs := &Ruleset{Selector: append(selector, tokens(p.Values())...)}
			selector = nil
			rs.Block = parseNodes(p, false)
			nodes = append(nodes, rs)

		case css.DeclarationGrammar:
			nodes = append(nodes, &Declaration{
				Property: string(data),
				Values:   tokens(p.Values()),
			})

		case css.CustomPropertyGrammar:
			nodes = append(nodes, &Declaration{
				Property: string(data),
				Values:   tokens(p.Values()),
				Custom:   true,
			})
		}
	}
}

func atRuleName(data []byte) string {
	return strings.ToLower(strings.TrimPrefix(string(data), "@"))
}

// tokens copies parser tokens, whose data is only valid until the next call.
func tokens(values []css.Token) []Token {
	if len(values) == 0 {
		return nil
	}
	out := make([]Token, len(values))
	for i, v := range values {
		out[i] = Token{Type: v.TokenType, Data: string(v.Data)}
	}
	return out
}
