package stylesheet

import (
	"bytes"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is a single property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// FormatRule renders a class rule in the canonical single-line form, e.g.
// ".pFF0000 { color: #FF0000 !important; }".
func FormatRule(class string, decls ...Declaration) string {
	var b strings.Builder
	b.WriteByte('.')
	b.WriteString(class)
	b.WriteString(" {")
	for _, d := range decls {
		b.WriteByte(' ')
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	b.WriteString(" }")
	return b.String()
}

// ParseRules reads a stylesheet and returns its single-class rules in
// canonical form. Rules with other selectors are skipped; at-rules are not
// expected in generated sheets and are skipped too.
func ParseRules(data []byte) ([]Rule, error) {
	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	var rules []Rule
	for {
		gt, _, raw := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				return rules, fmt.Errorf("parse stylesheet: %w", err)
			}
			return rules, nil
		case css.BeginAtRuleGrammar:
			skipBlock(parser)
		case css.BeginRulesetGrammar:
			class, ok := classSelector(raw, parser.Values())
			decls := parseDeclarations(parser)
			if ok {
				rules = append(rules, Rule{Class: class, Text: FormatRule(class, decls...)})
			}
		}
	}
}

func classSelector(raw []byte, values []css.Token) (string, bool) {
	var b strings.Builder
	b.Write(raw)
	for _, v := range values {
		b.Write(v.Data)
	}
	selector := strings.TrimSpace(b.String())
	if !strings.HasPrefix(selector, ".") {
		return "", false
	}
	class := selector[1:]
	if class == "" || strings.ContainsAny(class, " ,.>+~:[") {
		return "", false
	}
	return class, true
}

func parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, raw := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls
		case css.DeclarationGrammar:
			decls = append(decls, Declaration{
				Property: string(raw),
				Value:    joinTokens(parser.Values()),
			})
		}
	}
}

func joinTokens(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
