package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a stylesheet. Selectors are .class, #id, a node type, or any of those
// followed by ":hover"; selector lists share one block. At-rules are skipped. Later
// rules override earlier ones for the same property.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInput(strings.NewReader(content)), false)

	var selectors []string
	var props map[string]string
	depth := 0 // nesting inside at-rule blocks
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if p.Err() == io.EOF {
				return sheet, nil
			}
			return nil, fmt.Errorf("parse css: %w", p.Err())
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		case css.QualifiedRuleGrammar:
			selectors = append(selectors, joinValues(p.Values()))
		case css.BeginRulesetGrammar:
			selectors = append(selectors, joinValues(p.Values()))
			props = make(map[string]string)
		case css.DeclarationGrammar:
			if props != nil {
				props[strings.ToLower(string(data))] = joinValues(p.Values())
			}
		case css.EndRulesetGrammar:
			if depth == 0 {
				for _, sel := range selectors {
					if sel = strings.TrimSpace(sel); sel != "" {
						sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
					}
				}
			}
			selectors, props = nil, nil
		}
	}
}

// joinValues concatenates tokens, keeping one space between words so shorthand values
// like "1px solid #333" survive whether or not the parser reports whitespace.
func joinValues(vals []css.Token) string {
	var b strings.Builder
	prevWord := false
	space := false
	for _, v := range vals {
		if v.TokenType == css.WhitespaceToken {
			space = true
			continue
		}
		word := isWord(v.TokenType)
		if b.Len() > 0 && (space || (prevWord && word)) {
			b.WriteByte(' ')
		}
		b.Write(v.Data)
		prevWord, space = word, false
	}
	return b.String()
}

func isWord(tt css.TokenType) bool {
	switch tt {
	case css.IdentToken, css.NumberToken, css.DimensionToken, css.PercentageToken, css.HashToken:
		return true
	}
	return false
}
