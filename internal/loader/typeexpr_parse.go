package loader

import (
	"fmt"
	"strings"

	"github.com/lattice-lang/latticec/internal/ast"
	"github.com/lattice-lang/latticec/internal/source"
)

// parseTypeExpr parses the compact textual type syntax a fixture writes:
// `dynamic`, `Name`, `prefix.Name`, or `Name<Arg, Arg, ...>` with arguments
// recursively of the same shape. pos is attached to every node produced,
// since fixtures have no real source positions of their own — one
// synthetic position per declaring class is precise enough for tests and
// for a CLI that only reports file:class-level diagnostics.
func parseTypeExpr(text string, pos source.Position) (ast.TypeExpr, error) {
	p := &exprParser{text: text, pos: pos}
	expr, err := p.parse()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.text) {
		return nil, fmt.Errorf("loader: unexpected trailing text %q in type expression %q", p.text[p.i:], text)
	}
	return expr, nil
}

type exprParser struct {
	text string
	i    int
	pos  source.Position
}

func (p *exprParser) parse() (ast.TypeExpr, error) {
	name := p.ident()
	if name == "" {
		return nil, fmt.Errorf("loader: expected identifier at %d in %q", p.i, p.text)
	}

	prefix := ""
	if p.peek() == '.' {
		p.i++
		prefix = name
		name = p.ident()
		if name == "" {
			return nil, fmt.Errorf("loader: expected identifier after '.' in %q", p.text)
		}
	}

	if prefix == "" && name == "dynamic" {
		return &ast.DynamicTypeExpr{Token: p.pos}, nil
	}

	ref := &ast.Identifier{Prefix: prefix, Name: name, Token: p.pos}
	named := &ast.NamedTypeExpr{Ref: ref, Token: p.pos}

	if p.peek() == '<' {
		p.i++
		for {
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			named.Args = append(named.Args, arg)
			switch p.peek() {
			case ',':
				p.i++
				continue
			case '>':
				p.i++
			default:
				return nil, fmt.Errorf("loader: expected ',' or '>' at %d in %q", p.i, p.text)
			}
			break
		}
	}
	return named, nil
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.i >= len(p.text) {
		return 0
	}
	return p.text[p.i]
}

func (p *exprParser) skipSpace() {
	for p.i < len(p.text) && p.text[p.i] == ' ' {
		p.i++
	}
}

func (p *exprParser) ident() string {
	p.skipSpace()
	start := p.i
	for p.i < len(p.text) && isIdentByte(p.text[p.i]) {
		p.i++
	}
	return p.text[start:p.i]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// mustParseTypeExprs parses a list of textual type expressions, panicking
// on a malformed fixture — a fixture-authoring bug, not a user-program
// error the core's diagnostic set is meant to cover.
func mustParseTypeExprs(texts []string, pos source.Position) []ast.TypeExpr {
	out := make([]ast.TypeExpr, len(texts))
	for i, t := range texts {
		expr, err := parseTypeExpr(strings.TrimSpace(t), pos)
		if err != nil {
			panic(err)
		}
		out[i] = expr
	}
	return out
}
