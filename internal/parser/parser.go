// Package parser turns an infix boolean expression string into a
// logic.Expr. The heavy lifting is delegated to the HCL expression
// parser; this package only translates the resulting syntax tree into
// the small AND/OR/NOT/variable vocabulary the normalizer understands.
package parser

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/logic"
)

// Parse parses an infix boolean expression over question identifiers.
//
// Both operator spellings are accepted: the word forms "and", "or",
// "not" (plus "True"/"False") and the HCL forms "&&", "||", "!",
// "true"/"false". Parentheses group as usual.
func Parse(src string) (logic.Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty expression", domain.ErrMalformedExpression)
	}

	hclExpr, diags := hclsyntax.ParseExpression([]byte(rewriteWordOperators(src)), "logic", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedExpression, diags.Error())
	}

	return translate(hclExpr)
}

// rewriteWordOperators maps the word operators onto their HCL
// equivalents so a single grammar handles both spellings. Only whole
// identifier tokens are rewritten; "android" stays untouched.
func rewriteWordOperators(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		c := src[i]
		if !isIdentStart(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(src) && isIdentPart(src[j]) {
			j++
		}
		switch word := src[i:j]; word {
		case "and":
			b.WriteString("&&")
		case "or":
			b.WriteString("||")
		case "not":
			b.WriteString("!")
		case "True":
			b.WriteString("true")
		case "False":
			b.WriteString("false")
		default:
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// translate converts the HCL syntax tree into a logic.Expr, rejecting
// every construct outside the boolean vocabulary.
func translate(expr hclsyntax.Expression) (logic.Expr, error) {
	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return nil, fmt.Errorf("%w: compound reference %q", domain.ErrMalformedExpression, traversalName(e.Traversal))
		}
		return logic.Var(e.Traversal.RootName()), nil

	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpLogicalNot {
			return nil, fmt.Errorf("%w: unsupported unary operator", domain.ErrMalformedExpression)
		}
		operand, err := translate(e.Val)
		if err != nil {
			return nil, err
		}
		return logic.Not(operand), nil

	case *hclsyntax.BinaryOpExpr:
		lhs, err := translate(e.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := translate(e.RHS)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case hclsyntax.OpLogicalAnd:
			return logic.And(lhs, rhs), nil
		case hclsyntax.OpLogicalOr:
			return logic.Or(lhs, rhs), nil
		default:
			return nil, fmt.Errorf("%w: unsupported binary operator", domain.ErrMalformedExpression)
		}

	case *hclsyntax.ParenthesesExpr:
		return translate(e.Expression)

	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Bool {
			return nil, fmt.Errorf("%w: non-boolean literal", domain.ErrMalformedExpression)
		}
		return logic.Bool(e.Val.True()), nil

	default:
		return nil, fmt.Errorf("%w: unsupported construct %T", domain.ErrMalformedExpression, expr)
	}
}

func traversalName(t hcl.Traversal) string {
	var parts []string
	for _, step := range t {
		if root, ok := step.(hcl.TraverseRoot); ok {
			parts = append(parts, root.Name)
		}
		if attr, ok := step.(hcl.TraverseAttr); ok {
			parts = append(parts, attr.Name)
		}
	}
	return strings.Join(parts, ".")
}
