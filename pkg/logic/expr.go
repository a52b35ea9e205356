package logic

import "strings"

// Expr is an immutable boolean expression over named questions.
// The concrete variants are Var, Not, And, Or and Bool.
type Expr interface {
	// String renders the expression in infix word syntax.
	String() string

	isExpr()
}

type varExpr struct{ name string }

type notExpr struct{ operand Expr }

type andExpr struct{ operands []Expr }

type orExpr struct{ operands []Expr }

type boolExpr struct{ value bool }

func (varExpr) isExpr()  {}
func (notExpr) isExpr()  {}
func (andExpr) isExpr()  {}
func (orExpr) isExpr()   {}
func (boolExpr) isExpr() {}

// Var references a question by id.
func Var(name string) Expr { return varExpr{name: name} }

// Not negates an expression.
func Not(operand Expr) Expr { return notExpr{operand: operand} }

// And connects expressions conjunctively. A single operand is returned
// unchanged.
func And(operands ...Expr) Expr {
	if len(operands) == 1 {
		return operands[0]
	}
	return andExpr{operands: operands}
}

// Or connects expressions disjunctively. A single operand is returned
// unchanged.
func Or(operands ...Expr) Expr {
	if len(operands) == 1 {
		return operands[0]
	}
	return orExpr{operands: operands}
}

// Bool is a constant expression (tautology or contradiction).
func Bool(value bool) Expr { return boolExpr{value: value} }

func (e varExpr) String() string { return e.name }

func (e notExpr) String() string { return "not " + parenthesize(e.operand) }

func (e andExpr) String() string { return joinOperands(e.operands, " and ") }

func (e orExpr) String() string { return joinOperands(e.operands, " or ") }

func (e boolExpr) String() string {
	if e.value {
		return "true"
	}
	return "false"
}

func joinOperands(operands []Expr, sep string) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = parenthesize(op)
	}
	return strings.Join(parts, sep)
}

func parenthesize(e Expr) string {
	switch e.(type) {
	case andExpr, orExpr:
		return "(" + e.String() + ")"
	default:
		return e.String()
	}
}

// Variables returns the distinct question ids referenced by the
// expression, in first-occurrence order.
func Variables(e Expr) []string {
	var out []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case varExpr:
			if !seen[v.name] {
				seen[v.name] = true
				out = append(out, v.name)
			}
		case notExpr:
			walk(v.operand)
		case andExpr:
			for _, op := range v.operands {
				walk(op)
			}
		case orExpr:
			for _, op := range v.operands {
				walk(op)
			}
		}
	}
	walk(e)
	return out
}

// Eval evaluates the expression under a complete truth assignment.
// Unassigned variables evaluate to false.
func Eval(e Expr, assignment map[string]bool) bool {
	switch v := e.(type) {
	case varExpr:
		return assignment[v.name]
	case notExpr:
		return !Eval(v.operand, assignment)
	case andExpr:
		for _, op := range v.operands {
			if !Eval(op, assignment) {
				return false
			}
		}
		return true
	case orExpr:
		for _, op := range v.operands {
			if Eval(op, assignment) {
				return true
			}
		}
		return false
	case boolExpr:
		return v.value
	}
	return false
}
