/*
Package logic models boolean expressions over named questions and
normalizes them into Disjunctive Normal Form.

Expressions are built either by the parser (from an infix string) or
programmatically with the combinators:

	expr := logic.Or(
		logic.And(logic.Var("Q1"), logic.Var("Q3")),
		logic.And(logic.Not(logic.Var("Q2")), logic.Not(logic.Var("Q4"))),
	)
	dnf := logic.Normalize(expr)

The package is pure: no I/O, no shared state, deterministic output.
*/
package logic
