package logic

import (
	"strings"

	"github.com/aretw0/verdict/pkg/domain"
)

// Normalize converts an expression into Disjunctive Normal Form.
//
// Negation is pushed inward with De Morgan's laws until it sits on
// literals, then AND is distributed over OR. The result is cleaned up:
// repeated literals inside a clause are deduplicated (first occurrence
// wins), clauses requiring both polarities of a question are dropped as
// unsatisfiable, and exact duplicate clauses are removed.
//
// An always-false expression yields zero clauses. An always-true
// expression yields a single empty clause. Both are valid DNFs, not
// errors.
func Normalize(e Expr) domain.DNF {
	return sanitize(convert(e, false))
}

// convert walks the expression carrying the pending negation. A negated
// AND becomes an OR of negated operands and vice versa, so negation only
// ever lands on variables and constants.
func convert(e Expr, negated bool) domain.DNF {
	switch v := e.(type) {
	case varExpr:
		return domain.DNF{{domain.Literal{Question: v.name, Positive: !negated}}}
	case boolExpr:
		if v.value != negated {
			return domain.DNF{domain.Clause{}}
		}
		return domain.DNF{}
	case notExpr:
		return convert(v.operand, !negated)
	case andExpr:
		if negated {
			return convertDisjunction(v.operands, true)
		}
		return convertConjunction(v.operands, false)
	case orExpr:
		if negated {
			return convertConjunction(v.operands, true)
		}
		return convertDisjunction(v.operands, false)
	}
	return domain.DNF{}
}

// convertConjunction distributes AND over OR:
// (A or B) and C => (A and C) or (B and C).
func convertConjunction(operands []Expr, negated bool) domain.DNF {
	result := domain.DNF{domain.Clause{}}
	for _, op := range operands {
		result = distribute(result, convert(op, negated))
	}
	return result
}

func convertDisjunction(operands []Expr, negated bool) domain.DNF {
	var result domain.DNF
	for _, op := range operands {
		result = append(result, convert(op, negated)...)
	}
	return result
}

// distribute computes the clause-wise cross product of two DNFs.
func distribute(a, b domain.DNF) domain.DNF {
	result := make(domain.DNF, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make(domain.Clause, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			result = append(result, merged)
		}
	}
	return result
}

func sanitize(d domain.DNF) domain.DNF {
	out := make(domain.DNF, 0, len(d))
	seen := make(map[string]bool, len(d))
	for _, clause := range d {
		if clause.Contradictory() {
			continue
		}
		clause = clause.Dedupe()
		if len(clause) == 0 {
			// A satisfied clause makes the whole disjunction a tautology.
			return domain.DNF{domain.Clause{}}
		}
		key := clauseKey(clause)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, clause)
	}
	return out
}

func clauseKey(c domain.Clause) string {
	var b strings.Builder
	for _, lit := range c {
		b.WriteString(lit.Question)
		if lit.Positive {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}
