package domain

// Literal is a signed reference to a question: the variable id plus the
// polarity the clause requires. It is an immutable value type.
type Literal struct {
	Question string
	Positive bool
}

// Negate returns the literal with flipped polarity.
func (l Literal) Negate() Literal {
	return Literal{Question: l.Question, Positive: !l.Positive}
}

// Clause is an ordered set of AND-connected literals.
type Clause []Literal

// Contradictory reports whether the clause requires both polarities of the
// same question. Such a clause can never be satisfied.
func (c Clause) Contradictory() bool {
	seen := make(map[string]bool, len(c))
	for _, lit := range c {
		if pos, ok := seen[lit.Question]; ok && pos != lit.Positive {
			return true
		}
		seen[lit.Question] = lit.Positive
	}
	return false
}

// Dedupe returns the clause with repeated literals removed, preserving
// first-occurrence order.
func (c Clause) Dedupe() Clause {
	out := make(Clause, 0, len(c))
	seen := make(map[Literal]bool, len(c))
	for _, lit := range c {
		if seen[lit] {
			continue
		}
		seen[lit] = true
		out = append(out, lit)
	}
	return out
}

// DNF is an OR-connected sequence of clauses, in the order extracted from
// the expression. Order only affects graph layout, not outcome.
type DNF []Clause

// Questions returns the distinct question ids referenced by the DNF, in
// first-occurrence order.
func (d DNF) Questions() []string {
	var out []string
	seen := make(map[string]bool)
	for _, clause := range d {
		for _, lit := range clause {
			if !seen[lit.Question] {
				seen[lit.Question] = true
				out = append(out, lit.Question)
			}
		}
	}
	return out
}
