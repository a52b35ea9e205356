// Package compiler turns a normalized DNF into a decision graph.
//
// Each clause compiles to a chain of question nodes: agreeing with a
// literal advances along the chain (the last agreement reaches Approve),
// disagreeing falls through to the remaining clauses (the last
// disagreement reaches Reject). Chains that share a prefix of signed
// literals share nodes, and any two positions with an identical remaining
// clause set share a single subgraph, so path history can never change
// post-merge behavior.
package compiler

import (
	"fmt"
	"strings"

	"github.com/aretw0/verdict/pkg/domain"
)

// Compile builds the decision graph for a DNF against a question catalog.
//
// Every question id referenced by the DNF must exist in the catalog. A
// DNF with zero clauses routes Start straight to Reject; a DNF holding a
// single empty clause routes Start straight to Approve.
func Compile(dnf domain.DNF, questions map[string]string) (*domain.Graph, error) {
	if err := checkQuestions(dnf, questions); err != nil {
		return nil, err
	}

	b := &builder{
		memo: make(map[string]domain.NodeID),
	}
	b.start = b.add(domain.Node{Role: domain.RoleStart, Yes: domain.NoNode, No: domain.NoNode})
	b.approve = b.add(domain.Node{Role: domain.RoleApprove, Yes: domain.NoNode, No: domain.NoNode})
	b.reject = b.add(domain.Node{Role: domain.RoleReject, Yes: domain.NoNode, No: domain.NoNode})

	entry := b.build(dnf)

	return domain.NewGraph(b.nodes, b.start, b.approve, b.reject, []domain.NodeID{entry}, questions), nil
}

func checkQuestions(dnf domain.DNF, questions map[string]string) error {
	referenced := dnf.Questions()
	if len(referenced) > 0 && len(questions) == 0 {
		return fmt.Errorf("%w: expression references %d question(s)", domain.ErrEmptyQuestionSet, len(referenced))
	}
	for _, id := range referenced {
		if _, ok := questions[id]; !ok {
			return fmt.Errorf("%w: %q", domain.ErrUnknownQuestion, id)
		}
	}
	return nil
}

type builder struct {
	nodes   []domain.Node
	start   domain.NodeID
	approve domain.NodeID
	reject  domain.NodeID
	// memo maps a canonical remaining-clause set to its compiled entry
	// node. Two merge candidates are legal to share exactly when their
	// remaining clause sets match, so memoizing on that key realizes the
	// merge rule.
	memo map[string]domain.NodeID
}

func (b *builder) add(n domain.Node) domain.NodeID {
	n.ID = domain.NodeID(len(b.nodes))
	b.nodes = append(b.nodes, n)
	return n.ID
}

// build compiles the remaining clause set into its entry node.
//
// The first clause's first literal becomes the next question. All clauses
// opening with the same signed literal are consumed together (prefix
// merge, first-clause-wins order); the rest stay pending on both answers.
func (b *builder) build(clauses []domain.Clause) domain.NodeID {
	if len(clauses) == 0 {
		return b.reject
	}
	for _, c := range clauses {
		// An exhausted clause is already satisfied, and satisfying any
		// clause of a disjunction approves.
		if len(c) == 0 {
			return b.approve
		}
	}

	key := setKey(clauses)
	if id, ok := b.memo[key]; ok {
		return id
	}

	pivot := clauses[0][0]
	matched, rest := partition(clauses, pivot)

	// Agreeing with the pivot consumes it from every matched clause; the
	// unmatched clauses are still live alternatives on both branches.
	agreeSet := make([]domain.Clause, 0, len(clauses))
	for _, c := range matched {
		agreeSet = append(agreeSet, c[1:])
	}
	agreeSet = append(agreeSet, rest...)

	agree := b.build(agreeSet)
	disagree := b.build(rest)

	node := domain.Node{Role: domain.RoleQuestion, Question: pivot.Question}
	if pivot.Positive {
		node.Yes, node.No = agree, disagree
	} else {
		node.Yes, node.No = disagree, agree
	}

	id := b.add(node)
	b.memo[key] = id
	return id
}

// partition splits the clause set into those opening with the pivot
// literal (same question, same polarity) and everything else, keeping the
// original order on both sides. A clause opening with the pivot's
// question at opposite polarity lands in rest: it must keep its own node.
func partition(clauses []domain.Clause, pivot domain.Literal) (matched, rest []domain.Clause) {
	for _, c := range clauses {
		if len(c) > 0 && c[0] == pivot {
			matched = append(matched, c)
		} else {
			rest = append(rest, c)
		}
	}
	return matched, rest
}

func setKey(clauses []domain.Clause) string {
	var b strings.Builder
	for _, c := range clauses {
		for _, lit := range c {
			b.WriteString(lit.Question)
			if lit.Positive {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
			b.WriteByte('\x1f')
		}
		b.WriteByte('\x1e')
	}
	return b.String()
}
