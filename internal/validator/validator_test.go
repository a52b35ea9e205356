package validator

import (
	"strings"
	"testing"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/logic"
)

func TestValidateGraph(t *testing.T) {
	// Scenario A: a compiled graph passes.
	expr := logic.Or(
		logic.And(logic.Var("Q1"), logic.Var("Q3")),
		logic.And(logic.Not(logic.Var("Q2")), logic.Not(logic.Var("Q4"))),
	)
	g, err := compiler.Compile(logic.Normalize(expr), map[string]string{
		"Q1": "a?", "Q2": "b?", "Q3": "c?", "Q4": "d?",
	})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if err := ValidateGraph(g); err != nil {
		t.Errorf("Scenario A (Valid) failed: %v", err)
	}

	// Trivial graphs (Start straight to a terminal) also pass.
	empty, err := compiler.Compile(domain.DNF{}, nil)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if err := ValidateGraph(empty); err != nil {
		t.Errorf("empty DNF graph should validate: %v", err)
	}
}

func TestValidateGraphDetectsMissingEdge(t *testing.T) {
	// Hand-build a broken graph: a question node without a No edge.
	nodes := []domain.Node{
		{ID: 0, Role: domain.RoleStart, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 1, Role: domain.RoleApprove, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 2, Role: domain.RoleReject, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 3, Role: domain.RoleQuestion, Question: "Q1", Yes: 1, No: domain.NoNode},
	}
	g := domain.NewGraph(nodes, 0, 1, 2, []domain.NodeID{3}, map[string]string{"Q1": "a?"})

	err := ValidateGraph(g)
	if err == nil {
		t.Fatal("broken graph should have failed validation")
	}
	if !strings.Contains(err.Error(), "missing an answer edge") {
		t.Errorf("expected missing-edge error, got: %v", err)
	}
}

func TestValidateGraphDetectsCycle(t *testing.T) {
	// Two question nodes pointing at each other.
	nodes := []domain.Node{
		{ID: 0, Role: domain.RoleStart, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 1, Role: domain.RoleApprove, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 2, Role: domain.RoleReject, Yes: domain.NoNode, No: domain.NoNode},
		{ID: 3, Role: domain.RoleQuestion, Question: "Q1", Yes: 4, No: 2},
		{ID: 4, Role: domain.RoleQuestion, Question: "Q2", Yes: 3, No: 1},
	}
	g := domain.NewGraph(nodes, 0, 1, 2, []domain.NodeID{3}, map[string]string{"Q1": "a?", "Q2": "b?"})

	err := ValidateGraph(g)
	if err == nil {
		t.Fatal("cyclic graph should have failed validation")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("expected cycle error, got: %v", err)
	}
}
