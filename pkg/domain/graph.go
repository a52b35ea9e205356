package domain

import "fmt"

// Role classifies a node in the decision graph.
type Role int

const (
	// RoleStart is the single graph root. It has no question; its fan-out
	// edges are listed separately on the Graph.
	RoleStart Role = iota
	// RoleQuestion asks one yes/no question and has exactly two out-edges.
	RoleQuestion
	// RoleApprove is the accepting terminal. No out-edges.
	RoleApprove
	// RoleReject is the rejecting terminal. No out-edges.
	RoleReject
)

// NodeID is a handle into the graph's node arena.
type NodeID int

// NoNode marks an absent edge target (terminals, start).
const NoNode NodeID = -1

// Node is one entry in the graph arena. For question nodes Yes and No hold
// the answer-labeled edge targets; for every other role they are NoNode.
type Node struct {
	ID       NodeID
	Role     Role
	Question string
	Yes      NodeID
	No       NodeID
}

// Graph is the compiled decision graph. It is immutable after construction
// and safe for concurrent reads.
type Graph struct {
	nodes      []Node
	start      NodeID
	approve    NodeID
	reject     NodeID
	roots      []NodeID
	prompts    map[string]string
	display    []string
	byQuestion map[string][]NodeID
}

// NewGraph freezes a node arena into a Graph. Display ids are derived from
// arena order: the first node for a question keeps the bare id, later nodes
// for the same question get a numeric suffix ("Q1", "Q1_1", ...).
func NewGraph(nodes []Node, start, approve, reject NodeID, roots []NodeID, prompts map[string]string) *Graph {
	g := &Graph{
		nodes:      append([]Node(nil), nodes...),
		start:      start,
		approve:    approve,
		reject:     reject,
		roots:      append([]NodeID(nil), roots...),
		prompts:    make(map[string]string, len(prompts)),
		display:    make([]string, len(nodes)),
		byQuestion: make(map[string][]NodeID),
	}
	for id, prompt := range prompts {
		g.prompts[id] = prompt
	}

	counts := make(map[string]int)
	for i, n := range g.nodes {
		switch n.Role {
		case RoleStart:
			g.display[i] = "Start"
		case RoleApprove:
			g.display[i] = "Approve"
		case RoleReject:
			g.display[i] = "Reject"
		case RoleQuestion:
			seen := counts[n.Question]
			counts[n.Question] = seen + 1
			if seen == 0 {
				g.display[i] = n.Question
			} else {
				g.display[i] = fmt.Sprintf("%s_%d", n.Question, seen)
			}
			g.byQuestion[n.Question] = append(g.byQuestion[n.Question], n.ID)
		}
	}
	return g
}

// Len returns the number of nodes in the arena.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node for the given handle.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

// Nodes returns a copy of the node arena in construction order.
func (g *Graph) Nodes() []Node { return append([]Node(nil), g.nodes...) }

// Start returns the handle of the start node.
func (g *Graph) Start() NodeID { return g.start }

// Approve returns the handle of the approving terminal.
func (g *Graph) Approve() NodeID { return g.approve }

// Reject returns the handle of the rejecting terminal.
func (g *Graph) Reject() NodeID { return g.reject }

// Roots returns the start node's fan-out targets in insertion order.
func (g *Graph) Roots() []NodeID { return append([]NodeID(nil), g.roots...) }

// DisplayID returns the stable serialization id for a node.
func (g *Graph) DisplayID(id NodeID) string { return g.display[id] }

// Prompt returns the prompt text for a question id.
func (g *Graph) Prompt(question string) (string, bool) {
	p, ok := g.prompts[question]
	return p, ok
}

// NodesFor returns every arena node evaluating the given question, in
// construction order. The same question may appear as multiple nodes when
// it is evaluated in different merge contexts.
func (g *Graph) NodesFor(question string) []NodeID {
	return append([]NodeID(nil), g.byQuestion[question]...)
}
