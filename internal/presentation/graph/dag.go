package graph

import (
	"encoding/json"

	"github.com/aretw0/verdict/pkg/domain"
)

// DAG is the structured JSON projection of a decision graph.
type DAG struct {
	Nodes         map[string]string              `json:"nodes"`
	Edges         map[string]map[string][]string `json:"edges"`
	TerminalNodes map[string]string              `json:"terminal_nodes"`
}

// BuildDAG projects the graph into its JSON document shape. The Start
// entry carries the fan-out under the "Start" label; every question node
// carries exactly the "Yes" and "No" labels.
func BuildDAG(g *domain.Graph) DAG {
	dag := DAG{
		Nodes: map[string]string{"Start": "Decision Point"},
		Edges: map[string]map[string][]string{},
		TerminalNodes: map[string]string{
			"Approve": "Yes",
			"Reject":  "No",
		},
	}

	for _, n := range g.Nodes() {
		if n.Role != domain.RoleQuestion {
			continue
		}
		label := n.Question
		if prompt, ok := g.Prompt(n.Question); ok {
			label = prompt
		}
		dag.Nodes[g.DisplayID(n.ID)] = label
	}

	var starts []string
	for _, root := range g.Roots() {
		starts = append(starts, g.DisplayID(root))
	}
	dag.Edges["Start"] = map[string][]string{"Start": starts}

	for _, n := range g.Nodes() {
		if n.Role != domain.RoleQuestion {
			continue
		}
		dag.Edges[g.DisplayID(n.ID)] = map[string][]string{
			"Yes": {g.DisplayID(n.Yes)},
			"No":  {g.DisplayID(n.No)},
		}
	}

	return dag
}

// GenerateDAG renders the JSON projection in compact form.
func GenerateDAG(g *domain.Graph) ([]byte, error) {
	return json.Marshal(BuildDAG(g))
}
