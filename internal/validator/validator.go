// Package validator checks a compiled decision graph against its
// structural guarantees. The compiler upholds them by construction; the
// validator re-derives them independently so `verdict validate` can vouch
// for any graph it is handed.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/verdict/pkg/domain"
)

// ValidateGraph crawls the graph from Start and reports every violation
// of the structural invariants: totality of question nodes, acyclicity,
// and termination of every path in a terminal.
func ValidateGraph(g *domain.Graph) error {
	var errors []string

	if len(g.Roots()) == 0 {
		errors = append(errors, "start node has no fan-out edges")
	}

	// Crawl from Start, checking totality along the way.
	visited := make(map[domain.NodeID]bool)
	queue := append([]domain.NodeID{}, g.Roots()...)

	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		if currentID < 0 || int(currentID) >= g.Len() {
			errors = append(errors, fmt.Sprintf("edge target %d is outside the node arena", currentID))
			continue
		}

		node := g.Node(currentID)
		switch node.Role {
		case domain.RoleApprove, domain.RoleReject:
			// Terminals have no out-edges.
		case domain.RoleQuestion:
			for _, target := range []domain.NodeID{node.Yes, node.No} {
				if target == domain.NoNode {
					errors = append(errors, fmt.Sprintf("question node '%s' is missing an answer edge", g.DisplayID(currentID)))
					continue
				}
				if !visited[target] {
					queue = append(queue, target)
				}
			}
		default:
			errors = append(errors, fmt.Sprintf("node '%s' has unexpected role in traversal", g.DisplayID(currentID)))
		}
	}

	if cycle := findCycle(g); cycle != "" {
		errors = append(errors, fmt.Sprintf("cycle detected through '%s'", cycle))
	}

	if !visited[g.Approve()] && !visited[g.Reject()] {
		errors = append(errors, "no terminal node is reachable from Start")
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// findCycle runs a coloring DFS over the out-edges and returns the
// display id of a node on a cycle, or "" when the graph is acyclic.
func findCycle(g *domain.Graph) string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // fully explored
	)
	color := make([]int, g.Len())

	var visit func(id domain.NodeID) string
	visit = func(id domain.NodeID) string {
		color[id] = gray
		node := g.Node(id)
		if node.Role == domain.RoleQuestion {
			for _, target := range []domain.NodeID{node.Yes, node.No} {
				if target < 0 || int(target) >= g.Len() {
					continue
				}
				switch color[target] {
				case gray:
					return g.DisplayID(target)
				case white:
					if hit := visit(target); hit != "" {
						return hit
					}
				}
			}
		}
		color[id] = black
		return ""
	}

	for _, root := range g.Roots() {
		if color[root] == white {
			if hit := visit(root); hit != "" {
				return hit
			}
		}
	}
	return ""
}
