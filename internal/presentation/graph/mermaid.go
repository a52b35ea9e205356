// Package graph renders the compiled decision graph into its output
// formats. Both renderers are pure projections of the domain.Graph: they
// read the node arena and edge targets and never mutate or re-derive
// graph logic.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/verdict/pkg/domain"
)

// GenerateMermaid produces Mermaid flowchart syntax for a decision graph.
// It applies semantic styling:
// - Start: orange entry point
// - Approve: green terminal
// - Reject: crimson terminal
// Question nodes use the default style with their prompt as the label.
func GenerateMermaid(g *domain.Graph) string {
	var sb strings.Builder
	sb.WriteString("%%{init: {'flowchart': {'rankSpacing': 25, 'nodeSpacing': 50, 'padding': 5}}}%%\n")
	sb.WriteString("flowchart TD\n")

	sb.WriteString("Start[\"Start\"]\n")
	for _, n := range g.Nodes() {
		if n.Role != domain.RoleQuestion {
			continue
		}
		label := n.Question
		if prompt, ok := g.Prompt(n.Question); ok {
			label = prompt
		}
		sb.WriteString(fmt.Sprintf("%s[\"%s\"]\n", sanitizeMermaidID(g.DisplayID(n.ID)), escapeMermaidLabel(label)))
	}
	sb.WriteString("Approve[\"Yes\"]\n")
	sb.WriteString("Reject[\"No\"]\n")

	for _, root := range g.Roots() {
		sb.WriteString(fmt.Sprintf("Start --> %s\n", sanitizeMermaidID(g.DisplayID(root))))
	}
	for _, n := range g.Nodes() {
		if n.Role != domain.RoleQuestion {
			continue
		}
		src := sanitizeMermaidID(g.DisplayID(n.ID))
		sb.WriteString(fmt.Sprintf("%s -->|Yes| %s\n", src, sanitizeMermaidID(g.DisplayID(n.Yes))))
		sb.WriteString(fmt.Sprintf("%s -->|No| %s\n", src, sanitizeMermaidID(g.DisplayID(n.No))))
	}

	sb.WriteString("classDef default fill:#f0f0f0,stroke:#333,stroke-width:1px,color:black\n")
	sb.WriteString("classDef start fill:#FFA500,stroke:#333,color:white\n")
	sb.WriteString("classDef approval fill:#4CAF50,stroke:#333,color:white\n")
	sb.WriteString("classDef rejection fill:#DC143C,stroke:#333,color:white\n")
	sb.WriteString("class Start start\n")
	sb.WriteString("class Approve approval\n")
	sb.WriteString("class Reject rejection\n")
	sb.WriteString("linkStyle default stroke:#333,stroke-width:2px\n")

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
