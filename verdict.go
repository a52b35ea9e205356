package verdict

import (
	"log/slog"

	"github.com/aretw0/verdict/internal/compiler"
	"github.com/aretw0/verdict/internal/logging"
	"github.com/aretw0/verdict/internal/parser"
	"github.com/aretw0/verdict/internal/presentation/graph"
	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/logic"
)

// Version is the release version of the verdict module.
var Version = "0.3.0"

// Engine is the high-level entry point for the Verdict library.
// It wraps the parser, normalizer and graph compiler behind one call.
type Engine struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger injects a custom logger. The default engine logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile parses the policy's logic, normalizes it to DNF and compiles
// the decision graph.
func (e *Engine) Compile(p domain.Policy) (*domain.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	expr, err := parser.Parse(p.Logic)
	if err != nil {
		return nil, err
	}

	dnf := logic.Normalize(expr)
	e.logger.Debug("normalized expression",
		"logic", p.Logic,
		"clauses", len(dnf),
		"questions", len(p.Questions))

	g, err := compiler.Compile(dnf, p.Questions)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("compiled decision graph", "nodes", g.Len())
	return g, nil
}

// Compile is a convenience wrapper around a default Engine.
func Compile(p domain.Policy, opts ...Option) (*domain.Graph, error) {
	return New(opts...).Compile(p)
}

// RenderMermaid renders the graph as a Mermaid flowchart document.
func RenderMermaid(g *domain.Graph) string {
	return graph.GenerateMermaid(g)
}

// RenderDAG renders the graph as a compact JSON document.
func RenderDAG(g *domain.Graph) ([]byte, error) {
	return graph.GenerateDAG(g)
}
