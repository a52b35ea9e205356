package dsl

import (
	"fmt"

	"github.com/aretw0/verdict/pkg/domain"
)

// Builder accumulates questions and a rule into a Policy.
type Builder struct {
	questions map[string]string
	logic     string
	errs      []error
}

// New creates a new policy builder.
func New() *Builder {
	return &Builder{
		questions: make(map[string]string),
	}
}

// Ask registers a question under the given id. Re-registering an id is
// an error, reported by Build.
func (b *Builder) Ask(id, prompt string) *Builder {
	if id == "" {
		b.errs = append(b.errs, fmt.Errorf("question id must not be empty"))
		return b
	}
	if _, exists := b.questions[id]; exists {
		b.errs = append(b.errs, fmt.Errorf("question %q registered twice", id))
		return b
	}
	b.questions[id] = prompt
	return b
}

// Rule sets the boolean expression over the question ids. Calling Rule
// twice is an error, reported by Build.
func (b *Builder) Rule(logic string) *Builder {
	if b.logic != "" {
		b.errs = append(b.errs, fmt.Errorf("rule already set to %q", b.logic))
		return b
	}
	b.logic = logic
	return b
}

// Build assembles the Policy, surfacing any errors accumulated while
// building and running the policy's own structural checks.
func (b *Builder) Build() (domain.Policy, error) {
	if len(b.errs) > 0 {
		return domain.Policy{}, fmt.Errorf("building policy: %w", b.errs[0])
	}

	policy := domain.Policy{
		Questions: b.questions,
		Logic:     b.logic,
	}
	if err := policy.Validate(); err != nil {
		return domain.Policy{}, err
	}
	return policy, nil
}
