package domain

import "fmt"

// Question pairs a caller-supplied id (e.g. "Q1") with its prompt text.
type Question struct {
	ID     string `json:"id" yaml:"id"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// Policy is the full input for one compilation: the question catalog and
// the boolean logic expression over the question ids.
type Policy struct {
	Questions map[string]string `json:"questions" yaml:"questions"`
	Logic     string            `json:"logic" yaml:"logic"`
}

// Validate performs shallow structural checks on the policy. Cross checks
// between the logic and the catalog (unknown ids) happen at compile time.
func (p Policy) Validate() error {
	if p.Logic == "" {
		return fmt.Errorf("%w: empty logic expression", ErrMalformedExpression)
	}
	for id := range p.Questions {
		if id == "" {
			return fmt.Errorf("%w: empty question id", ErrUnknownQuestion)
		}
	}
	return nil
}
