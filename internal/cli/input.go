// Package cli holds the input plumbing shared by the verdict commands:
// policy files on disk, inline data objects, and the built-in example.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/verdict/pkg/domain"
)

// policyFile mirrors the on-disk policy document.
type policyFile struct {
	Questions map[string]string `yaml:"questions" json:"questions"`
	Logic     string            `yaml:"logic" json:"logic"`
}

// LoadPolicyFile reads a policy from a YAML (or JSON, which YAML
// subsumes) file.
func LoadPolicyFile(path string) (domain.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Policy{}, fmt.Errorf("reading policy file: %w", err)
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Policy{}, fmt.Errorf("parsing policy file %s: %w", path, err)
	}

	return domain.Policy{
		Questions: file.Questions,
		Logic:     file.Logic,
	}, nil
}

// dataObject decodes the inline --data payload: a "logic" key plus one
// entry per question. The "remain" capture collects the question map so
// the payload stays flat, matching how policies read naturally.
type dataObject struct {
	Logic string         `mapstructure:"logic"`
	Rest  map[string]any `mapstructure:",remain"`
}

// DecodePolicyData parses an inline JSON object of the form
// {"Q1": "prompt", ..., "logic": "expr"} into a Policy.
func DecodePolicyData(raw string) (domain.Policy, error) {
	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return domain.Policy{}, fmt.Errorf("parsing data object: %w", err)
	}

	var obj dataObject
	if err := mapstructure.Decode(generic, &obj); err != nil {
		return domain.Policy{}, fmt.Errorf("decoding data object: %w", err)
	}

	questions := make(map[string]string, len(obj.Rest))
	for id, prompt := range obj.Rest {
		text, ok := prompt.(string)
		if !ok {
			return domain.Policy{}, fmt.Errorf("question %q: prompt must be a string, got %T", id, prompt)
		}
		questions[id] = text
	}

	return domain.Policy{
		Questions: questions,
		Logic:     obj.Logic,
	}, nil
}

// ExamplePolicy returns the built-in demo policy used when no input is
// given: a project go/no-go checklist.
func ExamplePolicy() domain.Policy {
	return domain.Policy{
		Questions: map[string]string{
			"Q1": "Is the budget approved?",
			"Q2": "Is there an executive sponsor?",
			"Q3": "Is the team fully staffed?",
			"Q4": "Are there unresolved legal blockers?",
			"Q5": "Is the vendor contract unsigned?",
		},
		Logic: "(Q1 and not (Q5 and Q4)) or (Q2 and Q3)",
	}
}
