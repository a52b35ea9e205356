package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPolicy(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPolicyFile(t *testing.T) {
	path := writeTempPolicy(t, "policy.yaml", `
questions:
  Q1: "Is it raining?"
  Q2: "Do you have a raincoat?"
logic: "Q1 and not Q2"
`)

	policy, err := LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Q1 and not Q2", policy.Logic)
	assert.Equal(t, "Is it raining?", policy.Questions["Q1"])
	assert.Len(t, policy.Questions, 2)
}

func TestLoadPolicyFileJSON(t *testing.T) {
	// YAML is a superset of JSON, so .json policies load through the
	// same path.
	path := writeTempPolicy(t, "policy.json",
		`{"questions": {"Q1": "Is it raining?"}, "logic": "Q1"}`)

	policy, err := LoadPolicyFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Q1", policy.Logic)
	assert.Equal(t, "Is it raining?", policy.Questions["Q1"])
}

func TestLoadPolicyFileErrors(t *testing.T) {
	_, err := LoadPolicyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeTempPolicy(t, "broken.yaml", "questions: [not: a: map")
	_, err = LoadPolicyFile(path)
	assert.Error(t, err)
}

func TestDecodePolicyData(t *testing.T) {
	policy, err := DecodePolicyData(
		`{"Q1": "Is it raining?", "Q2": "Do you have a raincoat?", "logic": "Q1 and not Q2"}`)
	require.NoError(t, err)

	assert.Equal(t, "Q1 and not Q2", policy.Logic)
	assert.Equal(t, map[string]string{
		"Q1": "Is it raining?",
		"Q2": "Do you have a raincoat?",
	}, policy.Questions)
}

func TestDecodePolicyDataErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Invalid JSON", raw: `{"Q1": `},
		{name: "Non-String Prompt", raw: `{"Q1": 42, "logic": "Q1"}`},
		{name: "Non-Object Payload", raw: `["Q1"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePolicyData(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestExamplePolicy(t *testing.T) {
	policy := ExamplePolicy()
	assert.Len(t, policy.Questions, 5)
	assert.NotEmpty(t, policy.Logic)
	require.NoError(t, policy.Validate())
}
