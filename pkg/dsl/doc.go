// Package dsl provides a fluent builder for constructing policies in Go
// code, as an alternative to YAML files or inline JSON.
//
// Example:
//
//	policy, err := dsl.New().
//		Ask("Q1", "Is it raining?").
//		Ask("Q2", "Do you have a raincoat?").
//		Rule("Q1 and not Q2").
//		Build()
package dsl
