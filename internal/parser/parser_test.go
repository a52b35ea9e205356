package parser

import (
	"errors"
	"testing"

	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/logic"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // canonical word-syntax rendering
	}{
		{
			name: "Single Variable",
			src:  "Q1",
			want: "Q1",
		},
		{
			name: "Word Operators",
			src:  "(Q1 and Q3) or (not Q2 and not Q4)",
			want: "(Q1 and Q3) or (not Q2 and not Q4)",
		},
		{
			name: "HCL Operators",
			src:  "(Q1 && Q3) || (!Q2 && !Q4)",
			want: "(Q1 and Q3) or (not Q2 and not Q4)",
		},
		{
			name: "Mixed Spellings",
			src:  "Q1 && (Q2 or not Q3)",
			want: "Q1 and (Q2 or not Q3)",
		},
		{
			name: "Negated Group",
			src:  "Q1 and not (Q5 and Q4)",
			want: "Q1 and not (Q5 and Q4)",
		},
		{
			name: "Boolean Literals",
			src:  "true or Q1",
			want: "true or Q1",
		},
		{
			name: "Python Style Constants",
			src:  "True and not False",
			want: "true and not false",
		},
		{
			name: "Identifier Containing Operator Word",
			src:  "android and organ",
			want: "android and organ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.src, err)
			}
			if got := expr.String(); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// AND binds tighter than OR: Q1 or Q2 and Q3 == Q1 or (Q2 and Q3).
	expr, err := Parse("Q1 or Q2 and Q3")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	for mask := 0; mask < 8; mask++ {
		assignment := map[string]bool{
			"Q1": mask&1 != 0,
			"Q2": mask&2 != 0,
			"Q3": mask&4 != 0,
		}
		want := assignment["Q1"] || (assignment["Q2"] && assignment["Q3"])
		if got := logic.Eval(expr, assignment); got != want {
			t.Errorf("assignment %v: got %v, want %v", assignment, got, want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "Empty", src: ""},
		{name: "Blank", src: "   "},
		{name: "Unbalanced Parens", src: "(Q1 and Q2"},
		{name: "Dangling Operator", src: "Q1 and"},
		{name: "Comparison Operator", src: "Q1 == Q2"},
		{name: "Arithmetic", src: "Q1 + Q2"},
		{name: "Function Call", src: "max(Q1, Q2)"},
		{name: "Compound Reference", src: "a.b and Q1"},
		{name: "Number Literal", src: "Q1 and 42"},
		{name: "String Literal", src: `Q1 and "yes"`},
		{name: "Conditional", src: "Q1 ? Q2 : Q3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) should have failed", tt.src)
			}
			if !errors.Is(err, domain.ErrMalformedExpression) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformedExpression", tt.src, err)
			}
		})
	}
}

func TestRewriteWordOperators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Q1 and Q2", want: "Q1 && Q2"},
		{in: "not Q1", want: "! Q1"},
		{in: "android", want: "android"},
		{in: "oregano or organ", want: "oregano || organ"},
		{in: "notQ1 and Q2", want: "notQ1 && Q2"},
		{in: "True or False", want: "true || false"},
	}
	for _, tt := range tests {
		if got := rewriteWordOperators(tt.in); got != tt.want {
			t.Errorf("rewriteWordOperators(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
