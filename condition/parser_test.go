package condition

import (
	"testing"

	"github.com/lox/liferestart/property"
)

func TestParseSimpleCondition(t *testing.T) {
	node, err := Parse("CHR>5")
	if err != nil {
		t.Fatal(err)
	}
	single, ok := node.(Single)
	if !ok {
		t.Fatalf("expected Single, got %T", node)
	}
	if single.Property != property.Chr || single.Op != Greater || single.Value.Int != 5 {
		t.Errorf("unexpected parse result: %+v", single)
	}
}

func TestParseAndCondition(t *testing.T) {
	node, err := Parse("CHR>5 & INT<10")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := node.(And); !ok {
		t.Fatalf("expected And, got %T", node)
	}
}

func TestParseOrCondition(t *testing.T) {
	node, err := Parse("CHR>5 | INT<10")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := node.(Or); !ok {
		t.Fatalf("expected Or, got %T", node)
	}
}

func TestParseArrayCondition(t *testing.T) {
	node, err := Parse("TLT?[1,2,3]")
	if err != nil {
		t.Fatal(err)
	}
	single := node.(Single)
	if single.Property != property.Tlt || single.Op != IncludesAny {
		t.Fatalf("unexpected: %+v", single)
	}
	if len(single.Value.Array) != 3 || single.Value.Array[2] != 3 {
		t.Errorf("unexpected array: %v", single.Value.Array)
	}
}

func TestParseAllOperators(t *testing.T) {
	cases := []struct {
		cond string
		op   Operator
	}{
		{"CHR>5", Greater},
		{"CHR<5", Less},
		{"CHR>=5", GreaterEqual},
		{"CHR<=5", LessEqual},
		{"CHR=5", Equal},
		{"CHR!=5", NotEqual},
		{"TLT?[1]", IncludesAny},
		{"TLT![1]", ExcludesAll},
	}
	for _, c := range cases {
		node, err := Parse(c.cond)
		if err != nil {
			t.Fatalf("%s: %v", c.cond, err)
		}
		single := node.(Single)
		if single.Op != c.op {
			t.Errorf("%s: expected op %v, got %v", c.cond, c.op, single.Op)
		}
	}
}

func TestParseNestedParentheses(t *testing.T) {
	node, err := Parse("(CHR>5 & INT>5) | STR>5")
	if err != nil {
		t.Fatal(err)
	}
	or, ok := node.(Or)
	if !ok {
		t.Fatalf("expected Or, got %T", node)
	}
	if _, ok := or.Left.(And); !ok {
		t.Fatalf("expected And on left of Or, got %T", or.Left)
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	// CHR>5 | INT>5 & STR>5 must parse as CHR>5 | (INT>5 & STR>5).
	node, err := Parse("CHR>5 | INT>5 & STR>5")
	if err != nil {
		t.Fatal(err)
	}
	or, ok := node.(Or)
	if !ok {
		t.Fatalf("expected Or, got %T", node)
	}
	if _, ok := or.Right.(And); !ok {
		t.Fatalf("expected And on right of Or, got %T", or.Right)
	}
}

func TestParseFloatValue(t *testing.T) {
	node, err := Parse("CHR>5.5")
	if err != nil {
		t.Fatal(err)
	}
	single := node.(Single)
	if single.Value.Kind != KindFloat || single.Value.Float != 5.5 {
		t.Errorf("unexpected value: %+v", single.Value)
	}
}

func TestParseExcludesAll(t *testing.T) {
	node, err := Parse("EVT![10001,10002]")
	if err != nil {
		t.Fatal(err)
	}
	single := node.(Single)
	if single.Property != property.Evt || single.Op != ExcludesAll {
		t.Fatalf("unexpected: %+v", single)
	}
}

func TestParseComplexCondition(t *testing.T) {
	node, err := Parse("AGE>=18 & CHR>5 & (TLT?[1001] | EVT?[10001])")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := node.(And); !ok {
		t.Fatalf("expected And, got %T", node)
	}
}

func TestParseEmptyConditionErrors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error for empty condition")
	}
}

func TestParseUnbalancedParenthesesErrors(t *testing.T) {
	if _, err := Parse("(CHR>5"); err == nil {
		t.Fatal("expected error for unbalanced parentheses")
	}
}

func TestParseMissingOperatorErrors(t *testing.T) {
	if _, err := Parse("CHR"); err == nil {
		t.Fatal("expected error for missing operator")
	}
}

func TestParseInvalidArrayErrors(t *testing.T) {
	if _, err := Parse("TLT?[1,x,3]"); err == nil {
		t.Fatal("expected error for malformed array")
	}
}
