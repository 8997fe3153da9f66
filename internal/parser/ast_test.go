package parser_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/suderio/luckydice/internal/parser"
)

func TestParseCountAndSides(t *testing.T) {
	expr, err := parser.Parse("2d6")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if expr.Count != 2 {
		t.Errorf("Expected count 2, got %d", expr.Count)
	}

	if expr.Sides != 6 {
		t.Errorf("Expected sides 6, got %d", expr.Sides)
	}
}

func TestParseImplicitCount(t *testing.T) {
	expr, err := parser.Parse("D20")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if expr.Count != 1 || expr.Sides != 20 {
		t.Errorf("Expected 1d20, got %s", expr)
	}
}

func TestParseWhitespace(t *testing.T) {
	expr, err := parser.Parse("  3 d 4 ")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if expr.String() != "3d4" {
		t.Errorf("Expected 3d4, got %s", expr)
	}
}

func TestParseLeadingZeroIsDecimal(t *testing.T) {
	cases := map[string]string{
		"010d6": "10d6",
		"2d010": "2d10",
		"08d6":  "8d6",
		"d09":   "1d9",
	}
	for input, want := range cases {
		expr, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", input, err)
		}
		if expr.String() != want {
			t.Errorf("Parse(%q) = %s, expected %s", input, expr, want)
		}
	}
}

func TestParseBounds(t *testing.T) {
	if _, err := parser.Parse(fmt.Sprintf("%dd%d", parser.MaxCount, parser.MaxSides)); err != nil {
		t.Fatalf("Expected the largest roll to parse, got %v", err)
	}

	for _, input := range []string{"99999999999d6", "1001d6", "2d1001", "2d99999999999999999999", "00d6"} {
		_, err := parser.Parse(input)
		if !errors.Is(err, parser.ErrNotation) {
			t.Errorf("Expected ErrNotation for %q, got %v", input, err)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "six", "2d", "d", "2x6", "0d6", "2d0", "2d6+1"} {
		if _, err := parser.Parse(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}
