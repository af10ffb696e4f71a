package expr

import "testing"

func TestEvaluateNumericLiterals(t *testing.T) {
	ctx := Context{"total_height": 720}

	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"18", 18},
		{"3.5", 3.5},
		{"720", 720},
		{"0.125", 0.13}, // rounded to 2dp
	} {
		got, diags := Evaluate(tc.in, ctx)
		if len(diags) > 0 {
			t.Errorf("Evaluate(%q) unexpected diagnostics: %v", tc.in, diags)
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEvaluateSubstitution(t *testing.T) {
	ctx := Context{
		"total_height":       720,
		"material_thickness": 18,
		"thickness":          18,
	}

	got, diags := Evaluate("total_height - 2 * thickness", ctx)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got != 684 {
		t.Errorf("got %v, want 684", got)
	}
}

// thickness is a substring of material_thickness; longest names must be
// substituted first or the residue is garbage.
func TestEvaluateLongestNameFirst(t *testing.T) {
	ctx := Context{
		"thickness":          10,
		"material_thickness": 18,
	}

	got, diags := Evaluate("material_thickness + thickness", ctx)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got != 28 {
		t.Errorf("got %v, want 28", got)
	}
}

func TestEvaluatePrecedenceAndParens(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"100 - 10 - 5", 85},       // left associative
		{"100 / 10 / 2", 5},        // left associative
		{"-5 + 10", 5},             // unary minus
		{"2 * -3", -6},             // unary in operand position
		{"((720 - 36) / 2)", 342},
	} {
		got, diags := Evaluate(tc.in, nil)
		if len(diags) > 0 {
			t.Errorf("Evaluate(%q) unexpected diagnostics: %v", tc.in, diags)
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestEvaluateFailsSafeToZero(t *testing.T) {
	ctx := Context{"total_width": 600}

	for _, in := range []string{
		"",                      // empty
		"unknown_var + 10",      // unresolved identifier
		"total_width; drop",     // illegal character
		"math.sqrt(total_width)", // identifiers are not functions
		"600 +",                 // incomplete
		"(600",                  // unbalanced
		"600 600",               // trailing garbage
		"1 / 0",                 // non-finite result
	} {
		got, diags := Evaluate(in, ctx)
		if got != 0 {
			t.Errorf("Evaluate(%q) = %v, want fail-safe 0", in, got)
		}
		if len(diags) == 0 {
			t.Errorf("Evaluate(%q) produced no diagnostic", in)
		}
	}
}

func TestEvaluateCaseAndWhitespace(t *testing.T) {
	ctx := Context{"total_depth": 560}

	got, diags := Evaluate("  Total_Depth - 10 ", ctx)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got != 550 {
		t.Errorf("got %v, want 550", got)
	}
}

func TestEvaluateNegativeVariable(t *testing.T) {
	ctx := Context{"offset": -3}

	// -3 must be parenthesized during substitution: 10 - -3 = 13.
	got, diags := Evaluate("10 - offset", ctx)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if got != 13 {
		t.Errorf("got %v, want 13", got)
	}
}

func TestEvaluateRounding(t *testing.T) {
	got, _ := Evaluate("10 / 3", nil)
	if got != 3.33 {
		t.Errorf("got %v, want 3.33", got)
	}
}

func TestContextClone(t *testing.T) {
	ctx := Context{"a": 1}
	clone := ctx.Clone()
	clone["a"] = 2
	clone["b"] = 3

	if ctx["a"] != 1 {
		t.Error("mutating the clone changed the original")
	}
	if _, ok := ctx["b"]; ok {
		t.Error("clone addition leaked into the original")
	}
}
