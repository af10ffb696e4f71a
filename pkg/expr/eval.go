package expr

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Context maps lower-case snake_case variable names to values. It is built
// fresh for each calculation and discarded afterwards.
type Context map[string]float64

// Clone returns an independent copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Diagnostic reports why a formula failed to evaluate. Failed formulas
// yield 0; diagnostics are the observable side channel, never an error
// in the control-flow sense.
type Diagnostic struct {
	Expr    string // original formula text
	Residue string // text left after variable substitution
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("expression %q: %s", d.Expr, d.Message)
}

// Evaluate resolves a formula against the context and returns its value
// rounded to 2 decimal places.
//
// The formula is lower-cased and trimmed, every variable present in the
// context is substituted by its value (longest names first, so total_width
// is replaced before a shorter name that is a substring of it), and the
// residue is parsed as pure arithmetic. Any unresolved identifier, stray
// character, parse failure or non-finite result makes the formula evaluate
// to 0 with a diagnostic. Evaluate never panics.
func Evaluate(expression string, ctx Context) (float64, []Diagnostic) {
	trimmed := strings.ToLower(strings.TrimSpace(expression))
	if trimmed == "" {
		return 0, []Diagnostic{{Expr: expression, Message: "empty expression"}}
	}

	residue := substitute(trimmed, ctx)

	if bad, ok := firstIllegalChar(residue); ok {
		return 0, []Diagnostic{{
			Expr:    expression,
			Residue: residue,
			Message: fmt.Sprintf("unresolved or illegal token starting at %q", bad),
		}}
	}

	root, err := parse(residue)
	if err != nil {
		return 0, []Diagnostic{{
			Expr:    expression,
			Residue: residue,
			Message: err.Error(),
		}}
	}

	v := root.eval()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, []Diagnostic{{
			Expr:    expression,
			Residue: residue,
			Message: "result is not finite",
		}}
	}

	return math.Round(v*100) / 100, nil
}

// Eval is Evaluate without the diagnostics, for call sites that only need
// the fail-safe value.
func Eval(expression string, ctx Context) float64 {
	v, _ := Evaluate(expression, ctx)
	return v
}

// substitute replaces every context variable present in the expression with
// its numeric value, longest names first. Negative values are parenthesized
// so they survive as operands.
func substitute(expr string, ctx Context) string {
	names := make([]string, 0, len(ctx))
	for name := range ctx {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if !strings.Contains(expr, name) {
			continue
		}
		v := ctx[name]
		repl := strconv.FormatFloat(v, 'f', -1, 64)
		if v < 0 {
			repl = "(" + repl + ")"
		}
		expr = strings.ReplaceAll(expr, name, repl)
	}
	return expr
}

// firstIllegalChar scans the residue for anything outside the arithmetic
// grammar: digits, whitespace, the four operators, parentheses and dots.
func firstIllegalChar(residue string) (string, bool) {
	for i := 0; i < len(residue); i++ {
		switch c := residue[i]; {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '*' || c == '/':
		case c == '(' || c == ')' || c == '.':
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			end := i + 8
			if end > len(residue) {
				end = len(residue)
			}
			return residue[i:end], true
		}
	}
	return "", false
}
