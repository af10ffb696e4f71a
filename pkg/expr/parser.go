// Package expr evaluates the arithmetic formulas used by part rules.
//
// The language is deliberately tiny: numeric literals, the four operators
// + - * / and parentheses. Formulas reference design variables by name;
// names are substituted from the context before parsing, so the parser
// itself never sees an identifier. Anything outside that grammar makes the
// formula evaluate to 0 with a diagnostic — evaluation never panics and
// never executes anything but arithmetic.
package expr

import (
	"fmt"
	"strconv"
)

// node is one node of the parsed arithmetic tree.
type node interface {
	eval() float64
}

// numberNode is a numeric literal.
type numberNode struct {
	value float64
}

func (n numberNode) eval() float64 { return n.value }

// unaryNode is a prefix + or - applied to an operand.
type unaryNode struct {
	op      byte
	operand node
}

func (n unaryNode) eval() float64 {
	v := n.operand.eval()
	if n.op == '-' {
		return -v
	}
	return v
}

// binaryNode is an infix operation.
type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval() float64 {
	l := n.left.eval()
	r := n.right.eval()
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	default:
		// Division by zero yields ±Inf/NaN; Evaluate maps non-finite
		// results to 0.
		return l / r
	}
}

// Operator precedence levels.
const (
	precNone = iota
	precAdditive       // + -
	precMultiplicative // * /
	precUnary          // prefix + -
)

// parser is a Pratt parser over the substituted residue.
type parser struct {
	input string
	pos   int
}

// parse parses a complete expression and requires all input to be consumed.
func parse(input string) (node, error) {
	p := &parser{input: input}
	n, err := p.parseExpression(precNone + 1)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return n, nil
}

// parseExpression implements precedence climbing: parse a prefix expression,
// then fold infix operators while their precedence holds.
func (p *parser) parseExpression(minPrec int) (node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		op, prec := p.peekInfix()
		if prec < minPrec {
			return left, nil
		}
		p.pos++

		// Left-associative: the right side binds one level tighter.
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parsePrefix parses unary operators, parenthesized groups and literals.
func (p *parser) parsePrefix() (node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	switch c := p.input[p.pos]; c {
	case '+', '-':
		p.pos++
		operand, err := p.parseExpression(precUnary)
		if err != nil {
			return nil, err
		}
		return unaryNode{op: c, operand: operand}, nil

	case '(':
		p.pos++
		inner, err := p.parseExpression(precNone + 1)
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return inner, nil

	default:
		return p.parseNumber()
	}
}

// peekInfix returns the infix operator at the cursor and its precedence,
// or precNone when the cursor is not on an operator.
func (p *parser) peekInfix() (byte, int) {
	if p.pos >= len(p.input) {
		return 0, precNone
	}
	switch c := p.input[p.pos]; c {
	case '+', '-':
		return c, precAdditive
	case '*', '/':
		return c, precMultiplicative
	default:
		return 0, precNone
	}
}

// parseNumber scans a numeric literal (digits with an optional fraction).
func (p *parser) parseNumber() (node, error) {
	start := p.pos
	seenDigit := false
	seenDot := false
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			seenDigit = true
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		break
	}
	if !seenDigit {
		return nil, fmt.Errorf("expected number at offset %d", start)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", p.input[start:p.pos], err)
	}
	return numberNode{value: v}, nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}
