// Package grammar turns Igor source text into a tree of tagged nodes.
package grammar

import (
	"fmt"
	"strings"

	"github.com/hucsmn/peg"
)

// Node represents a node of the syntax tree.
// Tag is a '|'-separated classification such as "expr|number|regex".
type Node struct {
	Tag      string
	Contents string
	Children []*Node
}

// IsTerminal reports whether the node has no children.
func (n *Node) IsTerminal() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b, 0)
	return b.String()
}

func (n *Node) dump(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	if n.Contents != "" {
		fmt.Fprintf(b, " '%s'", n.Contents)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.dump(b, depth+1)
	}
}

// Node tags
const (
	RootTag   = ">"
	NumberTag = "expr|number|regex"
	SymbolTag = "expr|symbol|regex"
	SExprTag  = "expr|sexpr|>"
	QExprTag  = "expr|qexpr|>"
	CharTag   = "char"
)

//----------------------------------------------------------------------

var (
	spaces = peg.Q0(peg.S(" \t\n\r\v\f"))
	number = peg.Seq(peg.Q01(peg.T("-")), peg.Q1(peg.R('0', '9')))
	symbol = peg.Q1(peg.Alt(
		peg.R('a', 'z', 'A', 'Z', '0', '9'),
		peg.S(`_+-*/\=<>!&%^`)))

	rules = map[string]peg.Pattern{
		"expr": peg.Alt(
			peg.CT(leaf(NumberTag), number),
			peg.CT(leaf(SymbolTag), symbol),
			peg.CC(group(SExprTag), peg.Seq(
				peg.CT(leaf(CharTag), peg.T("(")),
				peg.V("exprs"),
				peg.CT(leaf(CharTag), peg.T(")")))),
			peg.CC(group(QExprTag), peg.Seq(
				peg.CT(leaf(CharTag), peg.T("{")),
				peg.V("exprs"),
				peg.CT(leaf(CharTag), peg.T("}"))))),
		"exprs": peg.Seq(peg.Q0(peg.Seq(spaces, peg.V("expr"))), spaces),

		// Like expr, but closing brackets may be missing.
		"partial": peg.Alt(
			number,
			symbol,
			peg.Seq(peg.T("("), peg.V("partials"), peg.Q01(peg.T(")"))),
			peg.Seq(peg.T("{"), peg.V("partials"), peg.Q01(peg.T("}")))),
		"partials": peg.Seq(peg.Q0(peg.Seq(spaces, peg.V("partial"))), spaces),
	}

	program = peg.Let(rules, peg.V("exprs"))
	prefix  = peg.Let(rules, peg.V("partials"))
)

func leaf(tag string) func(string, peg.Position) (peg.Capture, error) {
	return func(text string, _ peg.Position) (peg.Capture, error) {
		return &Node{Tag: tag, Contents: text}, nil
	}
}

func group(tag string) func([]peg.Capture) (peg.Capture, error) {
	return func(caps []peg.Capture) (peg.Capture, error) {
		children, err := nodes(caps)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Children: children}, nil
	}
}

func nodes(caps []peg.Capture) ([]*Node, error) {
	result := make([]*Node, len(caps))
	for i, c := range caps {
		n, ok := c.(*Node)
		if !ok {
			return nil, fmt.Errorf("unexpected capture: %#v", c)
		}
		result[i] = n
	}
	return result, nil
}

//----------------------------------------------------------------------

// SyntaxError reports source text that does not match the grammar.
type SyntaxError struct {
	Name   string // the input name, e.g. "<stdin>"
	Source string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: invalid input %q", e.Name, e.Source)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse parses src into a tree whose root has the tag ">".
// Every top-level expression is a child of the root.
func Parse(src string) (*Node, error) {
	return ParseNamed("<stdin>", src)
}

// ParseNamed is like Parse but names the input in syntax errors.
func ParseNamed(name string, src string) (*Node, error) {
	if !peg.IsFullMatched(program, src) {
		return nil, &SyntaxError{Name: name, Source: src}
	}
	caps, err := peg.Parse(program, src)
	if err != nil {
		return nil, &SyntaxError{Name: name, Source: src, Err: err}
	}
	children, err := nodes(caps)
	if err != nil {
		return nil, &SyntaxError{Name: name, Source: src, Err: err}
	}
	return &Node{Tag: RootTag, Children: children}, nil
}

// Incomplete reports whether src fails to parse only because some
// brackets are still open.
func Incomplete(src string) bool {
	if peg.IsFullMatched(program, src) {
		return false
	}
	return peg.IsFullMatched(prefix, src)
}
