package igor

import (
	"strconv"
	"strings"

	"github.com/nukata/little-igor-in-go/grammar"
)

// Read converts a syntax tree into a value.
// Numbers and symbols become leaves; the root and every bracketed
// group become lists.
func Read(t *grammar.Node) Value {
	switch {
	case strings.Contains(t.Tag, "number"):
		return readNumber(t.Contents)
	case strings.Contains(t.Tag, "symbol"):
		return Symbol(t.Contents)
	case t.Tag == grammar.RootTag || strings.Contains(t.Tag, "sexpr"):
		return &SExpr{readCells(t.Children)}
	case strings.Contains(t.Tag, "qexpr"):
		return &QExpr{readCells(t.Children)}
	}
	return Errorf("Unexpected syntax node '%s'.", t.Tag)
}

func readNumber(s string) Value {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Errorf("Invalid Number.")
	}
	return Number(n)
}

func readCells(children []*grammar.Node) []Value {
	cells := make([]Value, 0, len(children))
	for _, c := range children {
		switch c.Contents {
		case "(", ")", "{", "}":
			continue
		}
		if c.Tag == "regex" {
			continue
		}
		cells = append(cells, Read(c))
	}
	return cells
}

// ReadString parses src and reads it as a single S-expression
// holding every top-level expression.
func ReadString(src string) (Value, error) {
	t, err := grammar.Parse(src)
	if err != nil {
		return nil, err
	}
	return Read(t), nil
}
