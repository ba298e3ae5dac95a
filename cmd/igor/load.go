package main

import (
	"fmt"
	"io"
	"os"

	igor "github.com/nukata/little-igor-in-go"
	"github.com/nukata/little-igor-in-go/grammar"
)

// Load evaluates each top-level expression of a file in env.
// Error values are written to errOut; loading goes on after them.
// It returns the number of error values.
func Load(env *igor.Environment, fileName string, errOut io.Writer) (int, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return 0, fmt.Errorf("load: %w", err)
	}
	t, err := grammar.ParseNamed(fileName, string(src))
	if err != nil {
		return 0, err
	}
	failures := 0
	for _, exp := range igor.Read(t).(*igor.SExpr).Cells {
		if v := igor.Eval(env, exp); igor.Check(v) != nil {
			igor.Println(errOut, v)
			failures++
		}
	}
	return failures, nil
}
