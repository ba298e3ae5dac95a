package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	igor "github.com/nukata/little-igor-in-go"
	"github.com/nukata/little-igor-in-go/grammar"
)

const version = "0.0.0.0.1"

const helpText = `Igor evaluates integer expressions in prefix notation.
  (f a b ...)   apply f to the values of a, b, ...
  {a b ...}     a quoted list, evaluated only by eval
  exit          leave the REPL`

// session evaluates complete inputs against one environment.
type session struct {
	env *igor.Environment
	out io.Writer
}

// execute handles one complete input and reports whether to go on.
func (s *session) execute(src string) bool {
	switch strings.TrimSpace(src) {
	case "exit":
		return false
	case "help":
		fmt.Fprintln(s.out, helpText)
		fmt.Fprintln(s.out, "Bound names:", strings.Join(s.env.Names(), " "))
		return true
	}
	v, err := igor.EvalString(s.env, src)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return true
	}
	igor.Println(s.out, v)
	return true
}

// prelude evaluates each expression of exprs, logging the failures.
func (s *session) prelude(exprs []string) {
	for _, src := range exprs {
		v, err := igor.EvalString(s.env, src)
		if err == nil {
			err = igor.Check(v)
		}
		if err != nil {
			log.Printf("prelude %q: %v", src, err)
		}
	}
}

//----------------------------------------------------------------------

// ReadEvalPrintLoop repeats read-eval-print until End-Of-File or Ctrl-C.
func ReadEvalPrintLoop(s *session, cfg *Config) {
	if cfg.Banner {
		fmt.Fprintln(s.out, "Igor Version", version)
		fmt.Fprintln(s.out, "Press Ctrl+c to Exit")
		fmt.Fprintln(s.out)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			if _, err := ln.ReadHistory(f); err != nil {
				log.Printf("read history %s: %v", cfg.History, err)
			}
			f.Close()
		}
		defer saveHistory(ln, cfg.History)
	}

	for {
		src, ok := readExpression(ln, cfg.Prompt, cfg.Continuation)
		if !ok {
			fmt.Fprintln(s.out)
			return
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		}
		if !s.execute(src) {
			return
		}
	}
}

// readExpression reads lines until the brackets are balanced or the
// input is not a prefix of any expression.
func readExpression(ln *liner.State, prompt1 string, prompt2 string) (string, bool) {
	var b strings.Builder
	for {
		prompt := prompt1
		if b.Len() > 0 {
			prompt = prompt2
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			log.Printf("read: %v", err)
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !grammar.Incomplete(b.String()) {
			return b.String(), true
		}
	}
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Printf("write history %s: %v", path, err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Printf("write history %s: %v", path, err)
	}
}
