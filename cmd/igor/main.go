// Command igor is an interactive interpreter of Igor expressions.
//
// Usage:
//
//	igor [-config file] [-e expr] [file [-]]
//
// With a file, igor loads it and exits unless the second argument is "-",
// in which case the REPL follows.
package main

import (
	"flag"
	"log"
	"os"

	igor "github.com/nukata/little-igor-in-go"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("igor: ")

	configPath := flag.String("config", "~/.igor.yaml", "read REPL settings from `file`")
	expr := flag.String("e", "", "evaluate `expr`, print the result and exit")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	env := igor.NewEnvironment()
	env.AddBuiltins()
	s := &session{env: env, out: os.Stdout}
	s.prelude(cfg.Prelude)

	if *expr != "" {
		s.execute(*expr)
		return
	}

	args := flag.Args()
	if len(args) >= 1 {
		failures, err := Load(env, args[0], os.Stderr)
		if err != nil {
			log.Fatal(err)
		}
		if len(args) < 2 || args[1] != "-" {
			if failures > 0 {
				os.Exit(1)
			}
			return
		}
	}
	ReadEvalPrintLoop(s, cfg)
}
