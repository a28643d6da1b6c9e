// Command monolog is the REPL driver: the "external collaborator"
// spec §1 keeps out of the core, wiring the syntax package's parser
// to a monolog.Interpreter and driving its answer streams from a
// terminal. Grounded on cmd/1pl/main.go's flag parsing, raw-mode
// terminal setup, and file-consulting startup sequence.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/monolog-lang/monolog"
	"github.com/monolog-lang/monolog/internal/config"
	"github.com/monolog-lang/monolog/internal/trace"
	"github.com/monolog-lang/monolog/syntax"
)

func main() {
	var (
		verbose     bool
		occursCheck bool
		configPath  string
	)
	pflag.BoolVarP(&verbose, "verbose", "v", false, "trace each resolution step")
	pflag.BoolVarP(&occursCheck, "occurs-check", "o", false, "enable the occurs check")
	pflag.StringVarP(&configPath, "config", "c", "", "path to a YAML session config")
	pflag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatalf("monolog: %v", err)
		}
	}
	if verbose {
		cfg.Verbose = true
	}
	if occursCheck {
		cfg.OccursCheck = true
	}

	logger, err := trace.NewLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("monolog: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	interp := monolog.New()
	interp.SetOccursCheck(cfg.OccursCheck)
	interp.SetMaxDepth(cfg.MaxDepth)
	if cfg.Verbose {
		interp.SetHooks(trace.Hooks(logger))
	}

	for _, path := range pflag.Args() {
		if err := consultFile(interp, path); err != nil {
			log.Fatalf("monolog: consult %s: %v", path, err)
		}
	}

	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		log.Fatalf("monolog: failed to enter raw mode: %v", err)
	}
	restore := func() { _ = terminal.Restore(0, oldState) }
	defer restore()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Fprint(t, "\r\n")
	log.SetOutput(t)

	repl := newREPL(interp, t)
	for {
		if err := repl.step(); err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintf(t, "error: %v\r\n", err)
		}
	}
}

// consultFile loads facts and rules from path into interp (the
// supplemented `:consult` feature; spec §6 says the REPL "submits
// either a KB mutation ... or a goal" but leaves how a file's worth of
// clauses gets there unspecified).
func consultFile(interp *monolog.Interpreter, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return consult(interp, f)
}

func consult(interp *monolog.Interpreter, r io.Reader) error {
	p := syntax.NewParser(r)
	for {
		c, err := p.ParseClause()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		interp.Assert(c)
	}
}
