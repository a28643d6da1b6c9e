package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/monolog-lang/monolog"
	"github.com/monolog-lang/monolog/syntax"
)

// mode is the REPL's `:s`/`:store` vs `:c`/`:check` toggle (spec §6):
// store steps through every answer one at a time like a conventional
// Prolog top level; check only reports whether at least one answer
// exists.
type mode int

const (
	modeStore mode = iota
	modeCheck
)

type repl struct {
	interp   *monolog.Interpreter
	term     *terminal.Terminal
	keys     *bufio.Reader
	mode     mode
	lastVars []string
}

func newREPL(interp *monolog.Interpreter, t *terminal.Terminal) *repl {
	return &repl{
		interp: interp,
		term:   t,
		keys:   bufio.NewReader(os.Stdin),
		mode:   modeStore,
	}
}

// step reads one line and dispatches it as a command or a query. It
// returns io.EOF once the terminal's input is exhausted.
func (r *repl) step() error {
	line, err := r.term.ReadLine()
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.HasPrefix(line, ":") {
		r.command(line)
		return nil
	}
	r.query(line)
	return nil
}

func (r *repl) command(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":s", ":store":
		r.mode = modeStore
		fmt.Fprint(r.term, "store mode\r\n")
	case ":c", ":check":
		r.mode = modeCheck
		fmt.Fprint(r.term, "check mode\r\n")
	case ":o", ":occurs":
		on := !r.interp.OccursCheck()
		r.interp.SetOccursCheck(on)
		fmt.Fprintf(r.term, "occurs check: %v\r\n", on)
	case ":show":
		out := r.interp.Snapshot(nil)
		if out != "" {
			fmt.Fprint(r.term, out)
		}
		fmt.Fprint(r.term, "\r\n")
	case ":clear":
		r.interp.Clear()
		fmt.Fprint(r.term, "knowledge base cleared\r\n")
	case ":consult":
		if len(fields) < 2 {
			fmt.Fprint(r.term, "usage: :consult <file>\r\n")
			return
		}
		if err := consultFile(r.interp, fields[1]); err != nil {
			fmt.Fprintf(r.term, "error: %v\r\n", err)
			return
		}
		fmt.Fprintf(r.term, "consulted %s\r\n", fields[1])
	case ":vars":
		if len(r.lastVars) == 0 {
			fmt.Fprint(r.term, "no variables in the last query\r\n")
			return
		}
		fmt.Fprintf(r.term, "%s\r\n", strings.Join(r.lastVars, ", "))
	default:
		fmt.Fprintf(r.term, "unknown command %q\r\n", fields[0])
	}
}

// query parses src as a goal and drives its answer stream, following
// the shape spec §6 hands the REPL: print each `Name = term` binding,
// then wait for `:n`/`:next` or `:d`/`:done` before looking further
// (here abbreviated, like the teacher's raw-mode ';'/'.' read, to a
// single keystroke 'n'/'d' rather than a full command line).
func (r *repl) query(src string) {
	src = strings.TrimSpace(src)
	if !strings.HasSuffix(src, ".") {
		src += "."
	}

	p := syntax.NewParser(strings.NewReader(src))
	goal, err := p.ParseGoal()
	if err != nil {
		fmt.Fprintf(r.term, "error: %v\r\n", err)
		return
	}

	sol := r.interp.Query(goal)
	defer sol.Close()

	if r.mode == modeCheck {
		bindings, ok := sol.Next()
		r.rememberVars(bindings)
		fmt.Fprintf(r.term, "%v.\r\n", ok)
		return
	}

	count := 0
	for {
		bindings, ok := sol.Next()
		if !ok {
			break
		}
		count++
		r.rememberVars(bindings)
		r.printBindings(bindings)
		if !r.awaitNextOrDone() {
			break
		}
	}

	if err := sol.Err(); err != nil {
		fmt.Fprintf(r.term, "error: %v\r\n", err)
		return
	}
	if count == 0 {
		fmt.Fprint(r.term, "false.\r\n")
	}
}

func (r *repl) rememberVars(bindings []monolog.Binding) {
	names := make([]string, len(bindings))
	for i, b := range bindings {
		names[i] = b.Name
	}
	r.lastVars = names
}

func (r *repl) printBindings(bindings []monolog.Binding) {
	if len(bindings) == 0 {
		fmt.Fprint(r.term, "true ")
		return
	}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = fmt.Sprintf("%s = %s", b.Name, b.Term)
	}
	fmt.Fprint(r.term, strings.Join(parts, ",\r\n")+" ")
}

// awaitNextOrDone reads a single keystroke: 'd' terminates the
// stream (`:d`/`:done`), anything else demands the next answer
// (`:n`/`:next`).
func (r *repl) awaitNextOrDone() bool {
	rn, _, err := r.keys.ReadRune()
	if err != nil {
		return false
	}
	if rn == 'd' {
		fmt.Fprint(r.term, ".\r\n")
		return false
	}
	fmt.Fprint(r.term, ";\r\n")
	return true
}
