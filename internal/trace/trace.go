// Package trace is the ambient-stack tracing layer SPEC_FULL.md adds
// on top of engine.Hooks: structured logging of resolution steps for
// the REPL's -v/--verbose flag. Grounded on
// theRebelliousNerd-codenerd's cmd/nerd/main.go, which builds a
// zap.Logger from zap.NewProductionConfig, bumps it to debug level
// under --verbose, and logs structured fields at each decision point.
// engine itself stays free of any logging import — trace sits between
// engine.Hooks and zap so that dependency lives only in the REPL
// layer, matching the ambient-stack split in SPEC_FULL.md.
package trace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/monolog-lang/monolog/engine"
)

// NewLogger builds the process logger, matching main.go's
// PersistentPreRunE: production defaults, debug level under verbose,
// console-encoded without a timestamp (a REPL session, not a service
// log stream).
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

// Hooks returns engine.Hooks that log every call/exit/fail/redo step
// as a structured debug entry. The goal is resolved against env
// before logging since a bare, unwalked goal term is rarely
// informative once resolution is underway.
func Hooks(logger *zap.Logger) *engine.Hooks {
	log := func(event string) func(engine.Term, *engine.Env) {
		return func(g engine.Term, env *engine.Env) {
			logger.Debug(event, zap.String("goal", engine.Resolve(g, env).String()))
		}
	}
	return &engine.Hooks{
		OnCall: log("call"),
		OnExit: log("exit"),
		OnFail: log("fail"),
		OnRedo: log("redo"),
	}
}
