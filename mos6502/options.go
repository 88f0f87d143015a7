package mos6502

import (
	"github.com/retroenv/retrogolib/log"
)

// Option configures a CPU created by New.
type Option func(*Cpu6502)

// WithLogger sets the logger used for debug output of resets, interrupts
// and illegal opcodes.
func WithLogger(logger *log.Logger) Option {
	return func(cpu *Cpu6502) {
		cpu.logger = logger
	}
}

// WithTracer attaches a function called once for every decoded instruction.
func WithTracer(fn TraceFunc) Option {
	return func(cpu *Cpu6502) {
		cpu.tracer = fn
	}
}

// WithIRQMasking makes IRQ honour the interrupt disable flag like the real
// chip does. By default IRQ is always taken.
func WithIRQMasking(enabled bool) Option {
	return func(cpu *Cpu6502) {
		cpu.maskIRQ = enabled
	}
}

// NewLogger creates a logger with debug output enabled, errors only when
// quiet, or the default level otherwise.
func NewLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
