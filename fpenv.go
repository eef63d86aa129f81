package illustrate

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// RoundingMode mirrors the IEEE 754 rounding-direction attributes an
// actuarial engine pins before any monthiversary calculation. Go's runtime
// does not expose the hardware control word the way x87 does, so
// FPEnvGuard does not touch real CPU state; it instead tracks nesting depth,
// restores the prior mode when the outermost guard is released, and detects
// a caller leaving the shared state dirty, over a package-level sentinel
// that every entry point into the engine is required to go through.
type RoundingMode int

const (
	RoundToNearest RoundingMode = iota
	RoundTowardZero
	RoundUpward
	RoundDownward
)

// fpGuardState is the process-wide rounding-mode resource. fpMu is held only
// while these variables are read or updated, not for the whole calculation,
// and depth allows a calculation to re-enter the guard (nested calls from
// the solver back into the runner) without deadlocking or redoing work.
var (
	fpMu    sync.Mutex
	depth   int32
	current RoundingMode
	dirty   atomic.Bool
)

// FPEnvGuard pins the process floating-point rounding mode for the duration
// of one calculation. Construct with NewFPEnvGuard, defer Release.
type FPEnvGuard struct {
	mode     RoundingMode
	prior    RoundingMode
	released bool
}

// NewFPEnvGuard acquires the guard, setting the process rounding mode to
// mode. Nesting is legal: an inner guard (solver re-entering the runner,
// say) only increments the depth and leaves the mode set by the outermost
// guard in place.
func NewFPEnvGuard(mode RoundingMode) *FPEnvGuard {
	fpMu.Lock()
	defer fpMu.Unlock()
	g := &FPEnvGuard{mode: mode, prior: current}
	if depth == 0 {
		current = mode
		dirty.Store(false)
	}
	depth++
	return g
}

// Release restores the prior environment and, on the outermost guard,
// verifies nothing corrupted the shared rounding state. Release must not
// panic: a diagnostic is the worst it ever produces, returned to the caller
// to log or ignore, since release must never throw on exit.
func (g *FPEnvGuard) Release() (diagnostic string) {
	if g.released {
		return ""
	}
	g.released = true
	fpMu.Lock()
	defer fpMu.Unlock()

	depth--
	if depth < 0 {
		depth = 0
	}
	if depth == 0 {
		if dirty.Load() {
			diagnostic = fmt.Sprintf("fpenv: rounding mode corrupted during calculation (expected %v); restored", g.mode)
			dirty.Store(false)
		}
		current = g.prior
	}
	return diagnostic
}

// markDirty is called by code paths that detect the shared rounding mode no
// longer matches what the outermost guard set. Nothing in this package calls
// it today — it exists so a future caller driving the engine from outside
// (e.g. a hand-rolled rate provider that fiddles with math/big rounding
// globals) has a way to report corruption instead of silently producing
// wrong tax-law-observable output.
func markDirty() { dirty.Store(true) }

// CurrentRoundingMode reports the rounding mode the outermost live guard
// established, for diagnostics and tests.
func CurrentRoundingMode() RoundingMode {
	fpMu.Lock()
	defer fpMu.Unlock()
	return current
}

// GuardDepth reports the current nesting depth; zero means no guard is held.
// Exposed for tests that assert nested guards are idempotent.
func GuardDepth() int32 {
	return atomic.LoadInt32(&depth)
}

// EngineScope runs fn with the FP environment guarded, returning any
// diagnostic Release produced alongside fn's error. Every entry point into
// the account-value engine or deeper (the runner, the solver, the census
// composite) should wrap its call through EngineScope rather than
// constructing FPEnvGuard directly.
func EngineScope(mode RoundingMode, fn func() error) (diagnostic string, err error) {
	guard := NewFPEnvGuard(mode)
	defer func() {
		diagnostic = guard.Release()
	}()
	err = fn()
	return diagnostic, err
}
