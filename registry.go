package emergency

import "sync/atomic"

// classInitialized is the process-wide one-shot gate. A plain boolean with a
// check-then-set would let two racing callers both observe false; the CAS
// makes exactly one caller win.
var classInitialized atomic.Bool

// ClassInit performs the one-shot class-level setup. It succeeds exactly once
// per process: the first caller observes the false-to-true transition and
// gets nil, every later caller gets ErrReinitialized. Calling it twice is a
// programming mistake (double setup), not a recoverable condition, which is
// why re-invocation is an error rather than a no-op.
//
// Safe to call from any goroutine.
func ClassInit() error {
	if !classInitialized.CompareAndSwap(false, true) {
		return ErrReinitialized
	}
	return nil
}

// resetClassInit returns the gate to its pre-init state so package tests can
// exercise the one-shot contract more than once in a single process.
func resetClassInit() {
	classInitialized.Store(false)
}
