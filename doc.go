package emergency

/*

# Emergency flag registry (fixed capacity, bit-indexed)

This package provides the flag-set core for supervisory controllers that track
a known, enumerated set of fault conditions. Any number of concurrent
producers may raise and solve conditions by ID; observers poll the aggregate
"is any emergency active" predicate while deciding whether the controlled
system may proceed.

It mirrors the `go-merklelog/bloom` style:

- small, composable operations over an explicit byte layout
- index arithmetic on byte buffers
- a burden of knowledge on the caller for lifecycle

## Layout and bit numbering

A [Node] carries a fixed buffer of [NumBuffer] bytes, giving [Capacity]
addressable condition IDs. Bit numbering is LSB0: ID n lives at byte `n>>3`,
bit `n&7`, so ID 0 is the least-significant bit of byte 0.

	+--------+--------+----    ----+--------+
	| byte 0 | byte 1 |    ...     | byte 7 |
	+--------+--------+----    ----+--------+
	  IDs 0-7  IDs 8-15              IDs 56-63

Alongside the buffer the Node maintains a population counter equal to the
number of set bits. Raise and Solve keep the two consistent by adjusting the
counter only on an observed bit transition, so repeated raises (or solves) of
the same ID are no-ops at the counter level. The counter therefore tracks
distinct active conditions, never call counts.

## Concurrency

Two implementations share one contract:

- [Node] serializes every operation under a single embedded mutex. Operations
  on one Node are linearizable; operations on distinct Nodes are independent.
- [AtomicNode] is the lock-free rendering: a CAS loop on the 64-bit word
  holding the flag bits, with a sidecar atomic counter adjusted only by the
  goroutine whose CAS observed the transition. Between the CAS and the
  counter update the counter may transiently lag the word; equality is
  guaranteed at quiescent points (all writers joined).

Neither implementation blocks on anything beyond lock/CAS acquisition; there
are no waiters, callbacks, or condition variables. Observers poll.

## Caller burden

- Call [ClassInit] exactly once per process before using any Node; a second
  call reports [ErrReinitialized] so double setup surfaces as a bug.
- Call Init on a Node before first use. Node storage is caller-allocated and
  may contain arbitrary bytes; Init fully overwrites it.
- Do not invoke operations on a Node after Destroy.
- IDs at or beyond [Capacity] are rejected with [ErrBadEmergencyID] and never
  touch state.

*/
