package emergency

import (
	"math/bits"
	"sync/atomic"
)

// AtomicNode is the lock-free rendering of Node: the 64 flag bits live in a
// single atomic word and mutations are CAS loops on that word. The sidecar
// population counter is adjusted only by the goroutine whose CAS observed
// the bit transition, which preserves raise/solve idempotence — a blind
// atomic OR plus unconditional increment would not.
//
// The counter may transiently lag the word between a winning CAS and the
// counter adjustment. At quiescent points (all writers joined) the two
// agree exactly.
type AtomicNode struct {
	word    atomic.Uint64
	counter atomic.Int64
}

// Init resets the flag word and counter to the empty state. As with
// Node.Init, the caller guarantees no concurrent use during initialization.
func (n *AtomicNode) Init() {
	n.word.Store(0)
	n.counter.Store(0)
}

// Destroy clears all flags and the counter. The AtomicNode must not be used
// afterwards until re-initialized.
func (n *AtomicNode) Destroy() {
	n.word.Store(0)
	n.counter.Store(0)
}

// Raise marks id as active. Exactly one of any number of racing raisers of
// the same id wins the clear-to-set CAS and performs the single increment.
//
// Returns ErrBadEmergencyID for id >= Capacity, with no state change.
func (n *AtomicNode) Raise(id uint8) error {
	if id >= Capacity {
		return ErrBadEmergencyID
	}
	mask := uint64(1) << id
	for {
		old := n.word.Load()
		if old&mask != 0 {
			return nil
		}
		if n.word.CompareAndSwap(old, old|mask) {
			n.counter.Add(1)
			return nil
		}
	}
}

// Solve marks id as resolved. Solving an inactive id is a no-op and cannot
// underflow the counter.
//
// Returns ErrBadEmergencyID for id >= Capacity, with no state change.
func (n *AtomicNode) Solve(id uint8) error {
	if id >= Capacity {
		return ErrBadEmergencyID
	}
	mask := uint64(1) << id
	for {
		old := n.word.Load()
		if old&mask == 0 {
			return nil
		}
		if n.word.CompareAndSwap(old, old&^mask) {
			n.counter.Add(-1)
			return nil
		}
	}
}

// InEmergency reports whether any emergency is currently active. It reads
// the flag word, not the counter, so it never reports a stale positive from
// counter lag.
func (n *AtomicNode) InEmergency() bool {
	return n.word.Load() != 0
}

// Count returns the population counter. Exact at quiescent points.
func (n *AtomicNode) Count() uint8 {
	return uint8(n.counter.Load())
}

// IsRaised reports whether id is currently active.
//
// Returns ErrBadEmergencyID for id >= Capacity.
func (n *AtomicNode) IsRaised(id uint8) (bool, error) {
	if id >= Capacity {
		return false, ErrBadEmergencyID
	}
	return n.word.Load()&(uint64(1)<<id) != 0, nil
}

// Active returns the IDs of all active emergencies in ascending order, from
// a single atomic snapshot of the flag word.
func (n *AtomicNode) Active() []uint8 {
	w := n.word.Load()
	ids := make([]uint8, 0, bits.OnesCount64(w))
	for w != 0 {
		id := uint8(bits.TrailingZeros64(w))
		ids = append(ids, id)
		w &= w - 1
	}
	return ids
}
