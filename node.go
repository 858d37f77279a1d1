package emergency

import "sync"

// Node is a fixed-capacity set of emergency flags guarded by a single mutex.
//
// The zero storage is not ready for use: callers allocate a Node wherever
// they like (stack, embedded in a supervisor struct) and must call Init
// before the first operation. All operations on a ready Node are safe for
// concurrent use and serialize completely against each other.
type Node struct {
	mu      sync.Mutex
	buffer  [NumBuffer]byte
	counter uint8
}

// Init overwrites the Node's storage with the empty state: all flags clear,
// counter zero, mutex unlocked. The prior contents may be arbitrary bytes.
//
// Init must not race with any other operation on the same Node; the caller
// guarantees exclusive access during initialization.
func (n *Node) Init() {
	n.mu = sync.Mutex{}
	n.buffer = [NumBuffer]byte{}
	n.counter = 0
}

// Destroy clears all flags and the counter under the lock. The Node must not
// be used afterwards; a subsequent Init makes the storage ready again.
func (n *Node) Destroy() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.buffer = [NumBuffer]byte{}
	n.counter = 0
}

// Raise marks id as an active emergency. Raising an already-active id is a
// no-op: the counter tracks distinct active conditions, so exactly one
// increment happens per clear-to-set transition regardless of how many
// callers race on the same id.
//
// Returns ErrBadEmergencyID for id >= Capacity, with no state change.
func (n *Node) Raise(id uint8) error {
	if id >= Capacity {
		return ErrBadEmergencyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	mask := bitMask(id)
	if n.buffer[byteIndex(id)]&mask == 0 {
		n.buffer[byteIndex(id)] |= mask
		n.counter++
	}
	return nil
}

// Solve marks id as resolved. Solving an id that is not active is a safe
// no-op, so "solve just in case" needs no coordination and the counter can
// never underflow.
//
// Returns ErrBadEmergencyID for id >= Capacity, with no state change.
func (n *Node) Solve(id uint8) error {
	if id >= Capacity {
		return ErrBadEmergencyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()

	mask := bitMask(id)
	if n.buffer[byteIndex(id)]&mask != 0 {
		n.buffer[byteIndex(id)] &^= mask
		n.counter--
	}
	return nil
}

// InEmergency reports whether any emergency is currently active. The result
// is a momentary snapshot: it reflects the state at some instant between
// entry and return, and promises nothing about the next instant absent
// external coordination.
func (n *Node) InEmergency() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counter > 0
}

// Count returns the number of distinct active emergencies.
func (n *Node) Count() uint8 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.counter
}

// IsRaised reports whether id is currently active.
//
// Returns ErrBadEmergencyID for id >= Capacity.
func (n *Node) IsRaised(id uint8) (bool, error) {
	if id >= Capacity {
		return false, ErrBadEmergencyID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.buffer[byteIndex(id)]&bitMask(id) != 0, nil
}

// Active returns the IDs of all currently active emergencies in ascending
// order. The slice is a snapshot taken under the lock; a typical drain loop
// is Active followed by Solve of each returned id.
func (n *Node) Active() []uint8 {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids := make([]uint8, 0, n.counter)
	for id := uint8(0); id < Capacity; id++ {
		if n.buffer[byteIndex(id)]&bitMask(id) != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
