package emergency

import "errors"

const (
	// NumBuffer is the byte length of a Node's flag buffer.
	NumBuffer = 8

	// Capacity is the number of distinct emergency IDs a Node can track.
	// Valid IDs are [0, Capacity).
	Capacity = NumBuffer * 8
)

var (
	ErrBadEmergencyID = errors.New("emergency: id out of range")
	ErrReinitialized  = errors.New("emergency: class already initialized")
)
