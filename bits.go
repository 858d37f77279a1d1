package emergency

import "math/bits"

// byteIndex returns the buffer byte holding id's flag bit (LSB0 numbering).
func byteIndex(id uint8) uint8 { return id >> 3 }

// bitMask returns the single-bit mask for id within its byte.
func bitMask(id uint8) uint8 { return 1 << (id & 7) }

// Popcount returns the number of set bits across buf. Under the population
// invariant this equals a Node's counter, which makes it the cross-check
// primitive for tests and for callers auditing a snapshot.
func Popcount(buf []byte) uint {
	var n uint
	for _, b := range buf {
		n += uint(bits.OnesCount8(b))
	}
	return n
}

// BufferBytes returns ceil(capacity/8), the byte length needed to hold
// capacity flag bits. BufferBytes(Capacity) == NumBuffer.
func BufferBytes(capacity uint) uint {
	return (capacity + 7) / 8
}
