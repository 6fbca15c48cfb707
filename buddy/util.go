package buddy

import "fmt"
import "errors"
import "math/bits"

// ErrorInvalidSize while requesting an allocation of size <= 0.
var ErrorInvalidSize = errors.New("buddy.invalidsize")

// ErrorOutofMemory while no free block at or above the required order
// can satisfy the request.
var ErrorOutofMemory = errors.New("buddy.outofmemory")

// ErrorInvalidFree while freeing an address that is not a live
// allocation from this arena.
var ErrorInvalidFree = errors.New("buddy.invalidfree")

// requiredOrder smallest order whose block can hold size bytes, never
// less than minorder. ceil(log2(size)) for size >= 1.
func requiredOrder(size, minorder int64) int64 {
	order := int64(bits.Len64(uint64(size - 1)))
	if order < minorder {
		order = minorder
	}
	return order
}

// buddyoffset for a block of 2^order bytes at offset from the arena
// base. Buddies differ only in the order-th offset bit.
func buddyoffset(offset, order int64) int64 {
	return offset ^ (int64(1) << uint64(order))
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
