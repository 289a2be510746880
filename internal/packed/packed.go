// Package packed provides a memory efficient representation of memo keys.
package packed

import (
	"fmt"
	"hash/maphash"
	"math"
)

// MaxDepth is the largest chain depth a key can hold.
const MaxDepth = math.MaxUint8

// Key is a compressed (drow, dcol, depth, order) tuple.
type Key [4]byte

// Hash returns a hash value of k.
func (k Key) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, k[:]) }

// Pack returns the key of a move at depth. Deltas must fit into an int8.
func Pack(dRow, dCol, depth int, horizontalFirst bool) Key {
	var order byte
	if horizontalFirst {
		order = 1
	}
	return Key{byte(int8(dRow)), byte(int8(dCol)), byte(depth), order}
}

// unpack returns the components of k.
func unpack(k Key) (dRow, dCol, depth int, horizontalFirst bool) {
	return int(int8(k[0])), int(int8(k[1])), int(k[2]), k[3] == 1
}

func (k Key) String() string {
	dRow, dCol, depth, horizontalFirst := unpack(k)
	return fmt.Sprintf("(%d,%d)@%d/%t", dRow, dCol, depth, horizontalFirst)
}
