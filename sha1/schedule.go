//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// Schedule is the 80-word message schedule of one chunk.
type Schedule [80]uint32

// Expand creates the message schedule for the chunk. The first 16
// words are the big-endian words of the chunk and the rest are
// derived with the rotate-XOR recurrence. Expand panics with
// *PreconditionError if the chunk is not BlockSize bytes long.
func Expand(chunk []byte) Schedule {
	if len(chunk) != BlockSize {
		panic(&PreconditionError{
			Op:  "expand",
			Len: len(chunk),
		})
	}
	var w Schedule

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(chunk[i*4:])
	}
	for i := 16; i < len(w); i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}
