//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package avalanche

import (
	"math/bits"

	"github.com/markkurossi/fips180/sha1"
)

// FlipBit returns a copy of data with the argument bit inverted. Bits
// are numbered little-endian within each byte.
func FlipBit(data []byte, bit int) []byte {
	result := make([]byte, len(data))
	copy(result, data)
	result[bit/8] ^= 1 << uint(bit%8)
	return result
}

// Distance returns the number of differing bits between the digests.
func Distance(a, b sha1.Digest) int {
	var count int
	for i := range a {
		count += bits.OnesCount8(a[i] ^ b[i])
	}
	return count
}
