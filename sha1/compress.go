//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Rounds is the number of compression rounds.
const Rounds = 80

var roundK = [4]uint32{_K0, _K1, _K2, _K3}

// K returns the additive constant of the round t.
func K(t int) uint32 {
	return roundK[t/20]
}

// F computes the logical function of the round t.
func F(t int, b, c, d uint32) uint32 {
	switch t / 20 {
	case 0:
		return (b & c) | (^b & d)
	case 2:
		return (b & c) | (b & d) | (c & d)
	default:
		return b ^ c ^ d
	}
}

// Compress runs the 80 rounds over the schedule w and returns the
// state with the round result added to it.
//
// All register arithmetic is on uint32 and must wrap modulo 2^32.
// Widening any of the sums below silently produces wrong digests.
func (s State) Compress(w *Schedule) State {
	a, b, c, d, e := s[0], s[1], s[2], s[3], s[4]

	for t := 0; t < Rounds; t++ {
		temp := bits.RotateLeft32(a, 5) + F(t, b, c, d) + e + K(t) + w[t]
		a, b, c, d, e = temp, a, bits.RotateLeft32(b, 30), c, d
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e

	return s
}
