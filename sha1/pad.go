//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
)

// PaddedLen returns the length of the padded message for an n byte
// message.
func PaddedLen(n int) int {
	// Message, 0x80 marker, and the 8-byte length, rounded up to
	// BlockSize.
	return (n + 1 + 8 + BlockSize - 1) &^ (BlockSize - 1)
}

// Pad returns a copy of message with the SHA-1 padding appended: a
// single 1 bit, 0 bits until the length is 56 mod 64 bytes, and the
// message length in bits as a 64-bit big-endian integer. The length of
// the result is always a multiple of BlockSize.
func Pad(message []byte) []byte {
	length := uint64(len(message))

	padded := make([]byte, PaddedLen(len(message)))
	copy(padded, message)
	padded[len(message)] = 0x80

	// Length in bits.
	binary.BigEndian.PutUint64(padded[len(padded)-8:], length<<3)

	return padded
}
