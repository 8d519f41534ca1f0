//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"encoding/hex"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Digest is a SHA-1 checksum.
type Digest [Size]byte

// Hex returns the digest as lowercase hexadecimal string without
// separators.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// State holds the hash registers h0...h4.
type State [5]uint32

// Init returns the initial hash state.
func Init() State {
	return State{init0, init1, init2, init3, init4}
}

// Block processes one chunk and returns the updated state.
func (s State) Block(chunk []byte) State {
	w := Expand(chunk)
	return s.Compress(&w)
}

// Digest serializes the state into a digest.
func (s State) Digest() Digest {
	var digest Digest

	binary.BigEndian.PutUint32(digest[0:], s[0])
	binary.BigEndian.PutUint32(digest[4:], s[1])
	binary.BigEndian.PutUint32(digest[8:], s[2])
	binary.BigEndian.PutUint32(digest[12:], s[3])
	binary.BigEndian.PutUint32(digest[16:], s[4])

	return digest
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) Digest {
	state := Init()
	for chunk := range Chunks(Pad(data)) {
		state = state.Block(chunk)
	}
	return state.Digest()
}

// SumHex returns the SHA-1 checksum of the data as lowercase
// hexadecimal string.
func SumHex(data []byte) string {
	return Sum(data).Hex()
}
