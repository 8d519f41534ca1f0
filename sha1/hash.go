//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"hash"
)

// hasher buffers all written data and computes the checksum over the
// full buffer on Sum.
type hasher struct {
	buf []byte
}

// New returns a new hash.Hash computing the SHA-1 checksum. The
// returned hash keeps the whole message in memory until Sum is
// called; it is not safe for concurrent use.
func New() hash.Hash {
	return new(hasher)
}

func (h *hasher) Write(p []byte) (int, error) {
	h.buf = append(h.buf, p...)
	return len(p), nil
}

func (h *hasher) Sum(in []byte) []byte {
	digest := Sum(h.buf)
	return append(in, digest[:]...)
}

func (h *hasher) Reset() {
	h.buf = h.buf[:0]
}

func (h *hasher) Size() int { return Size }

func (h *hasher) BlockSize() int { return BlockSize }
