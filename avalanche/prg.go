//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package avalanche

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// prg is a ChaCha20 keystream generator with a zero nonce.
type prg struct {
	c *chacha20.Cipher
}

func newPRG(key []byte) (*prg, error) {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("avalanche: chacha20: %w", err)
	}
	return &prg{
		c: c,
	}, nil
}

// bytes returns the next n bytes of the keystream.
func (p *prg) bytes(n int) []byte {
	out := make([]byte, n)
	// Keystream XOR zeros is the keystream.
	p.c.XORKeyStream(out, out)
	return out
}

// intn returns a value in [0, n).
func (p *prg) intn(n int) int {
	return int(binary.BigEndian.Uint64(p.bytes(8)) % uint64(n))
}
