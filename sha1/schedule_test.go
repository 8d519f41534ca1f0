//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"math/bits"
	"testing"
)

func TestExpand(t *testing.T) {
	padded := Pad([]byte("abc"))
	w := Expand(padded)

	expected := []uint32{
		0x61626380, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0x00000018,
	}
	for i, e := range expected {
		if w[i] != e {
			t.Errorf("w[%d]=%08x, expected %08x", i, w[i], e)
		}
	}
	for i := 16; i < len(w); i++ {
		e := bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
		if w[i] != e {
			t.Errorf("w[%d]=%08x, expected %08x", i, w[i], e)
		}
	}
	// w[16] = rotl1(w[13]^w[8]^w[2]^w[0])
	if w[16] != 0xc2c4c700 {
		t.Errorf("w[16]=%08x, expected c2c4c700", w[16])
	}
}

func TestExpandPrecondition(t *testing.T) {
	for _, n := range []int{0, 63, 65, 128} {
		func() {
			defer func() {
				r := recover()
				perr, ok := r.(*PreconditionError)
				if !ok {
					t.Fatalf("Expand(%d bytes): expected PreconditionError, got %v",
						n, r)
				}
				if perr.Len != n {
					t.Errorf("Expand(%d bytes): Len=%d", n, perr.Len)
				}
			}()
			Expand(make([]byte, n))
		}()
	}
}
