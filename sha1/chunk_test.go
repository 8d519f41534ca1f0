//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"errors"
	"testing"
)

func TestChunks(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	for i := range padded {
		padded[i] = byte(i / BlockSize)
	}

	// Iterate twice to verify the sequence restarts.
	for pass := 0; pass < 2; pass++ {
		var count int
		for chunk := range Chunks(padded) {
			if len(chunk) != BlockSize {
				t.Fatalf("chunk %d: length %d", count, len(chunk))
			}
			for _, b := range chunk {
				if int(b) != count {
					t.Fatalf("chunk %d: unexpected content %d", count, b)
				}
			}
			count++
		}
		if count != 3 {
			t.Errorf("pass %d: got %d chunks, expected 3", pass, count)
		}
	}
}

func TestChunksBreak(t *testing.T) {
	var count int
	for range Chunks(make([]byte, 4*BlockSize)) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("got %d chunks, expected 2", count)
	}
}

func TestChunksEmpty(t *testing.T) {
	for range Chunks(nil) {
		t.Fatalf("unexpected chunk")
	}
}

func TestChunksPrecondition(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		var perr *PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("expected PreconditionError, got %T", err)
		}
		if perr.Op != "chunks" || perr.Len != 65 {
			t.Errorf("unexpected error: %v", perr)
		}
	}()
	Chunks(make([]byte, 65))
}
