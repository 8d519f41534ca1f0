//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
	"iter"
)

// PreconditionError describes an internal size invariant violation:
// a padded message or a chunk whose length does not match BlockSize.
// It is raised with panic and indicates a programming error.
type PreconditionError struct {
	Op  string
	Len int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sha1: %s: invalid length %d", e.Op, e.Len)
}

// Chunks returns an iterator over the BlockSize chunks of the padded
// message. The chunks are yielded in order and they share memory with
// padded. The iterator can be restarted. Chunks panics with
// *PreconditionError if the length of padded is not a multiple of
// BlockSize.
func Chunks(padded []byte) iter.Seq[[]byte] {
	if len(padded)%BlockSize != 0 {
		panic(&PreconditionError{
			Op:  "chunks",
			Len: len(padded),
		})
	}
	return func(yield func([]byte) bool) {
		for i := 0; i < len(padded); i += BlockSize {
			if !yield(padded[i : i+BlockSize : i+BlockSize]) {
				return
			}
		}
	}
}
