//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in
// FIPS 180-1.
//
// The digest computation is split into its logical stages which are
// all exported: Pad appends the message padding, Chunks iterates the
// padded message in BlockSize chunks, Expand derives the 80-word
// message schedule of a chunk, and State.Compress runs the 80 mixing
// rounds. Sum and SumHex combine the stages:
//
//	state := sha1.Init()
//	for chunk := range sha1.Chunks(sha1.Pad(data)) {
//		w := sha1.Expand(chunk)
//		state = state.Compress(&w)
//	}
//	digest := state.Digest()
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1
