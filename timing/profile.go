//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"fmt"
	"time"

	"github.com/markkurossi/fips180/sha1"
)

// Profile computes the SHA-1 digest of data one stage at a time and
// returns the digest with the timing of each stage.
func Profile(data []byte) (sha1.Digest, *Timing) {
	timing := New()

	padded := sha1.Pad(data)
	timing.Sample("Pad", []string{FileSize(len(padded)).String()})

	var expand, rounds time.Duration
	var chunks int

	state := sha1.Init()
	for chunk := range sha1.Chunks(padded) {
		start := time.Now()
		w := sha1.Expand(chunk)
		mid := time.Now()
		state = state.Compress(&w)
		end := time.Now()

		expand += mid.Sub(start)
		rounds += end.Sub(mid)
		chunks++
	}
	sample := timing.Sample("Compress", []string{fmt.Sprintf("%d×%d",
		chunks, sha1.BlockSize)})
	sample.AbsSubSample("Expand", expand)
	sample.AbsSubSample("Rounds", rounds)

	digest := state.Digest()
	timing.Sample("Finalize", []string{FileSize(sha1.Size).String()})

	return digest, timing
}
