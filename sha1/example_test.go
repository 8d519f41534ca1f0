//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
)

func ExampleSum() {
	digest := Sum([]byte("abc"))
	fmt.Printf("%x\n", digest[:])
	// Output: a9993e364706816aba3e25717850c26c9cd0d89d
}

func ExampleSumHex() {
	fmt.Println(SumHex([]byte("The quick brown fox jumps over the lazy dog")))
	// Output: 2fd4e1c67a2d28fced849ee1bb76e7391b93eb12
}

// Example computes the digest stage by stage.
func Example() {
	data := []byte("message digest")

	padded := Pad(data)
	fmt.Printf("padded=%d\n", len(padded))

	state := Init()
	for chunk := range Chunks(padded) {
		w := Expand(chunk)
		state = state.Compress(&w)
	}
	fmt.Printf("digest=%s\n", state.Digest())

	// Output:
	// padded=64
	// digest=c12252ceda8be8994d5fa0290a47231c1d16aae3
}
