//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package sha1

// Vector defines a known-answer test vector.
type Vector struct {
	Message  string
	Expected string
}

// Vectors are the known-answer test vectors.
var Vectors = []Vector{
	{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{"a", "86f7e437faa5a7fce15d1ddcb9eaeaea377667b8"},
	{"message digest", "c12252ceda8be8994d5fa0290a47231c1d16aae3"},
	{
		"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		"84983e441c3bd26ebaae4aa1f95129e5e54670f1",
	},
	{
		"The quick brown fox jumps over the lazy dog",
		"2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
	},
	{
		"The quick brown fox jumps over the lazy cog",
		"de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3",
	},
	{"Hello World", "0a4d55a8d778e5022fab701977c5d840bbc486d0"},
	{"password", "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
}
