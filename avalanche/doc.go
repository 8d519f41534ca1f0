//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package avalanche measures the bit sensitivity of SHA-1. For each
// sample, a pseudorandom message is hashed together with a copy that
// differs in exactly one bit, and the Hamming distance between the two
// digests is recorded. A good hash changes about half of the 160
// output bits; identical digests are collisions.
package avalanche
