//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package avalanche

import (
	"fmt"
	"io"

	"github.com/markkurossi/fips180/env"
	"github.com/markkurossi/fips180/sha1"
	"github.com/markkurossi/tabulate"
)

// DefaultSizes are the default message sizes in bytes. They span the
// padding boundary and multi-chunk messages.
var DefaultSizes = []int{1, 55, 56, 64, 65, 200}

// Stats contains the distance statistics of one message size.
type Stats struct {
	Size       int
	Samples    int
	MinBits    int
	MaxBits    int
	TotalBits  int
	Collisions int
}

// MeanBits returns the mean number of changed digest bits.
func (s *Stats) MeanBits() float64 {
	if s.Samples == 0 {
		return 0
	}
	return float64(s.TotalBits) / float64(s.Samples)
}

func (s *Stats) add(distance int) {
	s.Samples++
	s.TotalBits += distance
	if distance < s.MinBits {
		s.MinBits = distance
	}
	if distance > s.MaxBits {
		s.MaxBits = distance
	}
	if distance == 0 {
		s.Collisions++
	}
}

// Result contains the analysis result for all message sizes.
type Result struct {
	Stats []*Stats
}

// Collisions returns the number of flipped messages that produced an
// identical digest.
func (r *Result) Collisions() int {
	var count int
	for _, s := range r.Stats {
		count += s.Collisions
	}
	return count
}

// MeanBits returns the mean number of changed bits over all samples.
func (r *Result) MeanBits() float64 {
	var samples, total int
	for _, s := range r.Stats {
		samples += s.Samples
		total += s.TotalBits
	}
	if samples == 0 {
		return 0
	}
	return float64(total) / float64(samples)
}

// Analyze runs the avalanche analysis for the message sizes. The
// corpus is generated from a ChaCha20 stream keyed from the config's
// random source so a fixed source gives reproducible results.
func Analyze(config *env.Config, sizes []int) (*Result, error) {
	for _, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("avalanche: invalid message size %d", size)
		}
	}

	var key [32]byte
	if _, err := io.ReadFull(config.GetRandom(), key[:]); err != nil {
		return nil, fmt.Errorf("avalanche: seed: %w", err)
	}
	stream, err := newPRG(key[:])
	if err != nil {
		return nil, err
	}

	result := new(Result)
	for _, size := range sizes {
		stats := &Stats{
			Size:    size,
			MinBits: sha1.Size * 8,
		}
		for i := 0; i < config.GetSamples(); i++ {
			msg := stream.bytes(size)
			flipped := FlipBit(msg, stream.intn(size*8))
			stats.add(Distance(sha1.Sum(msg), sha1.Sum(flipped)))
		}
		result.Stats = append(result.Stats, stats)
	}
	return result, nil
}

// Print prints the analysis result as a table.
func (r *Result) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Samples").SetAlign(tabulate.MR)
	tab.Header("Min").SetAlign(tabulate.MR)
	tab.Header("Mean").SetAlign(tabulate.MR)
	tab.Header("Max").SetAlign(tabulate.MR)
	tab.Header("Coll").SetAlign(tabulate.MR)

	for _, s := range r.Stats {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", s.Size))
		row.Column(fmt.Sprintf("%d", s.Samples))
		row.Column(fmt.Sprintf("%d", s.MinBits))
		row.Column(fmt.Sprintf("%.2f", s.MeanBits()))
		row.Column(fmt.Sprintf("%d", s.MaxBits))
		row.Column(fmt.Sprintf("%d", s.Collisions))
	}
	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%.2f", r.MeanBits())).SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column(fmt.Sprintf("%d", r.Collisions())).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
