//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markkurossi/fips180/sha1"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size FileSize
		str  string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1001, "1kB"},
		{2500000, "2MB"},
		{3000000001, "3GB"},
		{4000000000001, "4TB"},
	}
	for _, test := range tests {
		assert.Equal(t, test.str, test.size.String())
	}
}

func TestTiming(t *testing.T) {
	timing := New()
	s1 := timing.Sample("first", nil)
	s2 := timing.Sample("second", []string{"x"})
	s2.SubSample("sub", s2.End)
	s2.AbsSubSample("abs", time.Millisecond)

	require.Len(t, timing.Samples, 2)
	assert.Equal(t, timing.Start, s1.Start)
	assert.Equal(t, s1.End, s2.Start)
	assert.Equal(t, s2.End.Sub(timing.Start), timing.Total())
	require.Len(t, s2.Samples, 2)
	assert.Equal(t, s2.Start, s2.Samples[0].Start)
	assert.Equal(t, time.Millisecond, s2.Samples[1].Abs)

	var buf strings.Builder
	timing.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "sub")
	assert.Contains(t, out, "Total")
}

func TestPrintEmpty(t *testing.T) {
	var buf strings.Builder
	New().Print(&buf)
	assert.Empty(t, buf.String())
}

func TestProfile(t *testing.T) {
	data := []byte(strings.Repeat("abc", 100))
	digest, timing := Profile(data)
	assert.Equal(t, sha1.Sum(data), digest)

	require.Len(t, timing.Samples, 3)
	assert.Equal(t, "Pad", timing.Samples[0].Label)
	assert.Equal(t, []string{"320B"}, timing.Samples[0].Cols)
	assert.Equal(t, "Compress", timing.Samples[1].Label)
	assert.Equal(t, []string{"5×64"}, timing.Samples[1].Cols)
	assert.Len(t, timing.Samples[1].Samples, 2)
	assert.Equal(t, "Finalize", timing.Samples[2].Label)
}
