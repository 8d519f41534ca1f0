//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"

	"github.com/markkurossi/fips180/avalanche"
	"github.com/markkurossi/fips180/env"
	"github.com/markkurossi/fips180/selftest"
	"github.com/markkurossi/fips180/sha1"
	"github.com/markkurossi/fips180/timing"
)

type shell struct {
	config *env.Config
	opts   *options
	log    *logrus.Logger
	in     io.Reader
	out    io.Writer
}

func (sh *shell) run(args []string) error {
	switch {
	case sh.opts.test:
		return sh.selfTest()

	case sh.opts.avalanche:
		return sh.analyze()

	case sh.opts.file:
		if len(args) == 0 {
			return errors.New("no files specified")
		}
		for _, arg := range args {
			if err := sh.hashFile(arg); err != nil {
				return err
			}
		}
		return nil

	case len(args) == 0:
		return sh.interactive()

	default:
		for _, arg := range args {
			digest, _, err := sh.digest(arg)
			if err != nil {
				return err
			}
			fmt.Fprintf(sh.out, "Message: '%s'\n", arg)
			fmt.Fprintf(sh.out, "SHA-1: %s\n\n", digest)
		}
		return nil
	}
}

// encodeText converts text to its UTF-8 bytes. Ill-formed sequences
// are replaced with U+FFFD.
func encodeText(text string) ([]byte, error) {
	encoded, err := unicode.UTF8.NewEncoder().String(text)
	if err != nil {
		return nil, errors.Wrap(err, "encode UTF-8")
	}
	return []byte(encoded), nil
}

// digest computes the SHA-1 of the text message. It also returns the
// length of the encoded message in bytes.
func (sh *shell) digest(msg string) (sha1.Digest, int, error) {
	data, err := encodeText(msg)
	if err != nil {
		return sha1.Digest{}, 0, err
	}
	sh.log.WithFields(logrus.Fields{
		"length": len(data),
		"padded": sha1.PaddedLen(len(data)),
		"chunks": sha1.PaddedLen(len(data)) / sha1.BlockSize,
	}).Debug("hashing message")

	if !sh.opts.profile {
		return sha1.Sum(data), len(data), nil
	}
	digest, t := timing.Profile(data)
	t.Print(sh.out)
	return digest, len(data), nil
}

func (sh *shell) hashFile(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	h := sha1.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return errors.Wrapf(err, "read %s", file)
	}
	sh.log.WithFields(logrus.Fields{
		"file":   file,
		"length": n,
	}).Debug("hashed file")

	fmt.Fprintf(sh.out, "%x  %s\n", h.Sum(nil), file)
	return nil
}

func (sh *shell) selfTest() error {
	report := selftest.Run(sha1.Vectors)
	report.Print(sh.out)
	if err := report.Err(); err != nil {
		return errors.Wrap(err, "self-test")
	}
	return nil
}

func (sh *shell) analyze() error {
	sh.log.WithFields(logrus.Fields{
		"sizes":   avalanche.DefaultSizes,
		"samples": sh.config.GetSamples(),
	}).Debug("avalanche analysis")

	result, err := avalanche.Analyze(sh.config, avalanche.DefaultSizes)
	if err != nil {
		return err
	}
	result.Print(sh.out)
	if result.Collisions() > 0 {
		return errors.Errorf("avalanche: %d collisions", result.Collisions())
	}
	return nil
}
