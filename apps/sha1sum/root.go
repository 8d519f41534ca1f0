//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"
	"io"

	"github.com/markkurossi/text/superscript"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/markkurossi/fips180/env"
)

type options struct {
	test      bool
	avalanche bool
	file      bool
	profile   bool
	samples   int
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	cmd := &cobra.Command{
		Use:   "sha1sum [message...]",
		Short: "SHA-1 hash tool",
		Long: fmt.Sprintf(`SHA-1 hash tool (FIPS 180-1).

Hashes the message arguments as UTF-8 text and prints their SHA-1
digests. Without arguments, reads messages from standard input one
line at a time until 'quit', 'exit', 'q', or end of input. The line
'test' runs the known-answer test suite.

Messages must be shorter than 2%s bits.`, superscript.Itoa(64)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := &env.Config{
				Samples:  opts.samples,
				LogLevel: opts.logLevel,
			}
			sh := &shell{
				config: config,
				opts:   opts,
				log:    newLogger(cmd.ErrOrStderr(), config.GetLogLevel()),
				in:     cmd.InOrStdin(),
				out:    cmd.OutOrStdout(),
			}
			return sh.run(args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.test, "test", "t", false, "run the test suite")
	flags.BoolVarP(&opts.avalanche, "avalanche", "a", false,
		"run the avalanche analysis")
	flags.BoolVarP(&opts.file, "file", "f", false,
		"hash the contents of the argument files")
	flags.BoolVarP(&opts.profile, "profile", "p", false,
		"print timing profile of each digest")
	flags.IntVarP(&opts.samples, "samples", "n", env.DefaultSamples,
		"avalanche samples per message size")
	flags.StringVar(&opts.logLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")

	return cmd
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.Out = out
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}
	log.Level = level
	return log
}
