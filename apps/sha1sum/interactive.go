//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var banner = strings.Repeat("=", 70)

func (sh *shell) interactive() error {
	fmt.Fprintf(sh.out, "\n%s\n SHA-1 Interactive Hash Tool\n%s\n",
		banner, banner)
	fmt.Fprintf(sh.out,
		"\nEnter messages to hash (type 'quit' or 'exit' to stop)\n")
	fmt.Fprintf(sh.out, "Type 'test' to run test suite\n\n")

	reader := bufio.NewReader(sh.in)
	for {
		fmt.Fprintf(sh.out, "Enter message: ")
		line, err := reader.ReadString('\n')
		if len(line) > 0 && sh.handleLine(strings.TrimSpace(line)) {
			fmt.Fprintf(sh.out, "\nGoodbye!\n")
			return nil
		}
		if err == io.EOF {
			fmt.Fprintf(sh.out, "\nGoodbye!\n")
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}
	}
}

// handleLine processes one input line and reports whether the session
// should end.
func (sh *shell) handleLine(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true

	case "test":
		if err := sh.selfTest(); err != nil {
			sh.log.WithError(err).Error("self-test failed")
		}
		return false
	}

	if len(input) == 0 {
		fmt.Fprintf(sh.out, "Empty string detected\n")
	}
	digest, length, err := sh.digest(input)
	if err != nil {
		sh.log.WithError(err).Error("hash failed")
		return false
	}
	fmt.Fprintf(sh.out, "\n Message: '%s'\n", input)
	fmt.Fprintf(sh.out, " Length: %d bytes (%d bits)\n", length, length*8)
	fmt.Fprintf(sh.out, " SHA-1: %s\n\n", digest)
	return false
}
