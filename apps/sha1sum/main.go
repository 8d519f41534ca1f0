//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.WithError(err).Fatal("sha1sum failed")
	}
}
