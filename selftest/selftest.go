//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package selftest runs SHA-1 known-answer tests and reports their
// results.
package selftest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"

	"github.com/markkurossi/fips180/sha1"
)

const maxMessage = 40

// Result contains the result of one test vector.
type Result struct {
	Vector sha1.Vector
	Got    string
}

// Pass tests if the computed digest matches the expected digest.
func (r *Result) Pass() bool {
	return r.Got == r.Vector.Expected
}

// Report contains the results of a test run.
type Report struct {
	Results []*Result
}

// Run hashes all vectors and returns the test report.
func Run(vectors []sha1.Vector) *Report {
	report := new(Report)
	for _, v := range vectors {
		report.Results = append(report.Results, &Result{
			Vector: v,
			Got:    sha1.SumHex([]byte(v.Message)),
		})
	}
	return report
}

// Passed returns the number of passed tests.
func (r *Report) Passed() int {
	var count int
	for _, result := range r.Results {
		if result.Pass() {
			count++
		}
	}
	return count
}

// OK tests if all tests passed.
func (r *Report) OK() bool {
	return r.Passed() == len(r.Results)
}

// Err returns an error describing the failed tests or nil if all
// tests passed.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return errors.Errorf("%d/%d tests failed",
		len(r.Results)-r.Passed(), len(r.Results))
}

// Print prints the report as a table.
func (r *Report) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Message").SetAlign(tabulate.ML)
	tab.Header("SHA-1").SetAlign(tabulate.ML)
	tab.Header("Status").SetAlign(tabulate.MC)

	for _, result := range r.Results {
		row := tab.Row()
		row.Column(displayMessage(result.Vector.Message))
		row.Column(result.Got)
		if result.Pass() {
			row.Column("PASS")
		} else {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)

			row = tab.Row()
			row.Column("╰╴expected").SetFormat(tabulate.FmtItalic)
			row.Column(result.Vector.Expected).SetFormat(tabulate.FmtItalic)
			row.Column("")
		}
	}
	row := tab.Row()
	row.Column("Results").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d/%d tests passed", r.Passed(), len(r.Results))).
		SetFormat(tabulate.FmtBold)
	if r.OK() {
		row.Column("PASS").SetFormat(tabulate.FmtBold)
	} else {
		row.Column("FAIL").SetFormat(tabulate.FmtBold)
	}

	tab.Print(w)
}

func displayMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxMessage {
		return strconv.Quote(msg)
	}
	return strconv.Quote(string(runes[:maxMessage])) + "..."
}
