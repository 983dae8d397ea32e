// Package main is the entry point for the ttstats CLI tool, which imports
// exported table-tennis match-history workbooks and computes player analytics.
package main

import "github.com/pable/go-tt-stats/cmd"

func main() {
	cmd.Execute()
}
