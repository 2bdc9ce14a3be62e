package main

import (
	"os"

	"github.com/vfg2006/retention-analysis/pkg/exitcode"
)

func main() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	os.Exit(exitcode.Report(os.Stderr, rootCmd.Execute()))
}
