// Command logdemo drives a file sink from several producer goroutines,
// each logging a fixed number of numbered lines, and reports what was
// written.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
