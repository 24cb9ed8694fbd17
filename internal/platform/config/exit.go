package config

import (
	"fmt"
	"os"
)

// Exitf writes one formatted line to stderr and terminates the process with
// exit code 1. Every CLI failure funnels through here.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
