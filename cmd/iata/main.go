// Command iata validates IATA codes and prints them in canonical form.
//
// Usage:
//
//	iata [-o text|json|yaml] <kind> <code>...
//	iata -v | --version
//
// Kinds: aircraft, airline, airport, city, flight.
//
// Examples:
//
//	$ iata airport JFK LAX
//	JFK
//	LAX
//
//	$ iata -o json flight 7 1234
//	[7,1234]
//
//	$ iata airline AA1
//	airline code "AA1": invalid length 3, expected 2
//	iata: 1 of 1 airline codes invalid
//
// Invalid codes are reported on stderr and make the command exit with status 1.
// Valid codes given alongside them are still printed.
package main

import (
	"fmt"
	"io"
	"os"
)

// Version information set by goreleaser ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "iata: %v\n", err)
		return 1
	}
	return 0
}
