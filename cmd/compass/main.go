// Package main provides the entry point for the compass CLI.
//
// compass serves the Founder's Compass Part 2 workbook as a local web
// application and renders answers files into printable reports.
//
// Usage:
//
//	compass serve
//	compass export answers.yaml
//	compass summary answers.yaml
//
// See --help for all available options.
package main

// main is the entry point for compass.
func main() {
	Execute()
}
