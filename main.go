// Copyright (c) 2025 ToeiRei
// Trackmaster - project registry
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Trackmaster.
//
// Usage:
//
//	go run . [flags]
//	./trackmaster [flags]
//
// This launches the Trackmaster CLI. See --help for options.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/toeirei/trackmaster/ui/cli"
)

// version is set at build time using -ldflags, e.g.:
// go build -ldflags "-X main.version=1.2.3"
var version = "dev"

// main is the entrypoint for the Trackmaster CLI.
func main() {
	if os.Getenv("TRACKMASTER_SHOW_VERSION") == "1" {
		fmt.Fprintf(os.Stderr, "Trackmaster version: %s\n", version)
	}

	if err := cli.Execute(); err != nil {
		log.Printf("Trackmaster CLI error: %v", err)
		os.Exit(1)
	}
}
