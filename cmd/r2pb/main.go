// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The r2pb Authors

// Package main is the entry point for the r2pb CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tz-bb/r2pb/cmd/r2pb/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
