// SPDX-License-Identifier: MIT

// Command corrmap builds lower-triangular correlation heatmaps from table documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
