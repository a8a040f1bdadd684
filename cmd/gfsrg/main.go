// Package main provides the gfsrg binary entry point.
// gfsrg enumerates power-difference graphs over GF(2^power) and reports their
// connectivity and strong regularity.
package main

import (
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "gfsrg"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
