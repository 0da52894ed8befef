//go:build !cgo
// +build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time (see .goreleaser.yaml).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		mute        bool
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "fixed run seed (0 picks one from the clock)")
	flag.BoolVar(&mute, "mute", false, "disable all sound")
	flag.Parse()

	if showVersion {
		fmt.Printf("Ghost Range %s (%s) %s\n", version, commit, date)
		return
	}

	_ = seed
	_ = mute
	fmt.Fprintln(os.Stderr, "Ghost Range requires the 3D client build (cgo/raylib enabled).")
	os.Exit(1)
}
