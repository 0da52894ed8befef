//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/ghost-range/internal/gui"
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

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Seed:      seed,
		Mute:      mute,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
