package main

import (
	"fmt"
	"os"
	"runtime"

	"isoview/internal/commands"
	"isoview/internal/env"
	"isoview/internal/logger"
)

// raylib must be driven from the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	log := logger.New()
	fsys := os.DirFS(".")
	if err := env.Load(fsys, ".env"); err != nil {
		log.Logf("env: %v", err)
	}

	a := &app{log: log, fsys: fsys, out: os.Stdout}
	reg := commands.NewRegistry("run")
	a.register(reg)

	if err := reg.Execute(os.Args[1:]); err != nil {
		log.Logf("fatal: %v", err)
		fmt.Fprintln(os.Stderr, "isoview:", err)
		fmt.Fprintln(os.Stderr, "commands:")
		reg.PrintUsage(os.Stderr)
		os.Exit(1)
	}
}
