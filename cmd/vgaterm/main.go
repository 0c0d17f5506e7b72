// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/vgaterm/main.go
// Summary: Runs the kernel boot transcript into the emulated console and
// shows the resulting screen.
// Usage: Run `vgaterm` in a terminal for the viewer, or `vgaterm -dump`
// (or redirect stdout) for a plain-text dump.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/vgaterm/display"
	"github.com/framegrace/vgaterm/kernel"
	"github.com/framegrace/vgaterm/vga"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("vgaterm", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "Print the final screen as plain text instead of opening the viewer")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	mem := vga.NewMemory()
	fb := vga.NewFrameBuffer(mem)
	console := vga.NewConsole(fb)

	kernel.Boot(console, kernel.NewSampleRegisters())

	if *dump || !term.IsTerminal(int(os.Stdout.Fd())) {
		return display.DumpText(os.Stdout, fb)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal screen: %w", err)
	}

	viewer := display.NewViewer(display.NewTcellDriver(screen))
	if err := viewer.Init(); err != nil {
		return fmt.Errorf("init viewer: %w", err)
	}
	defer viewer.Close()

	viewer.Blit(fb)
	viewer.Wait()
	return nil
}
