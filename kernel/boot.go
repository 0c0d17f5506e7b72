// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: kernel/boot.go
// Summary: The kernel bring-up sequence that produces the boot transcript.

package kernel

import "github.com/framegrace/vgaterm/vga"

// RegisterReporter is the descriptor-table diagnostics routine invoked during
// bring-up. It takes no inputs and reports solely through the console; what
// it prints is its own business.
type RegisterReporter interface {
	PrintSegmentRegisters(c *vga.Console)
}

// Boot runs the reference bring-up sequence: clear the console, dump the
// segment registers, then emit the demo transcript at each severity.
func Boot(c *vga.Console, regs RegisterReporter) {
	c.Init()
	c.Write("registers: \n")
	regs.PrintSegmentRegisters(c)

	c.Write("Hello, world!\n")
	c.Write("some more text")
	c.Write(", and more...\n")
	c.Err("NO MORE INFO\n")
	c.Warn("WARNING\n")
}
