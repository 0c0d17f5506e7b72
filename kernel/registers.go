// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: kernel/registers.go
// Summary: Host-side stand-in for the GDT segment register dump routine.

package kernel

import "github.com/framegrace/vgaterm/vga"

// SampleRegisters reports a fixed set of segment selector values, matching
// what a freshly loaded flat GDT looks like. It stands in for the real dump
// routine when the transcript is reproduced on a workstation.
type SampleRegisters struct {
	CS, DS, ES, FS, GS, SS uint32
}

// NewSampleRegisters returns the selectors of the standard flat layout:
// code segment 0x08, every data segment 0x10.
func NewSampleRegisters() *SampleRegisters {
	return &SampleRegisters{CS: 0x08, DS: 0x10, ES: 0x10, FS: 0x10, GS: 0x10, SS: 0x10}
}

// PrintSegmentRegisters writes one "name: value" line per register through
// the console.
func (r *SampleRegisters) PrintSegmentRegisters(c *vga.Console) {
	regs := []struct {
		name  string
		value uint32
	}{
		{"cs", r.CS},
		{"ds", r.DS},
		{"es", r.ES},
		{"fs", r.FS},
		{"gs", r.GS},
		{"ss", r.SS},
	}
	for _, reg := range regs {
		c.Write(reg.name)
		c.Write(": ")
		c.WriteHex(reg.value)
		c.Write("\n")
	}
}
