// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/dump_test.go
// Summary: Checks the plain-text screen dump output.

package display

import (
	"strings"
	"testing"

	"github.com/framegrace/vgaterm/vga"
)

func TestDumpText(t *testing.T) {
	mem := vga.NewMemory()
	fb := vga.NewFrameBuffer(mem)
	fb.Init()
	c := vga.NewConsole(fb)
	c.Write("first line\n")
	c.Warn("second line")

	var sb strings.Builder
	if err := DumpText(&sb, fb); err != nil {
		t.Fatalf("dump: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != vga.Height {
		t.Fatalf("dump has %d lines, want %d", len(lines), vga.Height)
	}
	if lines[0] != "first line" {
		t.Errorf("line 0 = %q, want %q", lines[0], "first line")
	}
	if lines[1] != "second line" {
		t.Errorf("line 1 = %q, want %q", lines[1], "second line")
	}
	for i := 2; i < vga.Height; i++ {
		if lines[i] != "" {
			t.Errorf("line %d = %q, want empty", i, lines[i])
		}
	}
}

func TestGlyphMapping(t *testing.T) {
	if glyphFor('A') != 'A' {
		t.Errorf("glyphFor('A') = %q", glyphFor('A'))
	}
	if glyphFor(0x00) != ' ' {
		t.Errorf("glyphFor(0x00) = %q, want blank", glyphFor(0x00))
	}
	if glyphFor(0xB0) != '░' {
		t.Errorf("glyphFor(0xB0) = %q, want light shade", glyphFor(0xB0))
	}
	if glyphFor(0xC4) != '─' {
		t.Errorf("glyphFor(0xC4) = %q, want horizontal line", glyphFor(0xC4))
	}
}
