// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/viewer_test.go
// Summary: Renders a booted screen onto a simulation screen and checks
// glyphs and colors cell by cell.

package display

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/vgaterm/vga"
)

func newSimViewer(t *testing.T) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	v := NewViewer(NewTcellDriver(screen))
	if err := v.Init(); err != nil {
		t.Fatalf("init viewer: %v", err)
	}
	screen.SetSize(vga.Width, vga.Height)
	return v, screen
}

func TestBlitGlyphsAndColors(t *testing.T) {
	mem := vga.NewMemory()
	fb := vga.NewFrameBuffer(mem)
	fb.Init()
	c := vga.NewConsole(fb)
	c.Write("ok\n")
	c.Err("bad")

	v, screen := newSimViewer(t)
	defer v.Close()
	v.Blit(fb)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != 'o' {
		t.Errorf("cell (0,0) = %q, want 'o'", r)
	}
	wantInfo := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if style != wantInfo {
		t.Errorf("cell (0,0) style = %v, want white on black", style)
	}

	r, _, style, _ = screen.GetContent(0, 1)
	if r != 'b' {
		t.Errorf("cell (0,1) = %q, want 'b'", r)
	}
	wantErr := tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack)
	if style != wantErr {
		t.Errorf("cell (0,1) style = %v, want red on black", style)
	}

	// Untouched cells render as blanks from Init.
	r, _, _, _ = screen.GetContent(vga.Width-1, vga.Height-1)
	if r != ' ' {
		t.Errorf("cell (79,24) = %q, want ' '", r)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	v, _ := newSimViewer(t)
	defer v.Close()

	attr := vga.NewAttr(vga.Yellow, vga.Black)
	first := v.style(attr)
	second := v.style(attr)
	if first != second {
		t.Fatalf("style cache returned different styles for the same attr")
	}
	if len(v.styleCache) != 1 {
		t.Fatalf("style cache has %d entries, want 1", len(v.styleCache))
	}
}
