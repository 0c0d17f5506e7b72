// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/console.go
// Summary: Kernel console write path: cursor advance and severity colors.

package vga

// Console is the kernel's diagnostic console: a frame buffer plus the single
// write cursor. Severity only selects the attribute byte of a write; it never
// alters control flow.
type Console struct {
	fb  *FrameBuffer
	row int
	col int
}

// NewConsole creates the console over the given frame buffer with the cursor
// at the top-left corner.
func NewConsole(fb *FrameBuffer) *Console {
	return &Console{fb: fb}
}

// Init clears the frame buffer and homes the cursor.
func (c *Console) Init() {
	c.fb.Init()
	c.row, c.col = 0, 0
}

// Write prints s in white on black.
func (c *Console) Write(s string) {
	c.put(s, NewAttr(White, Black))
}

// Err prints s in red on black. The color is the only difference from Write;
// nothing halts or escalates.
func (c *Console) Err(s string) {
	c.put(s, NewAttr(Red, Black))
}

// Warn prints s in yellow on black.
func (c *Console) Warn(s string) {
	c.put(s, NewAttr(Yellow, Black))
}

// WriteHex prints v through the fixed-width hex formatter in white on black.
func (c *Console) WriteHex(v uint32) {
	c.Write(FormatHex(v))
}

// Pos returns the current cursor position (row, col).
func (c *Console) Pos() (int, int) {
	return c.row, c.col
}

// put iterates s one byte at a time. A newline advances the row and resets
// the column without writing a cell. Everything else is written at the cursor
// and advances the column. There is no wrap at the grid width and no limit on
// the row: past the grid the write lands in adjacent adapter memory (see
// FrameBuffer.PutCell).
func (c *Console) put(s string, attr Attr) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			c.row++
			c.col = 0
			continue
		}
		c.fb.PutCell(c.row, c.col, s[i], attr)
		c.col++
	}
}
