// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/framebuffer.go
// Summary: The fixed 80×25 text-mode frame buffer and its cell write path.

package vga

const (
	// Width and Height are fixed by the hardware text mode.
	Width  = 80
	Height = 25
)

// FrameBuffer is the 80×25 grid of character cells at the fixed text buffer
// address. There is exactly one owner and one thread of control; the type
// carries no locking.
type FrameBuffer struct {
	cells []Entry
}

// NewFrameBuffer binds a frame buffer to the text buffer of the given
// adapter memory.
func NewFrameBuffer(mem *Memory) *FrameBuffer {
	return &FrameBuffer{cells: mem.textBuffer()}
}

// Init writes every cell of the grid to a blank: a space character with
// white-on-black attributes. The effect is immediately visible; there is no
// flush step.
func (fb *FrameBuffer) Init() {
	blank := NewEntry(' ', NewAttr(White, Black))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			fb.cells[y*Width+x] = blank
		}
	}
}

// PutCell writes one cell at (row, col). Coordinates are NOT bounds-checked:
// a row or column past the grid indexes linearly into the adjacent adapter
// memory and silently corrupts it, the same failure mode the real console
// has. Writes past the end of the emulated window fault.
func (fb *FrameBuffer) PutCell(row, col int, ch byte, attr Attr) {
	fb.cells[row*Width+col] = NewEntry(ch, attr)
}

// EntryAt reads the cell at (row, col). The console write path never reads
// cells back; this exists for the viewer and for tests.
func (fb *FrameBuffer) EntryAt(row, col int) Entry {
	return fb.cells[row*Width+col]
}
