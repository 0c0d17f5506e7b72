// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/memory.go
// Summary: Emulated video adapter memory with the text buffer at 0xB8000.

package vga

const (
	// TextBufferAddr is the physical address of the color text-mode buffer.
	// It never changes for the lifetime of the machine.
	TextBufferAddr = 0xB8000

	// regionEnd bounds the emulated adapter window (0xB8000..0xC0000,
	// 32 KiB, 16384 cell words).
	regionEnd = 0xC0000
)

// Memory emulates the adapter memory window that backs the text-mode screen.
// The visible 80×25 grid occupies only the first 2000 words; the rest of the
// window is ordinary adjacent memory, which is exactly what unchecked console
// writes end up corrupting on real hardware.
type Memory struct {
	words []Entry
}

// NewMemory allocates the emulated adapter window. It is created once at
// startup and never reallocated or relocated.
func NewMemory() *Memory {
	return &Memory{words: make([]Entry, (regionEnd-TextBufferAddr)/2)}
}

// WordAt returns the cell word at the given physical address. Used by the
// viewer and by tests to observe what the console wrote; the console itself
// never reads memory back.
func (m *Memory) WordAt(addr uint32) Entry {
	return m.words[(addr-TextBufferAddr)/2]
}

// textBuffer exposes the window starting at the text buffer address. The
// slice deliberately extends past the visible grid to the end of the emulated
// region.
func (m *Memory) textBuffer() []Entry {
	return m.words
}
