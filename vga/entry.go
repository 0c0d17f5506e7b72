// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/entry.go
// Summary: The 16-bit character cell word written to text-mode video memory.

package vga

// Entry is one text-mode cell as the hardware sees it: the character code in
// the low byte, the attribute byte in the high byte. This layout is the
// bit-exact contract with the display adapter.
type Entry uint16

// NewEntry packs a character code and attribute into a cell word.
func NewEntry(ch byte, attr Attr) Entry {
	return Entry(ch) | Entry(attr)<<8
}

// Char returns the character code of the cell.
func (e Entry) Char() byte {
	return byte(e)
}

// Attr returns the attribute byte of the cell.
func (e Entry) Attr() Attr {
	return Attr(e >> 8)
}
