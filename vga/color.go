// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vga/color.go
// Summary: The 16-color VGA text-mode palette and attribute byte packing.

package vga

// Color is an index into the standard 16-color VGA text-mode palette.
type Color byte

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	DarkGrey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// Attr is a packed attribute byte: foreground color in the low nibble,
// background color in the high nibble.
type Attr byte

// NewAttr packs a foreground/background pair into an attribute byte.
func NewAttr(fg, bg Color) Attr {
	return Attr(byte(fg) | byte(bg)<<4)
}

// Fg returns the foreground color index.
func (a Attr) Fg() Color {
	return Color(a & 0x0F)
}

// Bg returns the background color index.
func (a Attr) Bg() Color {
	return Color(a >> 4)
}
