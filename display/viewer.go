// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/viewer.go
// Summary: Renders the emulated text-mode screen onto a host terminal.

package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/vgaterm/vga"
)

// palette maps the 16 VGA color indices to their tcell equivalents.
var palette = [16]tcell.Color{
	vga.Black:        tcell.ColorBlack,
	vga.Blue:         tcell.ColorNavy,
	vga.Green:        tcell.ColorGreen,
	vga.Cyan:         tcell.ColorTeal,
	vga.Red:          tcell.ColorMaroon,
	vga.Magenta:      tcell.ColorPurple,
	vga.Brown:        tcell.ColorOlive,
	vga.LightGrey:    tcell.ColorSilver,
	vga.DarkGrey:     tcell.ColorGray,
	vga.LightBlue:    tcell.ColorBlue,
	vga.LightGreen:   tcell.ColorLime,
	vga.LightCyan:    tcell.ColorAqua,
	vga.LightRed:     tcell.ColorRed,
	vga.LightMagenta: tcell.ColorFuchsia,
	vga.Yellow:       tcell.ColorYellow,
	vga.White:        tcell.ColorWhite,
}

// Viewer draws the visible 80×25 grid of a frame buffer onto a Driver. It is
// read-only: it never feeds input back to the console.
type Viewer struct {
	driver     Driver
	styleCache map[vga.Attr]tcell.Style
}

// NewViewer creates a viewer over the given driver.
func NewViewer(d Driver) *Viewer {
	return &Viewer{
		driver:     d,
		styleCache: make(map[vga.Attr]tcell.Style),
	}
}

// Init initializes the underlying screen.
func (v *Viewer) Init() error {
	if err := v.driver.Init(); err != nil {
		return err
	}
	v.driver.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack))
	v.driver.HideCursor()
	return nil
}

// Blit copies every visible cell of the frame buffer to the screen and
// presents the result.
func (v *Viewer) Blit(fb *vga.FrameBuffer) {
	for y := 0; y < vga.Height; y++ {
		for x := 0; x < vga.Width; x++ {
			e := fb.EntryAt(y, x)
			v.driver.SetContent(x, y, glyphFor(e.Char()), nil, v.style(e.Attr()))
		}
	}
	v.driver.Show()
}

// Wait blocks until a key is pressed or the terminal closes.
func (v *Viewer) Wait() {
	for {
		switch v.driver.PollEvent().(type) {
		case *tcell.EventKey:
			return
		case nil:
			return
		}
	}
}

// Close shuts down the underlying screen.
func (v *Viewer) Close() {
	v.driver.Fini()
}

func (v *Viewer) style(attr vga.Attr) tcell.Style {
	if st, ok := v.styleCache[attr]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(palette[attr.Fg()]).
		Background(palette[attr.Bg()])
	v.styleCache[attr] = st
	return st
}
