// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/dump.go
// Summary: Plain-text dump of the visible screen for headless use.

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/framegrace/vgaterm/vga"
)

// DumpText writes the visible grid to w, one line per row, with trailing
// blanks trimmed. Attributes are not represented.
func DumpText(w io.Writer, fb *vga.FrameBuffer) error {
	var line strings.Builder
	for y := 0; y < vga.Height; y++ {
		line.Reset()
		for x := 0; x < vga.Width; x++ {
			line.WriteRune(glyphFor(fb.EntryAt(y, x).Char()))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
