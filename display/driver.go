// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: display/driver.go
// Summary: Host screen driver interface the viewer renders through.

package display

import "github.com/gdamore/tcell/v2"

// Driver is the subset of a host terminal screen the viewer needs. It exists
// so tests can render against a simulation screen instead of a real terminal.
type Driver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Show()
	PollEvent() tcell.Event
}

// TcellDriver adapts a tcell.Screen to the Driver interface.
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver wraps the provided screen.
func NewTcellDriver(screen tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: screen}
}

func (d *TcellDriver) Init() error {
	return d.screen.Init()
}

func (d *TcellDriver) Fini() {
	d.screen.Fini()
}

func (d *TcellDriver) Size() (int, int) {
	return d.screen.Size()
}

func (d *TcellDriver) SetStyle(style tcell.Style) {
	d.screen.SetStyle(style)
}

func (d *TcellDriver) HideCursor() {
	d.screen.HideCursor()
}

func (d *TcellDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellDriver) Show() {
	d.screen.Show()
}

func (d *TcellDriver) PollEvent() tcell.Event {
	return d.screen.PollEvent()
}
