// Copyright © 2025 Vgaterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: kernel/alloc.go
// Summary: Declared heap allocator contract; no implementation exists at
// this boot stage.

package kernel

// Allocator is the heap contract the kernel declares during bring-up. Nothing
// in the console path calls it; it exists so later stages agree on the shape.
type Allocator interface {
	// Alloc returns the address of a block of at least size bytes, or
	// false when no memory is available.
	Alloc(size uint32) (uint32, bool)

	// Free releases a block previously returned by Alloc.
	Free(addr uint32)
}
