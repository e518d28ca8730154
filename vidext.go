// This file is part of VidExt.
//
// VidExt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// VidExt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with VidExt.  If not, see <https://www.gnu.org/licenses/>.

package vidext

import (
	"fmt"
	"unsafe"
)

// VideoMode selects between a windowed and a fullscreen surface. It is chosen
// at SetVideoMode() time and is immutable until the next SetVideoMode().
//
// The integer values are part of the binary contract with the emulation core
// and must not be renumbered.
type VideoMode int

// List of valid VideoMode values.
const (
	Windowed VideoMode = iota + 1
	Fullscreen
)

func (mode VideoMode) String() string {
	switch mode {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	}
	return fmt.Sprintf("unknown video mode (%d)", int(mode))
}

// Size is a supported fullscreen geometry reported by the host through
// ListFullscreenModes().
type Size struct {
	Width  int
	Height int
}

func (sz Size) String() string {
	return fmt.Sprintf("%dx%d", sz.Width, sz.Height)
}

// ProcAddress is an opaque handle to a function exported by the host graphics
// stack. A nil ProcAddress means the symbol is not exported. The handle is
// only ever created by a Driver and only ever handed back to the emulation
// core; nothing in this package dereferences it.
type ProcAddress unsafe.Pointer
