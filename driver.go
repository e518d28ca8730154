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

// SurfaceSpec describes the surface a Driver is being asked to create.
type SurfaceSpec struct {
	Width  int
	Height int

	// bits per pixel of the colour buffer. one of 16, 24 or 32. drivers use
	// this to derive default channel sizes for attributes the emulation core
	// has not explicitly requested
	BPP int

	Mode VideoMode

	// flags are passed through from the emulation core unchanged. their
	// meaning is host specific
	Flags int

	// initial window caption
	Caption string
}

// Driver is the host specific half of the video extension bridge. The Bridge
// type implements the contract's state machine and negotiation protocol and
// calls on a Driver for the operations that require a real window system.
//
// A Driver can assume it is called in a sensible order: Init() before
// anything else; CreateSurface() before any surface operation; Quit() last.
// The bridge enforces this, which means drivers do not need their own state
// tracking beyond their host resources.
//
// Drivers are not required to be safe for concurrent use. All calls arrive on
// the thread that owns the rendering context.
type Driver interface {
	// prepare host subsystem resources. no surface is created yet
	Init() error

	// release all host resources. the bridge destroys any surface first
	Quit() error

	// create a surface and context, or atomically replace the existing ones.
	// the driver consults the registry for requested attributes and writes
	// back every resolved value with Registry.Resolve(). on error no surface
	// exists
	CreateSurface(spec SurfaceSpec, reg *Registry) error

	// destroy the surface and context created by CreateSurface()
	DestroySurface() error

	// resize the existing surface without destroying the context
	ResizeSurface(width int, height int) error

	// the finite list of fullscreen geometries the host supports
	Modes() ([]Size, error)

	// set the window caption. advisory; an error indicates lack of host
	// support and is logged, never fatal
	Caption(caption string) error

	// look up a symbol in the host graphics stack. nil if not exported
	ProcAddress(proc string) ProcAddress

	// set the swap interval. 0 disables synchronisation, 1 synchronises with
	// the vertical retrace, -1 requests adaptive synchronisation. an error
	// means the host cannot honour the interval and the bridge will try a
	// fallback
	SwapInterval(interval int) error

	// present the back buffer. the only call in the contract that may block,
	// briefly, on the vertical retrace
	Swap() error

	// read the pixels of the frame that is about to be presented, as RGBA8
	// with rows running top to bottom. the returned slice may be reused by
	// the driver on the next call
	ReadPixels() (pixels []byte, width int, height int, bytesPerRow int, err error)
}

// DefaultChannelSizes returns the colour channel sizes implied by a surface's
// bits per pixel. Drivers use these for attributes the emulation core has not
// explicitly requested.
func DefaultChannelSizes(bitsPerPixel int) (red int, green int, blue int, alpha int) {
	switch bitsPerPixel {
	case 16:
		return 5, 6, 5, 0
	case 24:
		return 8, 8, 8, 0
	}
	return 8, 8, 8, 8
}
