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

// Package vidext implements the video extension contract between an emulation
// core and a host specific video backend. The core does not know how windows
// and rendering contexts are created on any given host; the backend does. The
// contract is the meeting point: a fixed shape function table, a state machine
// governing the order in which the table's operations may be called, an
// attribute negotiation protocol for the rendering context, and a framebuffer
// capture path that can coexist with an actively presenting context.
//
// The Bridge type implements the contract. It owns the call-order state
// machine, the attribute Registry and the frame Capture, and delegates the
// host specific work (window creation, buffer swapping, pixel readback) to an
// implementation of the Driver interface. Two drivers are provided by
// sub-packages: sdlvidext for SDL backed windows and GL contexts; and
// nullvidext, a headless driver useful for testing and for hosts without a
// display.
//
// The emulation core binds to the bridge through the function table, created
// with the Publish() function. The table is assembled exactly once for the
// lifetime of the process and its shape (field order, signatures, status
// values, enumeration ordinals) is a binary contract that must not change
// between releases without a version bump.
//
// A typical sequence from the core's point of view:
//
//	tbl := vidext.Publish(vidext.NewBridge(sdlvidext.NewDriver()))
//	tbl.Init()
//	tbl.GLSetAttribute(vidext.DoubleBuffer, 1)
//	tbl.SetVideoMode(640, 480, 32, vidext.Windowed, 0)
//	for {
//		// rendering commands
//		tbl.GLSwapBuffers()
//	}
//	tbl.Quit()
//
// With the exception of the Capture type, nothing in this package is safe for
// concurrent use. All operations must be invoked from the thread that owns the
// rendering context, which in practice is the emulation core's render thread.
// The Capture type is the one defined hand-off point: another thread wanting
// the most recently presented frame (for a screenshot or an overlay) may call
// Capture.Latest() at any time.
package vidext
