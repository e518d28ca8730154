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
	"sync"
	"sync/atomic"
)

// Frame is a read-only view of the most recently presented colour buffer.
//
// Pixels is RGBA8 data, four bytes per pixel, rows running top to bottom.
// BytesPerRow may exceed Width*4 because of row alignment padding. Always use
// BytesPerRow, never Width*4, to index rows.
//
// By contract a Frame is valid until the next SwapBuffers() or Quit() call.
// Because the capture path copies pixel data at publish time the underlying
// array is in fact never rewritten, so a Frame held beyond its validity
// window decays gracefully: it stays coherent but stale. Use the Generation
// field to detect staleness.
type Frame struct {
	Pixels      []byte
	Width       int
	Height      int
	BytesPerRow int

	// Generation increases by one for every publication or invalidation.
	// Compare against Capture.Generation() to detect that the frame has been
	// superseded.
	Generation uint64
}

// IsEmpty returns true if the frame holds no pixel data. This is the expected
// result when no frame has been presented yet, or after Quit(). It is a
// transient state, not an error.
func (frm Frame) IsEmpty() bool {
	return len(frm.Pixels) == 0
}

// Capture publishes the most recently presented frame for consumption outside
// the render thread.
//
// Unlike the rest of the bridge, Capture is safe for concurrent use: the
// render thread publishes through Publish() during SwapBuffers() while any
// other thread may call Latest() or Generation(). A complete frame is copied
// under a short critical section at publish time so a reader observes either
// the prior complete frame or the new complete frame, never a torn one.
type Capture struct {
	crit struct {
		section sync.Mutex
		frame   Frame
	}

	// generation is read outside the critical section by readers that only
	// want to know whether their frame is stale
	generation atomic.Uint64
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture() *Capture {
	return &Capture{}
}

// Publish copies the supplied pixel data and makes it the latest frame.
// Called by the bridge during SwapBuffers(). The pixels slice can be reused
// by the caller as soon as Publish() returns.
func (cpt *Capture) Publish(pixels []byte, width int, height int, bytesPerRow int) {
	gen := cpt.generation.Add(1)

	// a fresh buffer for every publication. the buffer most recently handed
	// out by Latest() may still be in use by another thread so it can never
	// be recycled here
	cpy := make([]byte, len(pixels))
	copy(cpy, pixels)

	cpt.crit.section.Lock()
	defer cpt.crit.section.Unlock()

	cpt.crit.frame = Frame{
		Pixels:      cpy,
		Width:       width,
		Height:      height,
		BytesPerRow: bytesPerRow,
		Generation:  gen,
	}
}

// Latest returns the most recently published frame. The returned frame is
// empty if nothing has been published since the last invalidation.
func (cpt *Capture) Latest() Frame {
	cpt.crit.section.Lock()
	defer cpt.crit.section.Unlock()
	return cpt.crit.frame
}

// Invalidate discards the latest frame. Called by the bridge on Quit() and
// when a new surface replaces the old one.
func (cpt *Capture) Invalidate() {
	gen := cpt.generation.Add(1)

	cpt.crit.section.Lock()
	defer cpt.crit.section.Unlock()
	cpt.crit.frame = Frame{Generation: gen}
}

// Generation returns the current frame generation without taking the critical
// section. A reader can compare this against the Generation field of a frame
// it is holding to detect that the frame has been superseded or invalidated.
func (cpt *Capture) Generation() uint64 {
	return cpt.generation.Load()
}
