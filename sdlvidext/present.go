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

package sdlvidext

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/vidext"
)

// ProcAddress implements the vidext.Driver interface.
func (drv *Driver) ProcAddress(proc string) vidext.ProcAddress {
	return vidext.ProcAddress(sdl.GLGetProcAddress(proc))
}

// SwapInterval implements the vidext.Driver interface.
func (drv *Driver) SwapInterval(interval int) error {
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Swap implements the vidext.Driver interface.
func (drv *Driver) Swap() error {
	drv.window.GLSwap()
	return nil
}

// ReadPixels implements the vidext.Driver interface. The back buffer is read
// with glReadPixels and flipped so that rows run top to bottom.
func (drv *Driver) ReadPixels() ([]byte, int, int, int, error) {
	w, h := drv.window.GLGetDrawableSize()
	if w <= 0 || h <= 0 {
		return nil, 0, 0, 0, fmt.Errorf("sdl: zero sized drawable")
	}

	// RGBA8 rows are naturally four byte aligned so bytes-per-row is exactly
	// width*4 with this pack alignment
	bytesPerRow := int(w) * 4
	length := bytesPerRow * int(h)
	if len(drv.readback) != length {
		drv.readback = make([]byte, length)
		drv.rowbuf = make([]byte, bytesPerRow)
	}

	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(drv.readback))

	// glReadPixels returns rows bottom to top
	for top, bot := 0, int(h)-1; top < bot; top, bot = top+1, bot-1 {
		a := drv.readback[top*bytesPerRow : (top+1)*bytesPerRow]
		b := drv.readback[bot*bytesPerRow : (bot+1)*bytesPerRow]
		copy(drv.rowbuf, a)
		copy(a, b)
		copy(b, drv.rowbuf)
	}

	return drv.readback, int(w), int(h), bytesPerRow, nil
}
