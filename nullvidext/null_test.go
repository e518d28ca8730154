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

package nullvidext_test

import (
	"testing"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/nullvidext"
	"github.com/jetsetilly/vidext/test"
)

func resolved(t *testing.T, reg *vidext.Registry, attr vidext.GLAttr) int {
	t.Helper()
	v, err := reg.GetAttribute(attr)
	test.ExpectSuccess(t, err)
	return v
}

func TestNegotiation(t *testing.T) {
	drv := nullvidext.NewDriver()
	test.ExpectSuccess(t, drv.Init())
	defer drv.Quit()

	// no requests at all. everything resolves to the defaults for the
	// surface's bit depth
	reg := vidext.NewRegistry()
	spec := vidext.SurfaceSpec{Width: 640, Height: 480, BPP: 32, Mode: vidext.Windowed}
	test.ExpectSuccess(t, drv.CreateSurface(spec, reg))

	test.ExpectEquality(t, resolved(t, reg, vidext.RedSize), 8)
	test.ExpectEquality(t, resolved(t, reg, vidext.GreenSize), 8)
	test.ExpectEquality(t, resolved(t, reg, vidext.BlueSize), 8)
	test.ExpectEquality(t, resolved(t, reg, vidext.AlphaSize), 8)
	test.ExpectEquality(t, resolved(t, reg, vidext.DoubleBuffer), 1)
	test.ExpectEquality(t, resolved(t, reg, vidext.DepthSize), 24)
	test.ExpectEquality(t, resolved(t, reg, vidext.BufferSize), 32)
	test.ExpectEquality(t, resolved(t, reg, vidext.SwapControl), 0)

	// a 16bpp surface defaults to 565 with no alpha
	reg = vidext.NewRegistry()
	spec.BPP = 16
	test.ExpectSuccess(t, drv.CreateSurface(spec, reg))
	test.ExpectEquality(t, resolved(t, reg, vidext.RedSize), 5)
	test.ExpectEquality(t, resolved(t, reg, vidext.GreenSize), 6)
	test.ExpectEquality(t, resolved(t, reg, vidext.BlueSize), 5)
	test.ExpectEquality(t, resolved(t, reg, vidext.AlphaSize), 0)
	test.ExpectEquality(t, resolved(t, reg, vidext.BufferSize), 16)

	// requests clamp to the host's limits rather than failing
	reg = vidext.NewRegistry()
	spec.BPP = 32
	test.ExpectSuccess(t, reg.SetAttribute(vidext.RedSize, 10))
	test.ExpectSuccess(t, reg.SetAttribute(vidext.DepthSize, 32))
	test.ExpectSuccess(t, reg.SetAttribute(vidext.DoubleBuffer, 0))
	test.ExpectSuccess(t, reg.SetAttribute(vidext.SwapControl, -1))
	test.ExpectSuccess(t, drv.CreateSurface(spec, reg))

	test.ExpectEquality(t, resolved(t, reg, vidext.RedSize), 8)
	test.ExpectEquality(t, resolved(t, reg, vidext.DepthSize), 24)
	test.ExpectEquality(t, resolved(t, reg, vidext.DoubleBuffer), 0)
	test.ExpectEquality(t, resolved(t, reg, vidext.SwapControl), 1)

	// requests within the limits are honoured exactly
	reg = vidext.NewRegistry()
	test.ExpectSuccess(t, reg.SetAttribute(vidext.DepthSize, 18))
	test.ExpectSuccess(t, drv.CreateSurface(spec, reg))
	test.ExpectEquality(t, resolved(t, reg, vidext.DepthSize), 16)
}

func TestModes(t *testing.T) {
	drv := nullvidext.NewDriver()
	test.ExpectSuccess(t, drv.Init())
	defer drv.Quit()

	modes, err := drv.Modes()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, len(modes) > 0)

	// the returned slice is a copy. callers cannot corrupt the driver's list
	modes[0] = vidext.Size{Width: 1, Height: 1}
	again, err := drv.Modes()
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, again[0], modes[0])
}

func TestSwapInterval(t *testing.T) {
	drv := nullvidext.NewDriver()
	test.ExpectSuccess(t, drv.Init())
	defer drv.Quit()

	test.ExpectSuccess(t, drv.SwapInterval(0))
	test.ExpectSuccess(t, drv.SwapInterval(1))

	// adaptive sync is unsupported
	test.ExpectFailure(t, drv.SwapInterval(-1))
	test.ExpectFailure(t, drv.SwapInterval(2))
}

func TestReadPixels(t *testing.T) {
	drv := nullvidext.NewDriver()
	test.ExpectSuccess(t, drv.Init())
	defer drv.Quit()

	// no surface, no pixels
	_, _, _, _, err := drv.ReadPixels()
	test.ExpectFailure(t, err)

	// 639 is not a multiple of the row alignment so the rows carry padding
	reg := vidext.NewRegistry()
	spec := vidext.SurfaceSpec{Width: 639, Height: 3, BPP: 32, Mode: vidext.Windowed}
	test.ExpectSuccess(t, drv.CreateSurface(spec, reg))

	pixels, width, height, bytesPerRow, err := drv.ReadPixels()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, width, 639)
	test.ExpectEquality(t, height, 3)
	test.ExpectSuccess(t, bytesPerRow >= 639*4)
	test.ExpectEquality(t, bytesPerRow%16, 0)
	test.ExpectEquality(t, len(pixels), bytesPerRow*3)

	// consecutive frames are distinguishable by their sequence value
	first := pixels[0]
	pixels, _, _, _, err = drv.ReadPixels()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pixels[0], first+1)

	// destroying the surface invalidates readback
	test.ExpectSuccess(t, drv.DestroySurface())
	_, _, _, _, err = drv.ReadPixels()
	test.ExpectFailure(t, err)
}

func TestProcAddresses(t *testing.T) {
	drv := nullvidext.NewDriver()

	if drv.ProcAddress("glClear") == nil {
		t.Errorf("known symbol should return a non-nil proc address")
	}
	if drv.ProcAddress("glNotARealSymbol") != nil {
		t.Errorf("unknown symbol should return a nil proc address")
	}
}
