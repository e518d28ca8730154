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

// Package nullvidext is a headless driver for the video extension bridge. No
// window is created and no graphics API is touched: the surface is a plain
// byte buffer and every presented frame is synthesised.
//
// The driver implements the full negotiation protocol against a fixed set of
// host capabilities (colour channels up to 8 bits, depth buffers of 0, 16 or
// 24 bits, swap intervals of 0 or 1) so that bridge behaviour can be tested,
// on any machine, exactly as it would run against a real host.
package nullvidext

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/vidext"
)

// rows of the synthetic surface are padded to this alignment. deliberately
// coarser than the natural 4 byte alignment of RGBA8 so that the
// bytes-per-row path in capture consumers is exercised
const rowAlignment = 16

// the geometries reported by ListFullscreenModes()
var fullscreenModes = []vidext.Size{
	{Width: 640, Height: 480},
	{Width: 800, Height: 600},
	{Width: 1024, Height: 768},
	{Width: 1280, Height: 720},
	{Width: 1920, Height: 1080},
}

// symbols the null graphics stack claims to export. the addresses handed out
// are not callable but they are stable and non-nil, which is all the contract
// promises
var knownProcs = map[string]bool{
	"glClear":      true,
	"glClearColor": true,
	"glViewport":   true,
	"glReadPixels": true,
	"glFinish":     true,
}

var procStub int

// Driver implements vidext.Driver without a window system.
type Driver struct {
	surface bool
	width   int
	height  int

	// value written to every pixel of the next synthesised frame. advanced on
	// every readback so that consecutive frames are distinguishable
	frameSeq uint8

	readback []byte
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

// Init implements the vidext.Driver interface.
func (drv *Driver) Init() error {
	return nil
}

// Quit implements the vidext.Driver interface.
func (drv *Driver) Quit() error {
	return nil
}

// CreateSurface implements the vidext.Driver interface.
//
// Negotiation rules: colour channel sizes resolve to at most 8 bits; the
// depth buffer resolves to the largest of 0, 16 or 24 not exceeding the
// request; double buffering resolves to on unless explicitly requested off.
// Attributes with no request resolve to defaults derived from the surface's
// bits per pixel.
func (drv *Driver) CreateSurface(spec vidext.SurfaceSpec, reg *vidext.Registry) error {
	red, green, blue, alpha := vidext.DefaultChannelSizes(spec.BPP)

	resolveChannel := func(attr vidext.GLAttr, def int) {
		v, ok := reg.Requested(attr)
		if !ok {
			v = def
		}
		if v > 8 {
			v = 8
		}
		if v < 0 {
			v = 0
		}
		reg.Resolve(attr, v)
	}
	resolveChannel(vidext.RedSize, red)
	resolveChannel(vidext.GreenSize, green)
	resolveChannel(vidext.BlueSize, blue)
	resolveChannel(vidext.AlphaSize, alpha)

	if v, ok := reg.Requested(vidext.DoubleBuffer); ok && v == 0 {
		reg.Resolve(vidext.DoubleBuffer, 0)
	} else {
		reg.Resolve(vidext.DoubleBuffer, 1)
	}

	depth := 24
	if v, ok := reg.Requested(vidext.DepthSize); ok {
		depth = nearestDepth(v)
	}
	reg.Resolve(vidext.DepthSize, depth)

	reg.Resolve(vidext.BufferSize, spec.BPP)

	swap := 0
	if v, ok := reg.Requested(vidext.SwapControl); ok && v != 0 {
		// adaptive sync is not supported. anything non-zero resolves to a
		// swap interval of one
		swap = 1
	}
	reg.Resolve(vidext.SwapControl, swap)

	drv.surface = true
	drv.width = spec.Width
	drv.height = spec.Height
	drv.readback = nil
	drv.frameSeq = 0

	return nil
}

// DestroySurface implements the vidext.Driver interface.
func (drv *Driver) DestroySurface() error {
	drv.surface = false
	drv.readback = nil
	return nil
}

// ResizeSurface implements the vidext.Driver interface.
func (drv *Driver) ResizeSurface(width int, height int) error {
	drv.width = width
	drv.height = height
	drv.readback = nil
	return nil
}

// Modes implements the vidext.Driver interface.
func (drv *Driver) Modes() ([]vidext.Size, error) {
	modes := make([]vidext.Size, len(fullscreenModes))
	copy(modes, fullscreenModes)
	return modes, nil
}

// Caption implements the vidext.Driver interface. There is no window to title
// so the caption is discarded.
func (drv *Driver) Caption(caption string) error {
	return nil
}

// ProcAddress implements the vidext.Driver interface.
func (drv *Driver) ProcAddress(proc string) vidext.ProcAddress {
	if knownProcs[proc] {
		return vidext.ProcAddress(unsafe.Pointer(&procStub))
	}
	return nil
}

// SwapInterval implements the vidext.Driver interface. Intervals of zero and
// one are supported; adaptive sync is not.
func (drv *Driver) SwapInterval(interval int) error {
	if interval != 0 && interval != 1 {
		return fmt.Errorf("null: swap interval %d unsupported", interval)
	}
	return nil
}

// Swap implements the vidext.Driver interface.
func (drv *Driver) Swap() error {
	return nil
}

// ReadPixels implements the vidext.Driver interface. Every pixel byte of the
// synthesised frame carries the same sequence value, making a torn frame
// trivially detectable by consumers.
func (drv *Driver) ReadPixels() ([]byte, int, int, int, error) {
	if !drv.surface {
		return nil, 0, 0, 0, fmt.Errorf("null: no surface")
	}

	bytesPerRow := (drv.width*4 + rowAlignment - 1) &^ (rowAlignment - 1)
	length := bytesPerRow * drv.height
	if len(drv.readback) != length {
		drv.readback = make([]byte, length)
	}

	drv.frameSeq++
	for i := range drv.readback {
		drv.readback[i] = drv.frameSeq
	}

	return drv.readback, drv.width, drv.height, bytesPerRow, nil
}

// the depth buffer sizes the null host supports.
func nearestDepth(requested int) int {
	switch {
	case requested >= 24:
		return 24
	case requested >= 16:
		return 16
	}
	return 0
}
