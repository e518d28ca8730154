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

// Package sdlvidext is the SDL driver for the video extension bridge. The
// surface is an SDL window with an OpenGL 3.2 core context and the capture
// readback is performed with glReadPixels on the back buffer.
package sdlvidext

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/logger"
)

// mapping of context attributes to their SDL equivalents. SwapControl is
// absent because SDL sets the swap interval on the live context, not at
// creation time.
var sdlAttr = map[vidext.GLAttr]sdl.GLattr{
	vidext.DoubleBuffer: sdl.GL_DOUBLEBUFFER,
	vidext.BufferSize:   sdl.GL_BUFFER_SIZE,
	vidext.DepthSize:    sdl.GL_DEPTH_SIZE,
	vidext.RedSize:      sdl.GL_RED_SIZE,
	vidext.GreenSize:    sdl.GL_GREEN_SIZE,
	vidext.BlueSize:     sdl.GL_BLUE_SIZE,
	vidext.AlphaSize:    sdl.GL_ALPHA_SIZE,
}

// Driver implements vidext.Driver with an SDL window and GL context.
type Driver struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// scratch buffer reused by ReadPixels()
	readback []byte
	rowbuf   []byte
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver() *Driver {
	return &Driver{}
}

// Init implements the vidext.Driver interface.
func (drv *Driver) Init() error {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	drv.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", drv.mode.RefreshRate)

	return nil
}

// Quit implements the vidext.Driver interface.
func (drv *Driver) Quit() error {
	sdl.Quit()
	return nil
}

// CreateSurface implements the vidext.Driver interface.
func (drv *Driver) CreateSurface(spec vidext.SurfaceSpec, reg *vidext.Registry) error {
	// an existing surface is replaced. destroy before create: SDL windows on
	// some hosts cannot share a display in fullscreen
	if drv.window != nil {
		if err := drv.DestroySurface(); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}

	err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	if err := drv.requestAttributes(spec, reg); err != nil {
		return err
	}

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI
	if spec.Mode == vidext.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	} else {
		flags |= sdl.WINDOW_RESIZABLE
	}

	drv.window, err = sdl.CreateWindow(spec.Caption,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(spec.Width), int32(spec.Height), flags)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	drv.glContext, err = drv.window.GLCreateContext()
	if err != nil {
		_ = drv.DestroySurface()
		return fmt.Errorf("sdl: %w", err)
	}
	err = drv.window.GLMakeCurrent(drv.glContext)
	if err != nil {
		_ = drv.DestroySurface()
		return fmt.Errorf("sdl: %w", err)
	}

	if err := gl.Init(); err != nil {
		_ = drv.DestroySurface()
		return fmt.Errorf("opengl: %w", err)
	}
	gl.Viewport(0, 0, int32(spec.Width), int32(spec.Height))

	drv.resolveAttributes(spec, reg)
	drv.readback = nil

	major, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	minor, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return nil
}

// requestAttributes forwards the emulation core's context attribute requests
// to SDL before window creation. Attributes with no request fall back to
// defaults derived from the surface's bits per pixel.
func (drv *Driver) requestAttributes(spec vidext.SurfaceSpec, reg *vidext.Registry) error {
	red, green, blue, alpha := vidext.DefaultChannelSizes(spec.BPP)
	defaults := map[vidext.GLAttr]int{
		vidext.DoubleBuffer: 1,
		vidext.BufferSize:   spec.BPP,
		vidext.DepthSize:    24,
		vidext.RedSize:      red,
		vidext.GreenSize:    green,
		vidext.BlueSize:     blue,
		vidext.AlphaSize:    alpha,
	}

	for attr, sa := range sdlAttr {
		v, ok := reg.Requested(attr)
		if !ok {
			v = defaults[attr]
		}
		if err := sdl.GLSetAttribute(sa, v); err != nil {
			return fmt.Errorf("sdl: %s: %w", attr, err)
		}
	}
	return nil
}

// resolveAttributes writes back the attribute values SDL actually honoured
// during context creation. Fallbacks negotiated by the host (a smaller depth
// buffer, for instance) are logged.
func (drv *Driver) resolveAttributes(spec vidext.SurfaceSpec, reg *vidext.Registry) {
	for attr, sa := range sdlAttr {
		v, err := sdl.GLGetAttribute(sa)
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "resolve %s: %v", attr, err)
			continue
		}
		if req, ok := reg.Requested(attr); ok && req != v {
			logger.Logf(logger.Allow, "sdl", "%s: requested %d, host honoured %d", attr, req, v)
		}
		reg.Resolve(attr, v)
	}

	// the swap interval is applied to the live context rather than at
	// creation time
	if v, ok := reg.Requested(vidext.SwapControl); ok {
		if err := sdl.GLSetSwapInterval(v); err != nil {
			logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", v, err)
		}
	}
	interval, err := sdl.GLGetSwapInterval()
	if err != nil {
		interval = 0
	}
	reg.Resolve(vidext.SwapControl, interval)
}

// DestroySurface implements the vidext.Driver interface.
func (drv *Driver) DestroySurface() error {
	if drv.glContext != nil {
		sdl.GLDeleteContext(drv.glContext)
		drv.glContext = nil
	}
	if drv.window != nil {
		err := drv.window.Destroy()
		drv.window = nil
		if err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
	}
	drv.readback = nil
	return nil
}

// ResizeSurface implements the vidext.Driver interface.
func (drv *Driver) ResizeSurface(width int, height int) error {
	drv.window.SetSize(int32(width), int32(height))

	// viewport tracks the drawable size, which on high DPI displays is not
	// necessarily the window size
	w, h := drv.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)

	return nil
}

// Modes implements the vidext.Driver interface. SDL reports a display mode
// for every refresh rate and pixel format combination; the list is reduced to
// unique geometries.
func (drv *Driver) Modes() ([]vidext.Size, error) {
	num, err := sdl.GetNumDisplayModes(0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var modes []vidext.Size
	seen := make(map[vidext.Size]bool)
	for i := 0; i < num; i++ {
		m, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			return nil, fmt.Errorf("sdl: %w", err)
		}
		sz := vidext.Size{Width: int(m.W), Height: int(m.H)}
		if !seen[sz] {
			seen[sz] = true
			modes = append(modes, sz)
		}
	}
	return modes, nil
}

// Caption implements the vidext.Driver interface.
func (drv *Driver) Caption(caption string) error {
	drv.window.SetTitle(caption)
	return nil
}
