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

	"github.com/jetsetilly/vidext/logger"
)

type lifecycle int

const (
	uninitialised lifecycle = iota
	initialised
	modeSet
)

// Bridge implements the video extension contract. It owns the lifecycle state
// machine, the attribute Registry and the frame Capture, and delegates host
// specific work to a Driver.
//
// Exactly one surface and context exists per Bridge at any time. Init() must
// precede every other operation and Quit() invalidates all handles and any
// outstanding frame view.
//
// The Bridge is not safe for concurrent use. All operations must be invoked
// from the thread that owns the rendering context. The one exception is the
// Capture returned by the Capture() function, which may be read from any
// thread.
type Bridge struct {
	drv   Driver
	reg   *Registry
	cpt   *Capture
	state lifecycle

	// the surface specification most recently given to the driver. width and
	// height are updated by ResizeWindow()
	surface SurfaceSpec
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge(drv Driver) *Bridge {
	return &Bridge{
		drv: drv,
		reg: NewRegistry(),
		cpt: NewCapture(),
	}
}

// Init prepares the host subsystem. No surface is created until
// SetVideoMode().
func (vid *Bridge) Init() error {
	if vid.state != uninitialised {
		return fmt.Errorf("init: %w", ErrAlreadyInitialized)
	}

	if err := vid.drv.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	vid.state = initialised
	return nil
}

// Quit destroys the surface and context and releases all host resources.
// Resolved attribute values are cleared; requested values are retained so a
// subsequent Init()/SetVideoMode() cycle does not need to re-state them. Any
// outstanding frame view is invalidated.
//
// Quit is idempotent. Calling it when the bridge is already uninitialised is
// a no-op success.
func (vid *Bridge) Quit() error {
	if vid.state == uninitialised {
		return nil
	}

	if vid.state == modeSet {
		if err := vid.drv.DestroySurface(); err != nil {
			logger.Logf(logger.Allow, "vidext", "quit: destroy surface: %v", err)
		}
	}
	if err := vid.drv.Quit(); err != nil {
		logger.Logf(logger.Allow, "vidext", "quit: %v", err)
	}

	vid.reg.ClearResolved()
	vid.cpt.Invalidate()
	vid.state = uninitialised
	return nil
}

// ListFullscreenModes returns the finite list of fullscreen geometries
// supported by the host. Valid any time after Init().
func (vid *Bridge) ListFullscreenModes() ([]Size, error) {
	if vid.state == uninitialised {
		return nil, fmt.Errorf("list fullscreen modes: %w", ErrNotInitialized)
	}

	modes, err := vid.drv.Modes()
	if err != nil {
		return nil, fmt.Errorf("list fullscreen modes: %w", err)
	}
	return modes, nil
}

// SetVideoMode creates the surface and rendering context, or atomically
// replaces the existing ones. The attribute registry is consulted for
// requested context attributes and the values the host honoured are written
// back as resolved values. Any previously captured frame is invalidated.
//
// Width and height must be positive and bitsPerPixel must be 16, 24 or 32.
func (vid *Bridge) SetVideoMode(width int, height int, bitsPerPixel int, mode VideoMode, flags int) error {
	if vid.state == uninitialised {
		return fmt.Errorf("set video mode: %w", ErrNotInitialized)
	}

	if width <= 0 || height <= 0 {
		return fmt.Errorf("set video mode: %w: %dx%d", ErrUnsupportedMode, width, height)
	}
	switch bitsPerPixel {
	case 16, 24, 32:
	default:
		return fmt.Errorf("set video mode: %w: %d bits per pixel", ErrUnsupportedMode, bitsPerPixel)
	}
	if mode != Windowed && mode != Fullscreen {
		return fmt.Errorf("set video mode: %w: %s", ErrUnsupportedMode, mode)
	}

	spec := SurfaceSpec{
		Width:   width,
		Height:  height,
		BPP:     bitsPerPixel,
		Mode:    mode,
		Flags:   flags,
		Caption: vid.surface.Caption,
	}

	vid.reg.ClearResolved()
	if err := vid.drv.CreateSurface(spec, vid.reg); err != nil {
		// the driver guarantees that no surface exists after a failed
		// CreateSurface(). any frame captured from a previous surface belongs
		// to a surface that no longer exists
		vid.cpt.Invalidate()
		vid.state = initialised
		return fmt.Errorf("set video mode: %w: %v", ErrUnsupportedMode, err)
	}

	vid.cpt.Invalidate()
	vid.surface = spec
	vid.state = modeSet

	logger.Logf(logger.Allow, "vidext", "video mode: %dx%d %dbpp %s", width, height, bitsPerPixel, mode)
	return nil
}

// ResizeWindow resizes the existing surface without destroying the context.
// Attribute resolution from the last SetVideoMode() is preserved.
func (vid *Bridge) ResizeWindow(width int, height int) error {
	if vid.state != modeSet {
		return fmt.Errorf("resize window: %w", ErrNotInitialized)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize window: %w: %dx%d", ErrUnsupportedMode, width, height)
	}

	if err := vid.drv.ResizeSurface(width, height); err != nil {
		return fmt.Errorf("resize window: %w", err)
	}

	vid.surface.Width = width
	vid.surface.Height = height
	return nil
}

// SetCaption sets the window caption. Advisory: if the host does not support
// captions the failure is logged and the operation succeeds.
func (vid *Bridge) SetCaption(caption string) error {
	if vid.state != modeSet {
		return fmt.Errorf("set caption: %w", ErrNotInitialized)
	}

	vid.surface.Caption = caption
	if err := vid.drv.Caption(caption); err != nil {
		logger.Logf(logger.Allow, "vidext", "set caption: %v", err)
	}
	return nil
}

// GLGetProcAddress looks up a symbol in the host graphics stack. A nil result
// means the symbol is not exported; absence is not an error. Before a
// successful SetVideoMode() no context exists so the result is always nil.
func (vid *Bridge) GLGetProcAddress(proc string) ProcAddress {
	if vid.state != modeSet {
		return nil
	}
	return vid.drv.ProcAddress(proc)
}

// GLSetAttribute records a requested value for a rendering context attribute.
// Requests take effect at the next SetVideoMode(); most host graphics APIs
// fix attributes at context creation time, so a request made while a context
// is live does not modify that context.
func (vid *Bridge) GLSetAttribute(attr GLAttr, value int) error {
	return vid.reg.SetAttribute(attr, value)
}

// GLGetAttribute returns the resolved value for a rendering context
// attribute. See Registry.GetAttribute().
func (vid *Bridge) GLGetAttribute(attr GLAttr) (int, error) {
	return vid.reg.GetAttribute(attr)
}

// GLSwapBuffers presents the current back buffer and makes the presented
// frame available through the Capture. This is the only operation in the
// contract that may block, briefly, when a swap interval is in force.
func (vid *Bridge) GLSwapBuffers() error {
	if vid.state != modeSet {
		return fmt.Errorf("swap buffers: %w", ErrNotInitialized)
	}

	// read the back buffer before it is presented. after the swap these
	// pixels are exactly the most recently presented frame
	pixels, width, height, bytesPerRow, err := vid.drv.ReadPixels()
	if err != nil {
		logger.Logf(logger.Allow, "vidext", "swap buffers: readback: %v", err)
		pixels = nil
	}

	if err := vid.drv.Swap(); err != nil {
		// a failed present is logged rather than returned. the only failure
		// the contract defines for this operation is a sequencing error
		logger.Logf(logger.Allow, "vidext", "swap buffers: %v", err)
		return nil
	}

	if pixels != nil {
		vid.cpt.Publish(pixels, width, height, bytesPerRow)
	}
	return nil
}

// SetVsync toggles synchronisation of buffer presentation with the display
// refresh. Best effort: if the host cannot honour the request the nearest
// supported interval is used and no error is returned. The interval actually
// in force is written to the registry as the resolved SwapControl value.
func (vid *Bridge) SetVsync(enable bool) error {
	if vid.state != modeSet {
		return fmt.Errorf("set vsync: %w", ErrNotInitialized)
	}

	// fallback chain. adaptive sync is preferred when enabling because it
	// degrades more gracefully when the render loop misses the retrace
	var chain []int
	if enable {
		chain = []int{-1, 1, 0}
	} else {
		chain = []int{0}
	}

	interval := chain[len(chain)-1]
	for _, i := range chain {
		if err := vid.drv.SwapInterval(i); err == nil {
			interval = i
			break
		}
		logger.Logf(logger.Allow, "vidext", "set vsync: interval %d unsupported", i)
	}

	vid.reg.Resolve(SwapControl, interval)
	return nil
}

// Capture returns the frame capture adapter for this bridge. Unlike the
// bridge itself, the Capture may be used from any thread.
func (vid *Bridge) Capture() *Capture {
	return vid.cpt
}

// GetFrameBuffer returns the pixel data of the most recently presented frame,
// or nil if no frame has been presented. A convenience for single threaded
// collaborators; use Capture().Latest() when geometry and pixels must be read
// coherently from another thread.
func (vid *Bridge) GetFrameBuffer() []byte {
	return vid.cpt.Latest().Pixels
}

// GetWidth returns the width in pixels of the most recently presented frame.
func (vid *Bridge) GetWidth() int {
	return vid.cpt.Latest().Width
}

// GetHeight returns the height in pixels of the most recently presented frame.
func (vid *Bridge) GetHeight() int {
	return vid.cpt.Latest().Height
}

// GetBytesPerRow returns the stride of the most recently presented frame.
// This may exceed GetWidth()*4 because of row alignment padding.
func (vid *Bridge) GetBytesPerRow() int {
	return vid.cpt.Latest().BytesPerRow
}
