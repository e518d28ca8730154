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

// The vidext command is a stand-in emulation core. It binds to the bridge
// through the function table, exactly as a real core would, and exercises the
// full control flow: initialisation, attribute requests, mode setting, a
// render/swap/capture loop and shutdown.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/logger"
	"github.com/jetsetilly/vidext/modalflag"
	"github.com/jetsetilly/vidext/nullvidext"
	"github.com/jetsetilly/vidext/performance"
	"github.com/jetsetilly/vidext/screenshot"
	"github.com/jetsetilly/vidext/sdlvidext"
	"github.com/jetsetilly/vidext/statsview"
	"github.com/jetsetilly/vidext/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "MODES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "MODES":
		err = listModes(md)
	case "VERSION":
		ver, rev, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, ver, rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 640, "width of the video mode")
	height := md.AddInt("height", 480, "height of the video mode")
	bpp := md.AddInt("bpp", 32, "bits per pixel of the video mode (16, 24 or 32)")
	fullscreen := md.AddBool("fullscreen", false, "use a fullscreen video mode")
	frames := md.AddInt("frames", 300, "number of frames to present")
	vsync := md.AddBool("vsync", true, "synchronise presentation with the display refresh")
	snapshot := md.AddBool("screenshot", false, "save the final frame as a JPEG")
	headless := md.AddBool("headless", false, "use the null driver (no window)")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}
	if *stats {
		statsview.Launch(md.Output)
	}

	var drv vidext.Driver
	if *headless {
		drv = nullvidext.NewDriver()
	} else {
		drv = sdlvidext.NewDriver()
	}

	vid := vidext.NewBridge(drv)
	tbl := vidext.Publish(vid)

	if s := tbl.Init(); s != vidext.Success {
		return fmt.Errorf("run: init: %s", s)
	}
	defer tbl.Quit()

	// context attribute requests, made before the surface exists
	tbl.GLSetAttribute(vidext.DoubleBuffer, 1)
	tbl.GLSetAttribute(vidext.DepthSize, 24)

	mode := vidext.Windowed
	if *fullscreen {
		mode = vidext.Fullscreen
	}
	if s := tbl.SetVideoMode(*width, *height, *bpp, mode, 0); s != vidext.Success {
		return fmt.Errorf("run: set video mode: %s", s)
	}

	ver, _, _ := version.Version()
	tbl.SetCaption(fmt.Sprintf("%s (%s)", version.ApplicationName, ver))

	vsyncVal := 0
	if *vsync {
		vsyncVal = 1
	}
	tbl.SetVsync(vsyncVal)

	presented := 0
	startTime := time.Now()

	done := false
	for !done && presented < *frames {
		if !*headless {
			renderTestPattern(presented)
			done = serviceEvents()
		}

		if s := tbl.GLSwapBuffers(); s != vidext.Success {
			return fmt.Errorf("run: swap buffers: %s", s)
		}
		presented++
	}

	fps, accuracy := performance.CalcFPS(presented, time.Since(startTime).Seconds(), float64(displayRefresh(*headless)))
	fmt.Fprintf(md.Output, "%d frames in %.2fs (%.2f fps, %.1f%% of refresh rate)\n",
		presented, time.Since(startTime).Seconds(), fps, accuracy)

	if *snapshot {
		frm := vid.Capture().Latest()
		if frm.IsEmpty() {
			return fmt.Errorf("run: no frame to screenshot")
		}
		path := fmt.Sprintf("%s.jpg", screenshot.UniqueFilename("vidext"))
		if err := screenshot.SaveJPEG(frm, path); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		fmt.Fprintf(md.Output, "screenshot: %s\n", path)
	}

	return nil
}

// a slowly cycling clear colour. enough of a test pattern to show that
// presentation and capture are live.
func renderTestPattern(frame int) {
	t := float32(frame%120) / 120.0
	gl.ClearColor(t, 0.2, 1.0-t, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// service the SDL event queue. a real emulation core does this as part of its
// own input handling; the bridge deliberately has no opinion about events.
// returns true if a quit has been requested.
func serviceEvents() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			return true
		}
	}
	return false
}

func displayRefresh(headless bool) int {
	if headless {
		return 0
	}
	if m, err := sdl.GetCurrentDisplayMode(0); err == nil {
		return int(m.RefreshRate)
	}
	return 0
}

func listModes(md *modalflag.Modes) error {
	md.NewMode()
	headless := md.AddBool("headless", false, "use the null driver (no window)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	var drv vidext.Driver
	if *headless {
		drv = nullvidext.NewDriver()
	} else {
		drv = sdlvidext.NewDriver()
	}

	vid := vidext.NewBridge(drv)
	tbl := vidext.Publish(vid)

	if s := tbl.Init(); s != vidext.Success {
		return fmt.Errorf("modes: init: %s", s)
	}
	defer tbl.Quit()

	// count first, then fill. the same two step pattern an emulation core
	// uses against the table
	var num int
	if s := tbl.ListFullscreenModes(nil, &num); s != vidext.Success {
		return fmt.Errorf("modes: %s", s)
	}
	sizes := make([]vidext.Size, num)
	if s := tbl.ListFullscreenModes(sizes, &num); s != vidext.Success {
		return fmt.Errorf("modes: %s", s)
	}

	for _, sz := range sizes[:num] {
		fmt.Fprintf(md.Output, "%s\n", sz)
	}
	return nil
}
