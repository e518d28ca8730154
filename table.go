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

import "sync"

// FunctionTable is the fixed shape dispatch table the emulation core binds to
// once at startup. The shape of the table (the operations, their order and
// their signatures) is a binary contract and must not change between releases
// without a version bump.
//
// Every operation returns a Status rather than an error. The emulation core
// decides whether to retry, fall back or abort; the bridge never aborts the
// process.
type FunctionTable struct {
	Init func() Status
	Quit func() Status

	// fills sizes with supported fullscreen geometries, up to len(sizes), and
	// stores the number of geometries written in *num. a nil sizes slice
	// stores the total number available without writing any
	ListFullscreenModes func(sizes []Size, num *int) Status

	SetVideoMode func(width int, height int, bitsPerPixel int, mode VideoMode, flags int) Status
	ResizeWindow func(width int, height int) Status
	SetCaption   func(caption string) Status

	GLGetProcAddress func(proc string) ProcAddress
	GLSetAttribute   func(attr GLAttr, value int) Status
	GLGetAttribute   func(attr GLAttr, value *int) Status
	GLSwapBuffers    func() Status

	SetVsync func(enable int) Status
}

var publishedTable *FunctionTable
var publishCrit sync.Once

// Publish assembles the function table around the supplied bridge. The table
// is assembled exactly once per process lifetime: the first call wins and
// every subsequent call returns the already published table, ignoring its
// argument.
func Publish(vid *Bridge) *FunctionTable {
	publishCrit.Do(func() {
		publishedTable = assembleTable(vid)
	})
	return publishedTable
}

// Table returns the published function table, or nil if Publish() has not
// been called.
func Table() *FunctionTable {
	return publishedTable
}

func assembleTable(vid *Bridge) *FunctionTable {
	return &FunctionTable{
		Init: func() Status {
			return ToStatus(vid.Init())
		},
		Quit: func() Status {
			return ToStatus(vid.Quit())
		},
		ListFullscreenModes: func(sizes []Size, num *int) Status {
			modes, err := vid.ListFullscreenModes()
			if err != nil {
				return ToStatus(err)
			}
			n := len(modes)
			if sizes != nil {
				n = copy(sizes, modes)
			}
			if num != nil {
				*num = n
			}
			return Success
		},
		SetVideoMode: func(width int, height int, bitsPerPixel int, mode VideoMode, flags int) Status {
			return ToStatus(vid.SetVideoMode(width, height, bitsPerPixel, mode, flags))
		},
		ResizeWindow: func(width int, height int) Status {
			return ToStatus(vid.ResizeWindow(width, height))
		},
		SetCaption: func(caption string) Status {
			return ToStatus(vid.SetCaption(caption))
		},
		GLGetProcAddress: func(proc string) ProcAddress {
			return vid.GLGetProcAddress(proc)
		},
		GLSetAttribute: func(attr GLAttr, value int) Status {
			return ToStatus(vid.GLSetAttribute(attr, value))
		},
		GLGetAttribute: func(attr GLAttr, value *int) Status {
			v, err := vid.GLGetAttribute(attr)
			if err != nil {
				return ToStatus(err)
			}
			if value != nil {
				*value = v
			}
			return Success
		},
		GLSwapBuffers: func() Status {
			return ToStatus(vid.GLSwapBuffers())
		},
		SetVsync: func(enable int) Status {
			return ToStatus(vid.SetVsync(enable != 0))
		},
	}
}
