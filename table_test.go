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

package vidext_test

import (
	"testing"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/nullvidext"
	"github.com/jetsetilly/vidext/test"
)

// Publish() binds a table exactly once per process so everything about the
// function table is tested from this one function.
func TestFunctionTable(t *testing.T) {
	if vidext.Table() != nil {
		t.Fatalf("no table should be published before the first Publish()")
	}

	vid := vidext.NewBridge(nullvidext.NewDriver())
	tbl := vidext.Publish(vid)
	if tbl == nil {
		t.Fatalf("Publish() returned a nil table")
	}
	test.ExpectEquality(t, vidext.Table(), tbl)

	// the first publication wins. a second bridge cannot displace it
	other := vidext.NewBridge(nullvidext.NewDriver())
	test.ExpectEquality(t, vidext.Publish(other), tbl)

	// statuses surface through the table, not errors
	test.ExpectEquality(t, tbl.SetVideoMode(640, 480, 32, vidext.Windowed, 0), vidext.NotInitialized)
	test.ExpectEquality(t, tbl.Init(), vidext.Success)
	test.ExpectEquality(t, tbl.Init(), vidext.AlreadyInitialized)
	test.ExpectEquality(t, tbl.GLSetAttribute(vidext.GLAttr(99), 1), vidext.InvalidAttribute)

	// two step mode enumeration: count with a nil slice, then fill
	var num int
	test.ExpectEquality(t, tbl.ListFullscreenModes(nil, &num), vidext.Success)
	test.ExpectSuccess(t, num > 0)
	sizes := make([]vidext.Size, num)
	test.ExpectEquality(t, tbl.ListFullscreenModes(sizes, &num), vidext.Success)
	test.ExpectEquality(t, num, len(sizes))
	test.ExpectInequality(t, sizes[0].Width, 0)

	// a short slice receives a truncated list and the truncated count
	short := make([]vidext.Size, 1)
	test.ExpectEquality(t, tbl.ListFullscreenModes(short, &num), vidext.Success)
	test.ExpectEquality(t, num, 1)

	test.ExpectEquality(t, tbl.GLSetAttribute(vidext.DepthSize, 24), vidext.Success)

	var v int
	test.ExpectEquality(t, tbl.GLGetAttribute(vidext.DepthSize, &v), vidext.AttributeUnavailable)

	test.ExpectEquality(t, tbl.SetVideoMode(640, 480, 32, vidext.Windowed, 0), vidext.Success)

	test.ExpectEquality(t, tbl.GLGetAttribute(vidext.DepthSize, &v), vidext.Success)
	test.ExpectEquality(t, v, 24)

	test.ExpectEquality(t, tbl.SetCaption("function table test"), vidext.Success)
	test.ExpectEquality(t, tbl.SetVsync(1), vidext.Success)
	test.ExpectEquality(t, tbl.GLSwapBuffers(), vidext.Success)
	test.ExpectEquality(t, tbl.ResizeWindow(800, 600), vidext.Success)

	if tbl.GLGetProcAddress("glClear") == nil {
		t.Errorf("known symbol should return a non-nil proc address")
	}

	test.ExpectEquality(t, tbl.Quit(), vidext.Success)
	test.ExpectEquality(t, tbl.Quit(), vidext.Success)
}
