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
	"errors"
	"testing"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/test"
)

func TestRegistry(t *testing.T) {
	reg := vidext.NewRegistry()

	// unknown attribute identifiers are always reported, never silently
	// accepted
	err := reg.SetAttribute(vidext.GLAttr(0), 1)
	test.ExpectSuccess(t, errors.Is(err, vidext.ErrInvalidAttribute))
	err = reg.SetAttribute(vidext.GLAttr(100), 1)
	test.ExpectSuccess(t, errors.Is(err, vidext.ErrInvalidAttribute))

	// a request alone does not produce a readable value
	test.ExpectSuccess(t, reg.SetAttribute(vidext.DepthSize, 24))
	_, err = reg.GetAttribute(vidext.DepthSize)
	test.ExpectSuccess(t, errors.Is(err, vidext.ErrAttributeUnavailable))

	// resolution makes the value readable
	reg.Resolve(vidext.DepthSize, 16)
	v, err := reg.GetAttribute(vidext.DepthSize)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 16)

	// the request is still visible to drivers
	v, ok := reg.Requested(vidext.DepthSize)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 24)

	// clearing the resolved values does not touch the requests
	reg.ClearResolved()
	_, err = reg.GetAttribute(vidext.DepthSize)
	test.ExpectSuccess(t, errors.Is(err, vidext.ErrAttributeUnavailable))
	v, ok = reg.Requested(vidext.DepthSize)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 24)
}

func TestStatusConversion(t *testing.T) {
	test.ExpectEquality(t, vidext.ToStatus(nil), vidext.Success)
	test.ExpectEquality(t, vidext.ToStatus(vidext.ErrNotInitialized), vidext.NotInitialized)
	test.ExpectEquality(t, vidext.ToStatus(vidext.ErrAlreadyInitialized), vidext.AlreadyInitialized)
	test.ExpectEquality(t, vidext.ToStatus(vidext.ErrUnsupportedMode), vidext.UnsupportedMode)
	test.ExpectEquality(t, vidext.ToStatus(vidext.ErrInvalidAttribute), vidext.InvalidAttribute)
	test.ExpectEquality(t, vidext.ToStatus(vidext.ErrAttributeUnavailable), vidext.AttributeUnavailable)

	// errors from outside the package surface as negotiation failures
	test.ExpectEquality(t, vidext.ToStatus(errors.New("host failure")), vidext.UnsupportedMode)
}

func TestFrozenOrdinals(t *testing.T) {
	// the integer values of the enumerations are a binary contract with the
	// emulation core. a failure here means the contract has been broken
	test.ExpectEquality(t, int(vidext.Windowed), 1)
	test.ExpectEquality(t, int(vidext.Fullscreen), 2)

	test.ExpectEquality(t, int(vidext.DoubleBuffer), 1)
	test.ExpectEquality(t, int(vidext.BufferSize), 2)
	test.ExpectEquality(t, int(vidext.DepthSize), 3)
	test.ExpectEquality(t, int(vidext.RedSize), 4)
	test.ExpectEquality(t, int(vidext.GreenSize), 5)
	test.ExpectEquality(t, int(vidext.BlueSize), 6)
	test.ExpectEquality(t, int(vidext.AlphaSize), 7)
	test.ExpectEquality(t, int(vidext.SwapControl), 8)

	test.ExpectEquality(t, int(vidext.Success), 0)
	test.ExpectEquality(t, int(vidext.NotInitialized), 1)
	test.ExpectEquality(t, int(vidext.AlreadyInitialized), 2)
	test.ExpectEquality(t, int(vidext.UnsupportedMode), 3)
	test.ExpectEquality(t, int(vidext.InvalidAttribute), 4)
	test.ExpectEquality(t, int(vidext.AttributeUnavailable), 5)
}
