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
	"github.com/jetsetilly/vidext/test"
)

func TestCapture(t *testing.T) {
	cpt := vidext.NewCapture()

	// nothing published yet
	frm := cpt.Latest()
	test.ExpectSuccess(t, frm.IsEmpty())
	test.ExpectEquality(t, cpt.Generation(), uint64(0))

	pixels := make([]byte, 16*8*4)
	for i := range pixels {
		pixels[i] = 0xab
	}
	cpt.Publish(pixels, 16, 8, 16*4)

	frm = cpt.Latest()
	test.ExpectFailure(t, frm.IsEmpty())
	test.ExpectEquality(t, frm.Width, 16)
	test.ExpectEquality(t, frm.Height, 8)
	test.ExpectEquality(t, frm.BytesPerRow, 64)
	test.ExpectEquality(t, frm.Generation, uint64(1))
	test.ExpectEquality(t, frm.Pixels[0], byte(0xab))

	// the published frame is a copy. mutating the source buffer afterwards
	// must not be visible through the view
	pixels[0] = 0xcd
	test.ExpectEquality(t, cpt.Latest().Pixels[0], byte(0xab))

	// invalidation empties the frame and advances the generation
	cpt.Invalidate()
	test.ExpectSuccess(t, cpt.Latest().IsEmpty())
	test.ExpectEquality(t, cpt.Generation(), uint64(2))

	// a reader holding the old frame can detect that it is stale
	test.ExpectInequality(t, frm.Generation, cpt.Generation())
}

// a reader observing the latest frame concurrently with a publisher must see
// either the prior complete frame or the new complete frame, never a torn
// one. every pixel byte of a published frame carries the same value, so any
// mixed values in a view is a torn frame.
func TestCaptureNoTearing(t *testing.T) {
	cpt := vidext.NewCapture()

	const numFrames = 500
	const frameSize = 8 * 8 * 4

	done := make(chan bool)
	go func() {
		pixels := make([]byte, frameSize)
		for i := 1; i <= numFrames; i++ {
			for j := range pixels {
				pixels[j] = byte(i)
			}
			cpt.Publish(pixels, 8, 8, 8*4)
		}
		close(done)
	}()

	running := true
	for running {
		select {
		case <-done:
			running = false
		default:
		}

		frm := cpt.Latest()
		if frm.IsEmpty() {
			continue
		}
		v := frm.Pixels[0]
		for i, b := range frm.Pixels {
			if b != v {
				t.Fatalf("torn frame: pixel byte %d is %d, expected %d", i, b, v)
			}
		}
	}

	// final frame is the last one published. the publisher's byte values wrap
	// so the comparison must too
	test.ExpectEquality(t, cpt.Latest().Pixels[0], byte(numFrames%256))
	test.ExpectEquality(t, cpt.Generation(), uint64(numFrames))
}
