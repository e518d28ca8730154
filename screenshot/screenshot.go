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

// Package screenshot saves captured frames to disk.
package screenshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"time"

	"github.com/jetsetilly/vidext"
	"github.com/jetsetilly/vidext/logger"
)

// UniqueFilename returns a filename (without extension) that is very unlikely
// to collide with a previous use of the function.
func UniqueFilename(prefix string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d",
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	if prefix == "" {
		return timestamp
	}
	return fmt.Sprintf("%s_%s", prefix, timestamp)
}

// Image converts a captured frame to an image.RGBA. Row alignment padding in
// the frame is discarded. An empty frame produces a nil image.
func Image(frm vidext.Frame) *image.RGBA {
	if frm.IsEmpty() {
		return nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, frm.Width, frm.Height))
	for y := 0; y < frm.Height; y++ {
		src := frm.Pixels[y*frm.BytesPerRow : y*frm.BytesPerRow+frm.Width*4]
		dst := rgba.Pix[y*rgba.Stride : y*rgba.Stride+frm.Width*4]
		copy(dst, src)
	}
	return rgba
}

// SaveJPEG writes the frame to the specified path.
func SaveJPEG(frm vidext.Frame, path string) error {
	rgba := Image(frm)
	if rgba == nil {
		return fmt.Errorf("screenshot: no frame to save")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	err = jpeg.Encode(f, rgba, &jpeg.Options{Quality: 100})
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
	return nil
}
