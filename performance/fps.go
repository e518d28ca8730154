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

// Package performance contains helper functions for measuring the
// presentation loop.
package performance

// CalcFPS takes the number of frames presented and the duration (in seconds)
// over which they were presented, and returns the frames-per-second and the
// accuracy of that value as a percentage of the display refresh rate.
func CalcFPS(numFrames int, duration float64, refreshRate float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	if refreshRate > 0 {
		accuracy = 100 * fps / refreshRate
	}
	return fps, accuracy
}
