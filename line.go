// seehuhn.de/go/wireframe - a minimal wireframe renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wireframe

import (
	"image"
	"math/bits"
)

// PixelSetter is the destination of [DrawLine].
// How coordinates outside the destination are handled is up to the
// implementation.
type PixelSetter interface {
	SetPixel(x, y int, c Color)
}

// DrawLine writes the pixels approximating the straight segment from a to b.
//
// The segment is traversed one pixel per unit step along its dominant axis,
// so exactly [LineLen](a, b) pixels are written, both end points included.
// The pixels, and the order in which they are written, do not depend on the
// order of a and b.  Only integer arithmetic is used.
func DrawLine(dst PixelSetter, a, b image.Point, c Color) {
	ax, ay, bx, by := a.X, a.Y, b.X, b.Y

	// For steep lines we step along y, by swapping the roles of x and y.
	steep := abs(ax-bx) < abs(ay-by)
	if steep {
		ax, ay = ay, ax
		bx, by = by, bx
	}
	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	run := bx - ax // zero only if a == b
	rise := 2 * abs(by-ay)
	dy := 1
	if by < ay {
		dy = -1
	}

	// ierror is how far the ideal line has moved away from y along the
	// minor axis, in units of 1/(2*run) pixels.
	y, ierror := ay, 0
	for x := ax; x <= bx; x++ {
		if steep {
			dst.SetPixel(y, x, c)
		} else {
			dst.SetPixel(x, y, c)
		}
		ierror += rise
		step := greater(ierror, run)
		y += dy * step
		ierror -= 2 * run * step
	}
}

// LineLen returns the number of pixels [DrawLine] writes for the segment
// from a to b.
func LineLen(a, b image.Point) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
}

// greater returns 1 if a > b and 0 otherwise.
// The result is computed from the sign bit of b-a, without a branch.
func greater(a, b int) int {
	return int(uint(b-a) >> (bits.UintSize - 1))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
