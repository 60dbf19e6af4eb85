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

import "image"

// drawLineBranching is DrawLine with an explicit branch for the minor
// axis step.
func drawLineBranching(dst PixelSetter, a, b image.Point, c Color) {
	ax, ay, bx, by := a.X, a.Y, b.X, b.Y
	steep := abs(ax-bx) < abs(ay-by)
	if steep {
		ax, ay = ay, ax
		bx, by = by, bx
	}
	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	y := ay
	ierror := 0
	for x := ax; x <= bx; x++ {
		if steep {
			dst.SetPixel(y, x, c)
		} else {
			dst.SetPixel(x, y, c)
		}
		ierror += 2 * abs(by-ay)
		if ierror > bx-ax {
			if by > ay {
				y++
			} else {
				y--
			}
			ierror -= 2 * (bx - ax)
		}
	}
}

// drawLineParametric computes every pixel independently from its position
// along the dominant axis.  Step k of a segment with run dx and rise dy is
// placed at minor offset ceil(k*dy/dx - 1/2): the ideal line rounded to the
// nearest pixel, with ties going towards the start.
func drawLineParametric(dst PixelSetter, a, b image.Point, c Color) {
	ax, ay, bx, by := a.X, a.Y, b.X, b.Y
	steep := abs(ax-bx) < abs(ay-by)
	if steep {
		ax, ay = ay, ax
		bx, by = by, bx
	}
	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	run, rise := bx-ax, by-ay
	for k := 0; k <= run; k++ {
		m := 0
		if run > 0 {
			m = ceilDiv(2*k*abs(rise)-run, 2*run)
		}
		y := ay + m
		if rise < 0 {
			y = ay - m
		}
		if steep {
			dst.SetPixel(y, ax+k, c)
		} else {
			dst.SetPixel(ax+k, y, c)
		}
	}
}

// ceilDiv returns ⌈n/d⌉ for d > 0.
func ceilDiv(n, d int) int {
	q := n / d
	if n > 0 && n%d != 0 {
		q++
	}
	return q
}
