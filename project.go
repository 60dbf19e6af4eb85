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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Projector maps model coordinates to device coordinates using an
// orthographic projection along the z axis.
type Projector struct {
	// M maps (x, y) model coordinates to device space.
	M matrix.Matrix
}

// NewProjector returns a Projector which maps the square [-1,1]×[-1,1]
// onto the viewport.  Model y grows upwards, device y grows downwards:
// (-1, 1) maps to (LLx, LLy) and (1, -1) maps to (URx, URy).
func NewProjector(viewport rect.Rect) *Projector {
	sx := (viewport.URx - viewport.LLx) / 2
	sy := (viewport.URy - viewport.LLy) / 2
	return &Projector{
		M: matrix.Matrix{sx, 0, 0, -sy, viewport.LLx + sx, viewport.LLy + sy},
	}
}

// Viewport returns the rectangle spanned by the pixel centres of a
// width×height image.
func Viewport(width, height int) rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(width - 1),
		URy: float64(height - 1),
	}
}

// Project returns the device coordinates of v.  The z coordinate is ignored.
func (p *Projector) Project(v Vec3) vec.Vec2 {
	M := p.M
	return vec.Vec2{
		X: M[0]*v.X + M[2]*v.Y + M[4],
		Y: M[1]*v.X + M[3]*v.Y + M[5],
	}
}

// Pixel returns the pixel closest to the projection of v.
func (p *Projector) Pixel(v Vec3) image.Point {
	q := p.Project(v)
	return image.Point{
		X: int(math.Round(q.X)),
		Y: int(math.Round(q.Y)),
	}
}
