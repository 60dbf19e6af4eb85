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

// Package wireframe renders triangle meshes as wireframe images.
//
// Lines are drawn by [DrawLine], an integer-only Bresenham rasteriser.
// Meshes are projected orthographically by a [Projector] and drawn edge by
// edge by [DrawMesh] into an [Image], which can be written to TGA, PNG,
// BMP and TIFF files.
package wireframe

//go:generate go run ./testcases/export
//go:generate python3 tools/generate_references.py

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Vec3 is a point in model space.
type Vec3 struct {
	X, Y, Z float64
}

// Mesh is a list of triangles.
type Mesh interface {
	// NumFaces returns the number of triangles.
	NumFaces() int

	// Face returns the corners of triangle i, for 0 <= i < NumFaces().
	Face(i int) [3]Vec3
}

// DrawMesh draws the edges of all triangles of m.
// Each triangle contributes the three lines v0→v1, v1→v2 and v2→v0.
func DrawMesh(dst PixelSetter, m Mesh, p *Projector, c Color) {
	n := m.NumFaces()
	for i := range n {
		f := m.Face(i)
		p0 := p.Pixel(f[0])
		p1 := p.Pixel(f[1])
		p2 := p.Pixel(f[2])
		DrawLine(dst, p0, p1, c)
		DrawLine(dst, p1, p2, c)
		DrawLine(dst, p2, p0, c)
	}
}

// EdgePath returns the triangles of m as a path in device coordinates,
// one closed subpath per triangle.  Unlike [DrawMesh], the vertices are
// not rounded to pixel positions.
func EdgePath(m Mesh, p *Projector) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		n := m.NumFaces()
		for i := range n {
			f := m.Face(i)
			buf[0] = p.Project(f[0])
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			for _, v := range f[1:] {
				buf[0] = p.Project(v)
				if !yield(path.CmdLineTo, buf[:]) {
					return
				}
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}
