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

// Package obj reads triangle meshes from Wavefront OBJ files.
//
// Only vertex positions ("v") and faces ("f") are used.  Faces with more
// than three corners are split into a fan of triangles.  Vertices must be
// defined before they are referenced.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/wireframe"
)

// Model is a triangle mesh.
type Model struct {
	Vertices []wireframe.Vec3

	// Faces holds 0-based indices into Vertices.
	Faces [][3]int
}

// NumFaces implements the [wireframe.Mesh] interface.
func (m *Model) NumFaces() int {
	return len(m.Faces)
}

// Face implements the [wireframe.Mesh] interface.
func (m *Model) Face(i int) [3]wireframe.Vec3 {
	f := m.Faces[i]
	return [3]wireframe.Vec3{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Bounds returns the smallest box containing all vertices.
// For a model without vertices, both corners are zero.
func (m *Model) Bounds() (lo, hi wireframe.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
		lo.Z, hi.Z = min(lo.Z, v.Z), max(hi.Z, v.Z)
	}
	return lo, hi
}

// Normalize moves and uniformly scales the model so that its bounding
// box is centred at the origin and fits into [-1,1]³.
func (m *Model) Normalize() {
	lo, hi := m.Bounds()
	cx := (lo.X + hi.X) / 2
	cy := (lo.Y + hi.Y) / 2
	cz := (lo.Z + hi.Z) / 2
	r := max(hi.X-lo.X, hi.Y-lo.Y, hi.Z-lo.Z) / 2
	scale := 1.0
	if r > 0 {
		scale = 1 / r
	}
	for i, v := range m.Vertices {
		m.Vertices[i] = wireframe.Vec3{
			X: (v.X - cx) * scale,
			Y: (v.Y - cy) * scale,
			Z: (v.Z - cz) * scale,
		}
	}
}

// ErrIndexRange is reported for faces which refer to a vertex which has
// not been defined.
var ErrIndexRange = errors.New("vertex index out of range")

// ParseError describes a malformed line in an OBJ file.
type ParseError struct {
	Line int // 1-based line number
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads a model from the named file.
func Load(name string) (m *Model, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	m, err = Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	wireframe.Logger().Debug("model loaded",
		"path", name,
		"vertices", len(m.Vertices),
		"faces", len(m.Faces))
	return m, nil
}

// Read reads a model in OBJ format from r.
// Malformed lines are reported as [*ParseError].
func Read(r io.Reader) (*Model, error) {
	m := &Model{}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = m.addVertex(fields[1:])
		case "f":
			err = m.addFace(fields[1:])
		case "vt", "vn", "vp", "o", "g", "s", "usemtl", "mtllib":
			// not needed for wireframes
		default:
			wireframe.Logger().Warn("unsupported OBJ record",
				"line", lineNo,
				"keyword", fields[0])
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) addVertex(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("vertex needs 3 coordinates, got %d", len(args))
	}
	var xyz [3]float64
	for i := range xyz {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return fmt.Errorf("vertex coordinate %q: %w", args[i], errors.Unwrap(err))
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("vertex coordinate %q is not finite", args[i])
		}
		xyz[i] = x
	}
	m.Vertices = append(m.Vertices, wireframe.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	return nil
}

func (m *Model) addFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(args))
	}
	idx := make([]int, len(args))
	for i, tok := range args {
		k, err := m.vertexIndex(tok)
		if err != nil {
			return err
		}
		idx[i] = k
	}
	for i := 1; i+1 < len(idx); i++ {
		m.Faces = append(m.Faces, [3]int{idx[0], idx[i], idx[i+1]})
	}
	return nil
}

// vertexIndex converts a face vertex token ("i", "i/t", "i//n" or "i/t/n")
// into a 0-based index into m.Vertices.
func (m *Model) vertexIndex(tok string) (int, error) {
	s, _, _ := strings.Cut(tok, "/")
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("face vertex %q: %w", tok, errors.Unwrap(err))
	}

	n := len(m.Vertices)
	switch {
	case k > 0:
		k-- // OBJ indices are 1-based
	case k < 0:
		k += n // relative to the end of the list
	default:
		return 0, fmt.Errorf("face vertex %q: index 0 is invalid", tok)
	}
	if k < 0 || k >= n {
		return 0, fmt.Errorf("face vertex %q: %w (%d vertices defined)", tok, ErrIndexRange, n)
	}
	return k, nil
}
