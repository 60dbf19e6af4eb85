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

package obj

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"seehuhn.de/go/wireframe"
)

func TestRead(t *testing.T) {
	const src = `# a square made of two triangles
v 0 0 0
v 1 0 0
v 1 1 0  # trailing comment
v 0 1 0 1.0
vn 0 0 1

f 1 2 3
f 1/1 3/1/1 4//1
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	wantVertices := []wireframe.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	if len(m.Vertices) != len(wantVertices) {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), len(wantVertices))
	}
	for i, v := range wantVertices {
		if m.Vertices[i] != v {
			t.Errorf("vertex %d: got %v, want %v", i, m.Vertices[i], v)
		}
	}

	wantFaces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if len(m.Faces) != len(wantFaces) {
		t.Fatalf("got %d faces, want %d", len(m.Faces), len(wantFaces))
	}
	for i, f := range wantFaces {
		if m.Faces[i] != f {
			t.Errorf("face %d: got %v, want %v", i, m.Faces[i], f)
		}
	}
}

func TestNegativeIndices(t *testing.T) {
	const src = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Faces) != 1 || m.Faces[0] != [3]int{0, 1, 2} {
		t.Errorf("got faces %v, want [[0 1 2]]", m.Faces)
	}
}

func TestFan(t *testing.T) {
	const src = "v 0 0 0\nv 1 0 0\nv 2 1 0\nv 1 2 0\nv 0 1 0\nf 1 2 3 4 5\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}
	if len(m.Faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(m.Faces), len(want))
	}
	for i := range want {
		if m.Faces[i] != want[i] {
			t.Errorf("face %d: got %v, want %v", i, m.Faces[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		line   int
		target error
	}{
		{"missing_coordinate", "v 1 2\n", 1, nil},
		{"bad_coordinate", "v 1 x 3\n", 1, strconv.ErrSyntax},
		{"nan_coordinate", "v 0 0 0\nv nan 0 0\n", 2, nil},
		{"inf_coordinate", "v 0 0 0\nv 0 inf 0\n", 2, nil},
		{"infinity_coordinate", "v 0 0 -Infinity\n", 1, nil},
		{"overflow_coordinate", "v 1e400 0 0\n", 1, strconv.ErrRange},
		{"short_face", "v 0 0 0\nv 1 0 0\nf 1 2\n", 3, nil},
		{"bad_index", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1 2 three\n", 5, strconv.ErrSyntax},
		{"zero_index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4, nil},
		{"index_too_large", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", 4, ErrIndexRange},
		{"index_too_small", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -1 -2 -4\n", 4, ErrIndexRange},
		{"forward_reference", "f 1 2 3\nv 0 0 0\nv 1 0 0\nv 0 1 0\n", 1, ErrIndexRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("got %T, want *ParseError", err)
			}
			if perr.Line != tc.line {
				t.Errorf("got line %d, want %d", perr.Line, tc.line)
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Errorf("error %q does not match %q", err, tc.target)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	m, err := Load("testdata/cube.obj")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 8 {
		t.Errorf("got %d vertices, want 8", len(m.Vertices))
	}
	if m.NumFaces() != 12 {
		t.Errorf("got %d faces, want 12", m.NumFaces())
	}

	f := m.Face(0)
	want := [3]wireframe.Vec3{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}}
	if f != want {
		t.Errorf("got face %v, want %v", f, want)
	}
}

func TestUnsupportedRecord(t *testing.T) {
	var buf bytes.Buffer
	wireframe.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer wireframe.SetLogger(nil)

	const src = "v 0 0 0\nv 1 0 0\nv 0 1 0\ncstype bspline\nf 1 2 3\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.NumFaces() != 1 {
		t.Errorf("got %d faces, want 1", m.NumFaces())
	}

	out := buf.String()
	for _, want := range []string{"level=WARN", `msg="unsupported OBJ record"`, "line=4", "keyword=cstype"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/does_not_exist.obj")
	if err == nil {
		t.Error("expected an error")
	}
}

func TestNormalize(t *testing.T) {
	m := &Model{
		Vertices: []wireframe.Vec3{
			{X: 10, Y: 20, Z: 30},
			{X: 14, Y: 22, Z: 30},
		},
	}
	m.Normalize()

	lo, hi := m.Bounds()
	wantLo := wireframe.Vec3{X: -1, Y: -0.5, Z: 0}
	wantHi := wireframe.Vec3{X: 1, Y: 0.5, Z: 0}
	if lo != wantLo || hi != wantHi {
		t.Errorf("got bounds %v %v, want %v %v", lo, hi, wantLo, wantHi)
	}
}

func TestNormalizePoint(t *testing.T) {
	m := &Model{Vertices: []wireframe.Vec3{{X: 3, Y: 4, Z: 5}}}
	m.Normalize()
	if m.Vertices[0] != (wireframe.Vec3{}) {
		t.Errorf("got %v, want origin", m.Vertices[0])
	}
}

func TestModelIsMesh(t *testing.T) {
	var _ wireframe.Mesh = (*Model)(nil)
}
