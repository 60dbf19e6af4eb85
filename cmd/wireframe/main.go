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

// Command wireframe draws a triangle mesh, or a small demo picture of
// coloured lines, and writes the result to an image file.
//
// Usage:
//
//	wireframe [-o framebuffer.tga] [-model file.obj [-normalize] [-color white]]
//
// The output format is chosen by the file name extension: .tga, .png, .bmp
// and .tiff give raster images, .pdf gives a vector drawing of the same
// lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/wireframe"
	"seehuhn.de/go/wireframe/obj"
	"seehuhn.de/go/wireframe/testcases"
)

const (
	demoSize  = 64
	modelSize = 800

	// maxExtent bounds the model coordinates; the visible range is [-1, 1].
	maxExtent = 1e4
)

func main() {
	err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintln(os.Stderr, "wireframe:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wireframe", flag.ContinueOnError)
	out := fs.String("o", "framebuffer.tga", "output `file` (.tga, .png, .bmp, .tiff or .pdf)")
	width := fs.Int("width", 0, "image width in pixels (default 64 for the demo, 800 for models)")
	height := fs.Int("height", 0, "image height in pixels (default: same as width)")
	modelFile := fs.String("model", "", "draw the Wavefront OBJ `file` instead of the demo")
	normalize := fs.Bool("normalize", false, "scale the model to fit the image")
	lineColor := fs.String("color", "white", "line colour for models, a name or #rrggbb")
	verbose := fs.Bool("v", false, "log progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	if *verbose {
		wireframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	w := *width
	if w <= 0 {
		w = demoSize
		if *modelFile != "" {
			w = modelSize
		}
	}
	h := *height
	if h <= 0 {
		h = w
	}

	sc := &scene{width: w, height: h}
	if *modelFile == "" {
		if err := sc.addDemo(); err != nil {
			return err
		}
	} else {
		c, err := wireframe.ParseColor(*lineColor)
		if err != nil {
			return err
		}
		m, err := obj.Load(*modelFile)
		if err != nil {
			return err
		}
		if *normalize {
			m.Normalize()
		}
		lo, hi := m.Bounds()
		if max(-lo.X, -lo.Y, hi.X, hi.Y) > maxExtent {
			return fmt.Errorf("%s: coordinates exceed ±%g, try -normalize", *modelFile, float64(maxExtent))
		}
		sc.mesh = m
		sc.meshColor = c
	}

	if strings.EqualFold(filepath.Ext(*out), ".pdf") {
		return sc.writePDF(*out)
	}
	return sc.render().WriteFile(*out)
}

type segment struct {
	a, b image.Point
	c    wireframe.Color
}

// scene collects what is drawn: individual segments in pixel coordinates,
// and optionally a mesh.
type scene struct {
	width, height int
	segments      []segment
	mesh          wireframe.Mesh
	meshColor     wireframe.Color
}

// addDemo adds the demo segments, each in the colour it is named after,
// and marks their end points in white.
func (sc *scene) addDemo() error {
	var ends []image.Point
	for _, tc := range testcases.All["demo"] {
		c, err := wireframe.ParseColor(tc.Name)
		if err != nil {
			return err
		}
		sc.segments = append(sc.segments, segment{a: tc.A, b: tc.B, c: c})
		for _, p := range []image.Point{tc.A, tc.B} {
			if !slices.Contains(ends, p) {
				ends = append(ends, p)
			}
		}
	}
	for _, p := range ends {
		sc.segments = append(sc.segments, segment{a: p, b: p, c: wireframe.White})
	}
	return nil
}

func (sc *scene) projector() *wireframe.Projector {
	return wireframe.NewProjector(wireframe.Viewport(sc.width, sc.height))
}

func (sc *scene) render() *wireframe.Image {
	img := wireframe.NewImage(sc.width, sc.height, wireframe.RGB)
	if sc.mesh != nil {
		wireframe.DrawMesh(img, sc.mesh, sc.projector(), sc.meshColor)
	}
	for _, s := range sc.segments {
		wireframe.DrawLine(img, s.a, s.b, s.c)
	}
	wireframe.Logger().Debug("rendered",
		"width", sc.width,
		"height", sc.height,
		"segments", len(sc.segments))
	return img
}

// writePDF writes the scene as a vector drawing on a black background.
func (sc *scene) writePDF(name string) error {
	w, h := float64(sc.width), float64(sc.height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(name, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// Flip the y axis and move to pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, h - 0.5})
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	if sc.mesh != nil {
		page.SetStrokeColor(strokeColor(sc.meshColor))
		for cmd, pts := range wireframe.EdgePath(sc.mesh, sc.projector()) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}
	for _, s := range sc.segments {
		page.SetStrokeColor(strokeColor(s.c))
		page.MoveTo(float64(s.a.X), float64(s.a.Y))
		page.LineTo(float64(s.b.X), float64(s.b.Y))
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return err
	}
	wireframe.Logger().Debug("vector drawing written", "path", name)
	return nil
}

// strokeColor converts c to a PDF colour.  Alpha is ignored.
func strokeColor(c wireframe.Color) pdfcolor.DeviceRGB {
	return pdfcolor.DeviceRGB{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255}
}
