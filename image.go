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
	"fmt"
	"image"
	"image/color"
)

// Format selects the pixel layout of an [Image].
// The value is the number of bytes stored per pixel.
type Format int

// These are the supported pixel formats.
const (
	Grayscale Format = 1
	RGB       Format = 3
	RGBA      Format = 4
)

func (f Format) String() string {
	switch f {
	case Grayscale:
		return "grayscale"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Image is an in-memory pixel buffer.
// The origin is the top-left corner, x grows to the right and y grows
// downwards.
//
// Image implements [image.Image], so it can be passed directly to
// the standard image encoders.
type Image struct {
	width  int
	height int
	format Format
	pix    []uint8 // row-major, R, G, B, A order, format bytes per pixel
}

// NewImage allocates a new image, filled with transparent black.
// NewImage panics if a dimension is negative or the format is unknown.
func NewImage(width, height int, format Format) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("wireframe: invalid image size %dx%d", width, height))
	}
	switch format {
	case Grayscale, RGB, RGBA:
		// pass
	default:
		panic("wireframe: invalid pixel format " + format.String())
	}
	return &Image{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint8, width*height*int(format)),
	}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	return img.height
}

// Format returns the pixel format of the image.
func (img *Image) Format() Format {
	return img.format
}

// SetPixel sets the pixel at (x, y) to c.
// Coordinates outside the image are silently ignored.
// In [RGB] format the alpha channel is dropped, in [Grayscale]
// format the luminance of c is stored.
func (img *Image) SetPixel(x, y int, c Color) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	i := (y*img.width + x) * int(img.format)
	switch img.format {
	case Grayscale:
		img.pix[i] = c.Gray()
	case RGB:
		copy(img.pix[i:i+3], c[:3])
	case RGBA:
		copy(img.pix[i:i+4], c[:])
	}
}

// Pixel returns the colour of the pixel at (x, y).
// Pixels outside the image are transparent black.
func (img *Image) Pixel(x, y int) Color {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Color{}
	}
	i := (y*img.width + x) * int(img.format)
	switch img.format {
	case Grayscale:
		g := img.pix[i]
		return Color{g, g, g, 255}
	case RGB:
		return Color{img.pix[i], img.pix[i+1], img.pix[i+2], 255}
	default:
		return Color{img.pix[i], img.pix[i+1], img.pix[i+2], img.pix[i+3]}
	}
}

// Clear sets every pixel of the image to c.
func (img *Image) Clear(c Color) {
	n := int(img.format)
	if n == 0 || len(img.pix) == 0 {
		return
	}
	img.SetPixel(0, 0, c)
	for i := n; i < len(img.pix); i *= 2 {
		copy(img.pix[i:], img.pix[:i])
	}
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	if img.format == Grayscale {
		return color.GrayModel
	}
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	c := img.Pixel(x, y)
	if img.format == Grayscale {
		return color.Gray{Y: c[0]}
	}
	return c.NRGBA()
}

// stdImage copies img into the closest standard library image type.
// The encoders have fast paths for these.
func (img *Image) stdImage() image.Image {
	r := img.Bounds()
	if img.format == Grayscale {
		g := image.NewGray(r)
		copy(g.Pix, img.pix)
		return g
	}
	n := image.NewNRGBA(r)
	if img.format == RGBA {
		copy(n.Pix, img.pix)
		return n
	}
	for i, j := 0, 0; i < len(img.pix); i, j = i+3, j+4 {
		copy(n.Pix[j:j+3], img.pix[i:i+3])
		n.Pix[j+3] = 255
	}
	return n
}
