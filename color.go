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
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Color is a pixel value with 8-bit red, green, blue and alpha channels,
// in this order.  The colour channels are not premultiplied by alpha.
type Color [4]uint8

// Predefined colours.
var (
	White  = Color{255, 255, 255, 255}
	Black  = Color{0, 0, 0, 255}
	Red    = Color{255, 0, 0, 255}
	Green  = Color{0, 255, 0, 255}
	Blue   = Color{64, 128, 255, 255}
	Yellow = Color{255, 200, 0, 255}
)

var namedColors = map[string]Color{
	"white":  White,
	"black":  Black,
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"yellow": Yellow,
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the corresponding standard library colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Gray returns the luminance of c, ignoring alpha.
func (c Color) Gray() uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: c[0], G: c[1], B: c[2], A: 255}).(color.Gray).Y
}

// FromColor converts an arbitrary colour to a Color.
func FromColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// ParseColor parses a colour name (for example "red") or a hexadecimal
// colour of the form "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	digits, ok := strings.CutPrefix(s, "#")
	if !ok || (len(digits) != 6 && len(digits) != 8) {
		return Color{}, fmt.Errorf("invalid colour %q", s)
	}
	buf, err := hex.DecodeString(digits)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	c := Color{buf[0], buf[1], buf[2], 255}
	if len(buf) == 4 {
		c[3] = buf[3]
	}
	return c, nil
}
