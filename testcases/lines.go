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

package testcases

// demoCases are the four segments of the demo picture, named by the
// colour they are drawn in.  Three end points are shared, and two of
// the segments are the same line drawn in opposite directions.
var demoCases = []TestCase{
	{Name: "blue", A: pt(7, 3), B: pt(12, 37), Width: 64, Height: 64},
	{Name: "green", A: pt(62, 53), B: pt(12, 37), Width: 64, Height: 64},
	{Name: "yellow", A: pt(62, 53), B: pt(7, 3), Width: 64, Height: 64},
	{Name: "red", A: pt(7, 3), B: pt(62, 53), Width: 64, Height: 64},
}

// octantCases start at the canvas centre and end in each of the eight
// octants.  Names give the compass direction, with north at the top of
// the image.
var octantCases = []TestCase{
	{Name: "ene", A: pt(32, 32), B: pt(60, 20), Width: 64, Height: 64},
	{Name: "nne", A: pt(32, 32), B: pt(44, 4), Width: 64, Height: 64},
	{Name: "nnw", A: pt(32, 32), B: pt(20, 4), Width: 64, Height: 64},
	{Name: "wnw", A: pt(32, 32), B: pt(4, 20), Width: 64, Height: 64},
	{Name: "wsw", A: pt(32, 32), B: pt(4, 44), Width: 64, Height: 64},
	{Name: "ssw", A: pt(32, 32), B: pt(20, 60), Width: 64, Height: 64},
	{Name: "sse", A: pt(32, 32), B: pt(44, 60), Width: 64, Height: 64},
	{Name: "ese", A: pt(32, 32), B: pt(60, 44), Width: 64, Height: 64},
}

var axisCases = []TestCase{
	{Name: "horizontal", A: pt(0, 0), B: pt(10, 0), Width: 16, Height: 16},
	{Name: "horizontal_reversed", A: pt(10, 5), B: pt(0, 5), Width: 16, Height: 16},
	{Name: "vertical", A: pt(0, 0), B: pt(0, 10), Width: 16, Height: 16},
	{Name: "vertical_reversed", A: pt(5, 10), B: pt(5, 0), Width: 16, Height: 16},
	{Name: "diagonal", A: pt(2, 2), B: pt(13, 13), Width: 16, Height: 16},
	{Name: "antidiagonal", A: pt(13, 2), B: pt(2, 13), Width: 16, Height: 16},
}

var degenerateCases = []TestCase{
	{Name: "point", A: pt(5, 5), B: pt(5, 5), Width: 16, Height: 16},
}
