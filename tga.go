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
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// TGAOptions control the output of [EncodeTGA].
type TGAOptions struct {
	// RLE enables run-length compression of the pixel data.
	RLE bool
}

// TGA image types, see the Truevision TGA file format specification.
const (
	tgaTrueColor    = 2
	tgaGrayscale    = 3
	tgaRLE          = 8 // added to the uncompressed type
	tgaTopLeft      = 0x20
	tgaMaxPacketLen = 128
)

var tgaFooter = []byte("TRUEVISION-XFILE.\x00")

// errTGASize is returned for images which do not fit the 16 bit size
// fields of the TGA header.
var errTGASize = errors.New("image too large for TGA")

// EncodeTGA writes img to w in the Truevision TGA format.
// The pixel rows are stored top to bottom.  If opt is nil, the pixel data
// is written uncompressed.
func EncodeTGA(w io.Writer, img *Image, opt *TGAOptions) error {
	if img.width > 0xFFFF || img.height > 0xFFFF {
		return fmt.Errorf("%dx%d: %w", img.width, img.height, errTGASize)
	}
	rle := opt != nil && opt.RLE
	bpp := int(img.format)

	var hdr [18]byte
	hdr[2] = tgaTrueColor
	if img.format == Grayscale {
		hdr[2] = tgaGrayscale
	}
	if rle {
		hdr[2] += tgaRLE
	}
	binary.LittleEndian.PutUint16(hdr[12:], uint16(img.width))
	binary.LittleEndian.PutUint16(hdr[14:], uint16(img.height))
	hdr[16] = byte(8 * bpp)
	hdr[17] = tgaTopLeft
	if img.format == RGBA {
		hdr[17] |= 8 // alpha bits per pixel
	}

	bw := bufio.NewWriter(w)
	bw.Write(hdr[:])

	pix := tgaPixels(img)
	if rle {
		writeTGARLE(bw, pix, bpp)
	} else {
		bw.Write(pix)
	}

	// TGA 2.0 footer, without extension or developer area
	var offsets [8]byte
	bw.Write(offsets[:])
	bw.Write(tgaFooter)

	return bw.Flush()
}

// tgaPixels returns the pixel data of img in TGA byte order (B, G, R, A).
func tgaPixels(img *Image) []byte {
	pix := bytes.Clone(img.pix)
	if img.format == Grayscale {
		return pix
	}
	bpp := int(img.format)
	for i := 0; i < len(pix); i += bpp {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
	return pix
}

// writeTGARLE writes run-length encoded pixel data.  Runs of at least
// two equal pixels become run packets, everything else is collected into
// raw packets.  Packets may cross row boundaries.
// Errors are reported by the final Flush of bw.
func writeTGARLE(bw *bufio.Writer, pix []byte, bpp int) {
	n := len(pix) / bpp
	px := func(i int) []byte {
		return pix[i*bpp : (i+1)*bpp]
	}
	same := func(i, j int) bool {
		return bytes.Equal(px(i), px(j))
	}

	for i := 0; i < n; {
		run := 1
		for i+run < n && run < tgaMaxPacketLen && same(i, i+run) {
			run++
		}
		if run > 1 {
			bw.WriteByte(0x80 | byte(run-1))
			bw.Write(px(i))
			i += run
			continue
		}

		raw := 1
		for i+raw < n && raw < tgaMaxPacketLen {
			if i+raw+1 < n && same(i+raw, i+raw+1) {
				break // pixel i+raw starts a run
			}
			raw++
		}
		bw.WriteByte(byte(raw - 1))
		bw.Write(pix[i*bpp : (i+raw)*bpp])
		i += raw
	}
}
