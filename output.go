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
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned when no encoder exists for the requested
// output format.
var ErrUnknownFormat = errors.New("unknown image format")

// Encode writes img to w.  The format is one of "tga", "png", "bmp" or
// "tiff".  TGA output is run-length compressed.
func (img *Image) Encode(w io.Writer, format string) error {
	switch format {
	case "tga":
		return EncodeTGA(w, img, &TGAOptions{RLE: true})
	case "png":
		return png.Encode(w, img.stdImage())
	case "bmp":
		return bmp.Encode(w, img.stdImage())
	case "tiff", "tif":
		return tiff.Encode(w, img.stdImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes img to the named file.  The format is chosen by
// the file name extension, see [Image.Encode].
func (img *Image) WriteFile(name string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch format {
	case "tga", "png", "bmp", "tif", "tiff":
		// pass
	default:
		return fmt.Errorf("%s: %w %q", name, ErrUnknownFormat, format)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := img.Encode(bw, format); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	Logger().Debug("image written",
		"path", name,
		"format", format,
		"width", img.width,
		"height", img.height,
		"pixel", img.format)
	return nil
}
