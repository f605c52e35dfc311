// seehuhn.de/go/sdf - signed distance fields for 2D shapes
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

package raster

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"math"
)

// Image renders the shape in black on a white background.  Pixels on the
// boundary are shaded according to the fraction of the pixel covered by
// the shape.
func (g *Grid) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	h := g.PixelSize()
	for j := range g.Height {
		for i := range g.Width {
			coverage := clip(0.5-g.At(i, j)/h, 0, 1)
			img.SetGray(i, j, color.Gray{Y: uint8(math.Round(255 * (1 - coverage)))})
		}
	}
	return img
}

var (
	insideColor  = color.RGBA{R: 0x41, G: 0x8c, B: 0xd9, A: 0xff}
	outsideColor = color.RGBA{R: 0xe6, G: 0x99, B: 0x40, A: 0xff}
)

// Field renders the distance field itself: blue inside the shape, orange
// outside, with darker bands every period units of distance and a white
// line on the boundary.  If period is not positive, eight pixel widths
// are used.
func (g *Grid) Field(period float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	h := g.PixelSize()
	if period <= 0 {
		period = 8 * h
	}
	for j := range g.Height {
		for i := range g.Width {
			d := g.At(i, j)
			base := outsideColor
			if d < 0 {
				base = insideColor
			}
			// attenuate with distance, then add contour bands
			shade := (1 - math.Exp(-4*math.Abs(d)/(period*8))) * 0.3
			shade += 0.2 * (0.5 + 0.5*math.Cos(2*math.Pi*d/period))
			c := scaleColor(base, 1-shade)

			// boundary line, about one pixel wide
			if w := clip(1.5-math.Abs(d)/h, 0, 1); w > 0 {
				c = mixColor(c, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, w)
			}
			img.SetRGBA(i, j, c)
		}
	}
	return img
}

// WriteASCII writes a text rendering of the grid to w, one line per row.
// Inside pixels are shown as '#', boundary pixels as '+'.
func (g *Grid) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	h := g.PixelSize()
	line := make([]byte, g.Width+1)
	line[g.Width] = '\n'
	for j := range g.Height {
		for i := range g.Width {
			d := g.At(i, j)
			switch {
			case math.Abs(d) < h/2:
				line[i] = '+'
			case d < 0:
				line[i] = '#'
			default:
				line[i] = ' '
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func scaleColor(c color.RGBA, s float64) color.RGBA {
	return color.RGBA{
		R: uint8(clip(float64(c.R)*s, 0, 255)),
		G: uint8(clip(float64(c.G)*s, 0, 255)),
		B: uint8(clip(float64(c.B)*s, 0, 255)),
		A: c.A,
	}
}

func mixColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}
