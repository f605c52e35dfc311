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

// Package raster samples signed distance trees on a regular grid.
package raster

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sdf"
)

// Options controls how a tree is sampled.
// A nil *Options is equivalent to the zero value.
type Options struct {
	// Viewport is the region of the plane covered by the grid.
	// If this is the zero rectangle, [DefaultViewport] is used.
	Viewport rect.Rect

	// Workers is the number of goroutines used for sampling.
	// If this is zero, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// DefaultViewport is the viewport used if none is given in the options.
var DefaultViewport = rect.Rect{LLx: -16, LLy: -16, URx: 16, URy: 16}

// Grid holds the signed distances sampled at the pixel centres of an
// image.
type Grid struct {
	Width, Height int

	// PixelToShape maps pixel coordinates to the coordinate system of the
	// shape.  Pixel (i, j) covers the square [i, i+1]×[j, j+1], and row
	// 0 is the top row of the image.
	PixelToShape matrix.Matrix

	// Dist holds the sampled distances in row-major order.
	Dist []float64
}

// Sample evaluates t at the centres of a width×height pixel grid covering
// the viewport.
func Sample(t *sdf.Tree, width, height int, opt *Options) (*Grid, error) {
	if t == nil {
		return nil, errors.New("raster: nil tree")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid grid size %dx%d", width, height)
	}
	if opt == nil {
		opt = &Options{}
	}
	view := opt.Viewport
	if view == (rect.Rect{}) {
		view = DefaultViewport
	}
	if !(view.URx > view.LLx && view.URy > view.LLy) {
		return nil, fmt.Errorf("raster: empty viewport %v", view)
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, height)

	sx := (view.URx - view.LLx) / float64(width)
	sy := (view.URy - view.LLy) / float64(height)
	g := &Grid{
		Width:        width,
		Height:       height,
		PixelToShape: matrix.Matrix{sx, 0, 0, -sy, view.LLx, view.URy},
		Dist:         make([]float64, width*height),
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				err := g.sampleRow(t, j)
				if err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	for j := range height {
		rows <- j
	}
	close(rows)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return g, nil
}

func (g *Grid) sampleRow(t *sdf.Tree, j int) error {
	row := g.Dist[j*g.Width : (j+1)*g.Width]
	for i := range row {
		x, y := g.PixelToShape.Apply(float64(i)+0.5, float64(j)+0.5)
		d, err := t.Distance(sdf.Vec2{X: x, Y: y})
		if err != nil {
			return err
		}
		row[i] = d
	}
	return nil
}

// At returns the distance sampled at the centre of pixel (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Dist[j*g.Width+i]
}

// PixelSize returns the side length of a pixel in shape coordinates.
// For non-square pixels the smaller side is returned.
func (g *Grid) PixelSize() float64 {
	sx := g.PixelToShape[0]
	sy := g.PixelToShape[3]
	if sx < 0 {
		sx = -sx
	}
	if sy < 0 {
		sy = -sy
	}
	return min(sx, sy)
}

// ShapeToPixel maps a point in shape coordinates to pixel coordinates.
func (g *Grid) ShapeToPixel(p sdf.Vec2) (float64, float64) {
	return g.PixelToShape.Inv().Apply(p.X, p.Y)
}
