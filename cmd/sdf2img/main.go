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

// Sdf2img renders one of a set of demo shapes to an image file.
//
// Usage:
//
//	sdf2img [options] output.{png,bmp,tif}
//
// If the output file is "-", the image is written to standard output.  If
// standard output is a terminal, a text preview is shown instead.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sdf"
	"seehuhn.de/go/sdf/raster"
	"seehuhn.de/go/sdf/shape"
)

var scenes = map[string]func(factor float64) *sdf.Tree{
	"circle": func(float64) *sdf.Tree {
		return shape.Circle(sdf.Vec2{X: 0, Y: -1}, 10)
	},
	"rectangle": func(float64) *sdf.Tree {
		return shape.Rectangle(12, 6)
	},
	"union": func(float64) *sdf.Tree {
		return sdf.Union(shape.Circle(sdf.Vec2{X: -5}, 7), shape.Rectangle(4, 10))
	},
	"intersection": func(float64) *sdf.Tree {
		return sdf.Intersection(shape.Circle(sdf.Vec2{}, 10), shape.Rectangle(12, 6))
	},
	"difference": func(float64) *sdf.Tree {
		return sdf.Difference(shape.Rectangle(12, 8), shape.Circle(sdf.Vec2{X: 6, Y: 4}, 6))
	},
	"blend": func(factor float64) *sdf.Tree {
		return sdf.Blend(shape.Circle(sdf.Vec2{}, 10), shape.Rectangle(12, 4), factor)
	},
	"rounded": func(float64) *sdf.Tree {
		return sdf.Offset(shape.Rectangle(8, 4), 3)
	},
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func main() {
	scene := flag.String("scene", "union", "scene to render ("+strings.Join(sceneNames(), ", ")+")")
	factor := flag.Float64("blend", 0.5, "blend factor for the \"blend\" scene")
	width := flag.Int("width", 512, "image width in pixels")
	height := flag.Int("height", 512, "image height in pixels")
	view := flag.String("view", "", "viewport as llx,lly,urx,ury (default -16,-16,16,16)")
	field := flag.Bool("field", false, "show the distance field instead of the filled shape")
	period := flag.Float64("period", 2, "distance between contour bands for -field")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] output.{png,bmp,tif}\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	outputFile := flag.Arg(0)

	build, ok := scenes[*scene]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown scene %q, choose one of %s\n",
			*scene, strings.Join(sceneNames(), ", "))
		os.Exit(1)
	}
	tree := build(*factor)

	opt := &raster.Options{}
	if *view != "" {
		r, err := parseViewport(*view)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing viewport: %v\n", err)
			os.Exit(1)
		}
		opt.Viewport = r
	}

	if outputFile == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		err := preview(tree, opt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error showing preview: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, err := raster.Sample(tree, *width, *height, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sampling shape: %v\n", err)
		os.Exit(1)
	}
	var img image.Image
	if *field {
		img = g.Field(*period)
	} else {
		img = g.Image()
	}

	var out io.Writer = os.Stdout
	if outputFile != "-" {
		f, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	err = encode(out, img, outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}

	if outputFile != "-" {
		fmt.Printf("Successfully rendered %q to %s\n", *scene, outputFile)
	}
}

// encode writes img in the format given by the extension of fname.
// PNG is used for unknown extensions.
func encode(w io.Writer, img image.Image, fname string) error {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(w, img)
	}
}

// preview shows a text rendering of the shape, sized to fit the terminal.
func preview(tree *sdf.Tree, opt *raster.Options) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 80, 25
	}
	rows = max(rows-1, 1)

	// terminal cells are about twice as high as wide
	view := opt.Viewport
	if view == (rect.Rect{}) {
		view = raster.DefaultViewport
	}
	aspect := (view.URx - view.LLx) / (view.URy - view.LLy)
	cols = max(min(cols, int(2*float64(rows)*aspect+0.5)), 1)

	g, err := raster.Sample(tree, cols, rows, opt)
	if err != nil {
		return err
	}
	return g.WriteASCII(os.Stdout)
}

func parseViewport(s string) (rect.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return rect.Rect{}, fmt.Errorf("need 4 numbers, got %d", len(parts))
	}
	var x [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return rect.Rect{}, err
		}
		x[i] = v
	}
	return rect.Rect{LLx: x[0], LLy: x[1], URx: x[2], URy: x[3]}, nil
}
