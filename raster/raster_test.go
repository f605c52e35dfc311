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
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sdf"
	"seehuhn.de/go/sdf/shape"
)

func TestSampleMatchesTree(t *testing.T) {
	tree := shape.Circle(sdf.Vec2{X: 1, Y: -2}, 3)
	opt := &Options{
		Viewport: rect.Rect{LLx: -4, LLy: -6, URx: 6, URy: 4},
		Workers:  3,
	}
	g, err := Sample(tree, 20, 10, opt)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Dist) != 200 {
		t.Fatalf("got %d samples, want 200", len(g.Dist))
	}

	// pixel (i, j) has its centre at (-4 + 0.5*(i+0.5), 4 - (j+0.5))
	for j := range g.Height {
		for i := range g.Width {
			p := sdf.Vec2{X: -4 + 0.5*(float64(i)+0.5), Y: 4 - (float64(j) + 0.5)}
			want := tree.Sample(p)
			if got := g.At(i, j); math.Abs(got-want) > 1e-12 {
				t.Errorf("pixel (%d, %d): got %g, want %g", i, j, got, want)
			}
		}
	}
}

func TestShapeToPixel(t *testing.T) {
	g, err := Sample(shape.Rectangle(1, 1), 32, 16, nil)
	if err != nil {
		t.Fatal(err)
	}
	x, y := g.ShapeToPixel(sdf.Vec2{X: DefaultViewport.LLx, Y: DefaultViewport.URy})
	if d := cmp.Diff([]float64{0, 0}, []float64{x, y}, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("top left corner: %s", d)
	}
	x, y = g.ShapeToPixel(sdf.Vec2{})
	if d := cmp.Diff([]float64{16, 8}, []float64{x, y}, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("origin: %s", d)
	}
	if s := g.PixelSize(); s != 1 {
		t.Errorf("PixelSize() = %g, want 1", s)
	}
}

func TestSampleErrors(t *testing.T) {
	tree := shape.Circle(sdf.Vec2{}, 1)
	if _, err := Sample(tree, 0, 10, nil); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := Sample(nil, 10, 10, nil); err == nil {
		t.Error("nil tree accepted")
	}
	bad := &Options{Viewport: rect.Rect{LLx: 1, LLy: 0, URx: 1, URy: 1}}
	if _, err := Sample(tree, 10, 10, bad); err == nil {
		t.Error("empty viewport accepted")
	}

	vector := sdf.NewTree(sdf.UnaryLeaf(sdf.Value(sdf.Position()), sdf.Abs))
	_, err := Sample(vector, 4, 4, nil)
	if !errors.Is(err, &sdf.NonScalarResultError{}) {
		t.Errorf("got error %v, want NonScalarResultError", err)
	}
}

func TestImage(t *testing.T) {
	opt := &Options{Viewport: rect.Rect{LLx: -4, LLy: -4, URx: 4, URy: 4}}
	g, err := Sample(shape.Circle(sdf.Vec2{}, 2), 8, 8, opt)
	if err != nil {
		t.Fatal(err)
	}
	img := g.Image()
	if c := img.GrayAt(4, 4).Y; c != 0 {
		t.Errorf("centre pixel = %d, want 0 (black)", c)
	}
	if c := img.GrayAt(0, 0).Y; c != 255 {
		t.Errorf("corner pixel = %d, want 255 (white)", c)
	}

	f := g.Field(0)
	if f.Bounds() != img.Bounds() {
		t.Errorf("field bounds %v, image bounds %v", f.Bounds(), img.Bounds())
	}
	in, out := f.RGBAAt(4, 4), f.RGBAAt(0, 0)
	if in.B <= in.R || out.R <= out.B {
		t.Errorf("unexpected colours inside %v, outside %v", in, out)
	}
}

func TestWriteASCII(t *testing.T) {
	opt := &Options{Viewport: rect.Rect{LLx: -3, LLy: -3, URx: 3, URy: 3}}
	g, err := Sample(shape.Rectangle(1, 1), 6, 6, opt)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = g.WriteASCII(buf)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"      ",
		"      ",
		"  ##  ",
		"  ##  ",
		"      ",
		"      ",
	}, "\n") + "\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Error(d)
	}
}
