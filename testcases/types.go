// seehuhn.de/go/calligraphy - stroke geometry for freehand drawing
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

// Package testcases contains example strokes for tests, benchmarks and
// the reference generators.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy"
)

// Case is a single example stroke.
type Case struct {
	Name   string               // lowercase a-z, 0-9 and _ only
	Points []calligraphy.Sample // the raw input samples
	Pen    calligraphy.Pen      // pen used to build segments and meshes
	Width  int                  // canvas width in pixels
	Height int                  // canvas height in pixels
}

// sampleInterval is the time between samples, in seconds (120 Hz input).
const sampleInterval = 1.0 / 120

// pen returns a pen with the given width and nib angle, full opacity
// and the default nib width.
func pen(width, nibAngle float64) calligraphy.Pen {
	return calligraphy.Pen{
		Width:    width,
		Opacity:  1,
		NibAngle: nibAngle,
		NibWidth: 1,
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline returns one sample per point, with constant pressure and
// evenly spaced timestamps.
func polyline(pressure float64, pts ...vec.Vec2) []calligraphy.Sample {
	res := make([]calligraphy.Sample, len(pts))
	for i, p := range pts {
		res[i] = calligraphy.Sample{
			Pos:      p,
			Pressure: pressure,
			Time:     float64(i) * sampleInterval,
		}
	}
	return res
}

// line returns n+1 evenly spaced samples from (x0, y0) to (x1, y1).
func line(x0, y0, x1, y1 float64, n int, pressure func(t float64) float64) []calligraphy.Sample {
	a, b := pt(x0, y0), pt(x1, y1)
	return sampleCurve(n, pressure, func(t float64) vec.Vec2 {
		return a.Mul(1 - t).Add(b.Mul(t))
	})
}

// cubic returns n+1 samples along a cubic Bézier curve, at evenly spaced
// curve parameters.
func cubic(p0, p1, p2, p3 vec.Vec2, n int, pressure func(t float64) float64) []calligraphy.Sample {
	return sampleCurve(n, pressure, func(t float64) vec.Vec2 {
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
	})
}

// sampleCurve evaluates f and pressure at n+1 evenly spaced parameters
// in [0, 1].
func sampleCurve(n int, pressure func(t float64) float64, f func(t float64) vec.Vec2) []calligraphy.Sample {
	res := make([]calligraphy.Sample, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		res[i] = calligraphy.Sample{
			Pos:      f(t),
			Pressure: pressure(t),
			Time:     float64(i) * sampleInterval,
		}
	}
	return res
}

// constant returns a pressure profile with fixed value p.
func constant(p float64) func(float64) float64 {
	return func(float64) float64 { return p }
}
