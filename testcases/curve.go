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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []Case{
	{
		Name:   "cubic_s",
		Points: cubic(pt(10, 54), pt(10, 0), pt(54, 64), pt(54, 10), 40, constant(0.8)),
		Pen:    pen(6, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Points: circle(32, 32, 22, 16),
		Pen:    pen(6, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "spiral",
		Points: spiral(64, 64, 4, 56, 3, 240),
		Pen:    pen(5, 30),
		Width:  128,
		Height: 128,
	},
	{
		Name:   "wave",
		Points: wave(8, 120, 64, 20, 2, 160),
		Pen:    pen(7, 60),
		Width:  128,
		Height: 128,
	},
}

// circle samples a full circle, built from four cubic Bézier quadrants
// with n samples each. The quadrants share their endpoints, so the result
// contains coincident consecutive samples.
func circle(cx, cy, r float64, n int) []calligraphy.Sample {
	k := r * kappa
	p := constant(0.8)
	quadrants := [][4]vec.Vec2{
		{pt(cx+r, cy), pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)},
		{pt(cx, cy-r), pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)},
		{pt(cx-r, cy), pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)},
		{pt(cx, cy+r), pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)},
	}
	var res []calligraphy.Sample
	for _, q := range quadrants {
		res = append(res, cubic(q[0], q[1], q[2], q[3], n, p)...)
	}
	retime(res)
	return res
}

// spiral samples an Archimedean spiral around (cx, cy), growing from
// radius r0 to r1 in the given number of turns. Pressure rises along the
// stroke.
func spiral(cx, cy, r0, r1, turns float64, n int) []calligraphy.Sample {
	return sampleCurve(n, func(t float64) float64 { return 0.3 + 0.7*t }, func(t float64) vec.Vec2 {
		r := r0 + (r1-r0)*t
		phi := 2 * math.Pi * turns * t
		return pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi))
	})
}

// wave samples a sine wave from x0 to x1 around the line y = cy.
func wave(x0, x1, cy, amplitude, periods float64, n int) []calligraphy.Sample {
	return sampleCurve(n, constant(0.9), func(t float64) vec.Vec2 {
		return pt(x0+(x1-x0)*t, cy+amplitude*math.Sin(2*math.Pi*periods*t))
	})
}

// retime assigns evenly spaced timestamps.
func retime(pts []calligraphy.Sample) {
	for i := range pts {
		pts[i].Time = float64(i) * sampleInterval
	}
}
