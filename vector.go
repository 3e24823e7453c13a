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

package calligraphy

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// unit returns v scaled to length one, or the zero vector if v is too
// short to have a direction.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l <= 1e-10 {
		return vec.Vec2{}
	}
	return v.Mul(1 / l)
}

// normal returns t rotated by 90° counter-clockwise.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// dist2 returns the squared distance between a and b.
func dist2(a, b vec.Vec2) float64 {
	d := b.Sub(a)
	return d.X*d.X + d.Y*d.Y
}

// distToSegment2 returns the squared distance from p to the segment a–b.
// The projection parameter is clamped to [0, 1], so that points beyond
// the ends are measured against the nearest endpoint.
func distToSegment2(p, a, b vec.Vec2) float64 {
	v := b.Sub(a)
	l2 := v.X*v.X + v.Y*v.Y
	t := 0.0
	if l2 > zeroLengthThreshold {
		t = p.Sub(a).Dot(v) / l2
	}
	t = max(0, min(1, t))
	return dist2(p, a.Add(v.Mul(t)))
}

// finite reports whether x is neither infinite nor NaN.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
