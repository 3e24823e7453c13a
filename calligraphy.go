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

// Package calligraphy turns pen and touch samples into stroke geometry.
//
// The package implements the geometric part of a freehand drawing
// surface: noise smoothing, resampling at fixed spacing, polyline
// simplification, velocity estimation, and the conversion of a stroke
// into either per-segment thickness descriptors or a triangle mesh which
// approximates a broad calligraphy nib.
//
// All stages write into caller-supplied slices and never write more than
// len(dst) elements. The number of elements written is returned; a short
// count is a normal result and not an error. Nil or empty slices produce
// zero output.
//
// None of the functions keep state between calls, apart from a sine and
// cosine table which is built on first use.
package calligraphy

//go:generate go run ./testcases/export

import "seehuhn.de/go/geom/vec"

// Sample is a single pen or touch observation.
//
// Pressure is nominally in [0, 1], but is not clamped. Time is only used
// for differences, in whatever unit the input layer provides. Tilt is
// carried along but does not influence the stroke geometry.
type Sample struct {
	Pos      vec.Vec2
	Pressure float64
	Time     float64
	Tilt     vec.Vec2
}

// Segment describes one non-degenerate piece of a stroke.
type Segment struct {
	A, B      vec.Vec2 // endpoints
	Thickness float64  // full width, at least MinThickness
	Alpha     float64  // opacity in [0, 1]
}

// Vertex is a corner of a mesh triangle.
type Vertex struct {
	Pos   vec.Vec2
	Alpha float64 // in [0, 1]
}

// Shaping constants of the nib model.
//
// The thickness of a segment is
//
//	max(MinThickness, width·(thicknessOffset + thicknessRange·|t × n|)·p)
//
// where t is the unit tangent of the segment, n the unit nib direction and
// p the mean pressure of the two endpoints.
const (
	// MinThickness is the smallest thickness ever emitted.
	MinThickness = 0.6

	thicknessOffset = 0.35
	thicknessRange  = 0.9

	// Nib width factors are clamped to this range.
	minNibWidth = 0.3
	maxNibWidth = 2.5
)

const (
	// zeroLengthThreshold is compared against squared segment lengths.
	// Shorter segments are dropped.
	zeroLengthThreshold = 1e-12

	// minTimeStep replaces non-positive or tiny time differences.
	minTimeStep = 1e-6
)
