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
	"fmt"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// stroke returns one sample per point, with unit pressure and timestamps
// 0, 1, 2, ...
func stroke(xy ...float64) []Sample {
	res := make([]Sample, len(xy)/2)
	for i := range res {
		res[i] = Sample{
			Pos:      vec.Vec2{X: xy[2*i], Y: xy[2*i+1]},
			Pressure: 1,
			Time:     float64(i),
		}
	}
	return res
}

// wiggle returns an irregular stroke of n samples.
func wiggle(n int) []Sample {
	res := make([]Sample, n)
	for i := range res {
		x := float64(i) * 1.7
		res[i] = Sample{
			Pos:      vec.Vec2{X: x, Y: 3 * math.Sin(x*0.9)},
			Pressure: 0.5 + 0.4*math.Cos(x),
			Time:     float64(i) / 120,
			Tilt:     vec.Vec2{X: 0.1, Y: float64(i)},
		}
	}
	return res
}

func TestFilterCapacity(t *testing.T) {
	stages := map[string]func(dst, src []Sample) int{
		"smooth":   func(dst, src []Sample) int { return Smooth(dst, src, 0.5) },
		"resample": func(dst, src []Sample) int { return Resample(dst, src, 1) },
		"simplify": func(dst, src []Sample) int { return Simplify(dst, src, 0.1) },
		"oneeuro":  func(dst, src []Sample) int { return DefaultOneEuro().Filter(dst, src) },
	}
	for name, stage := range stages {
		for n := 0; n <= 12; n++ {
			src := wiggle(n)
			for capacity := 0; capacity <= n+2; capacity++ {
				t.Run(fmt.Sprintf("%s_%d_%d", name, n, capacity), func(t *testing.T) {
					// guard elements detect writes beyond the capacity
					buf := make([]Sample, capacity+1)
					guard := Sample{Pressure: -42}
					buf[capacity] = guard

					got := stage(buf[:capacity], src)
					if got < 0 || got > capacity {
						t.Fatalf("wrote %d samples into capacity %d", got, capacity)
					}
					if n == 0 && got != 0 {
						t.Errorf("empty input gave %d samples", got)
					}
					if buf[capacity] != guard {
						t.Error("write beyond capacity")
					}
				})
			}
		}
	}
}

// TestFilterPrefix checks that a short dst receives the leading part of
// the result obtained with enough room.
func TestFilterPrefix(t *testing.T) {
	stages := map[string]func(dst, src []Sample) int{
		"smooth":   func(dst, src []Sample) int { return Smooth(dst, src, 0.5) },
		"resample": func(dst, src []Sample) int { return Resample(dst, src, 2.5) },
		"simplify": func(dst, src []Sample) int { return Simplify(dst, src, 0.3) },
		"oneeuro":  func(dst, src []Sample) int { return DefaultOneEuro().Filter(dst, src) },
	}
	src := wiggle(40)
	for name, stage := range stages {
		full := make([]Sample, len(src))
		total := stage(full, src)
		full = full[:total]

		for capacity := 0; capacity <= total; capacity++ {
			t.Run(fmt.Sprintf("%s_%d", name, capacity), func(t *testing.T) {
				dst := make([]Sample, capacity)
				n := stage(dst, src)
				if n != capacity {
					t.Fatalf("got %d samples, want %d", n, capacity)
				}
				for i := range n {
					if dst[i] != full[i] {
						t.Errorf("sample %d: got %v, want %v", i, dst[i], full[i])
					}
				}
			})
		}
	}
}

func TestVelocitiesPrefix(t *testing.T) {
	src := wiggle(12)
	full := make([]float64, len(src)-1)
	Velocities(full, src)
	for capacity := range len(full) {
		dst := make([]float64, capacity)
		n := Velocities(dst, src)
		for i := range n {
			if dst[i] != full[i] {
				t.Errorf("capacity %d, value %d: got %g, want %g", capacity, i, dst[i], full[i])
			}
		}
	}
}

func TestVelocitiesCapacity(t *testing.T) {
	src := wiggle(10)
	for capacity := 0; capacity <= 10; capacity++ {
		dst := make([]float64, capacity)
		got := Velocities(dst, src)
		want := min(capacity, 9)
		if got != want {
			t.Errorf("capacity %d: got %d values, want %d", capacity, got, want)
		}
	}
}

func TestSmoothAnchors(t *testing.T) {
	src := wiggle(20)
	for _, factor := range []float64{-1, 0, 0.3, 1, 2, math.NaN()} {
		dst := make([]Sample, len(src))
		n := Smooth(dst, src, factor)
		if n != len(src) {
			t.Fatalf("factor %g: got %d samples, want %d", factor, n, len(src))
		}
		if dst[0] != src[0] || dst[n-1] != src[len(src)-1] {
			t.Errorf("factor %g: end points were modified", factor)
		}
		for i := range n {
			if dst[i].Time != src[i].Time || dst[i].Tilt != src[i].Tilt {
				t.Errorf("factor %g: time or tilt modified at %d", factor, i)
			}
		}
	}
}

func TestSmoothFactor(t *testing.T) {
	src := stroke(0, 0, 2, 2, 4, 0)
	src[1].Pressure = 0

	cases := []struct {
		factor   float64
		pos      vec.Vec2
		pressure float64
	}{
		{0, vec.Vec2{X: 2, Y: 2}, 0},
		{0.5, vec.Vec2{X: 2, Y: 1}, 0.5},
		{1, vec.Vec2{X: 2, Y: 0}, 1},
		{5, vec.Vec2{X: 2, Y: 0}, 1},          // clamped to 1
		{-1, vec.Vec2{X: 2, Y: 2}, 0},         // clamped to 0
		{math.NaN(), vec.Vec2{X: 2, Y: 2}, 0}, // treated as 0
	}
	for _, c := range cases {
		dst := make([]Sample, 3)
		Smooth(dst, src, c.factor)
		if d := dst[1].Pos.Sub(c.pos).Length(); d > 1e-12 {
			t.Errorf("factor %g: got %v, want %v", c.factor, dst[1].Pos, c.pos)
		}
		if math.Abs(dst[1].Pressure-c.pressure) > 1e-12 {
			t.Errorf("factor %g: pressure %g, want %g", c.factor, dst[1].Pressure, c.pressure)
		}
	}
}

func TestSmoothShort(t *testing.T) {
	src := stroke(1, 2, 3, 4)
	dst := make([]Sample, 2)
	if n := Smooth(dst, src, 1); n != 2 || dst[0] != src[0] || dst[1] != src[1] {
		t.Errorf("got %v, want identity copy", dst[:n])
	}
}

func TestResampleExample(t *testing.T) {
	src := stroke(0, 0, 10, 0, 20, 0)
	dst := make([]Sample, 3)
	n := Resample(dst, src, 5)
	if n != 3 {
		t.Fatalf("got %d samples, want 3", n)
	}
	for i := range 3 {
		if dst[i] != src[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestResampleSpacing(t *testing.T) {
	src := wiggle(200)
	const spacing = 4.0
	dst := make([]Sample, len(src))
	n := Resample(dst, src, spacing)
	if n < 2 {
		t.Fatalf("got %d samples", n)
	}
	if dst[0] != src[0] || dst[n-1] != src[len(src)-1] {
		t.Error("end points not preserved")
	}
	for i := 1; i < n-1; i++ {
		if d := dist2(dst[i-1].Pos, dst[i].Pos); d < spacing*spacing {
			t.Errorf("samples %d and %d are only %g apart", i-1, i, math.Sqrt(d))
		}
	}
}

func TestResampleShort(t *testing.T) {
	src := stroke(0, 0, 0.1, 0, 0.2, 0)

	// the last sample is added exactly once
	dst := make([]Sample, 3)
	if n := Resample(dst, src, 10); n != 2 || dst[1] != src[2] {
		t.Errorf("got %v", dst[:n])
	}

	// a single sample is returned unchanged
	if n := Resample(dst, src[:1], 10); n != 1 || dst[0] != src[0] {
		t.Errorf("got %v", dst[:n])
	}
}

// TestResampleTruncated pins the behaviour when dst fills up before
// the end of the stroke: the last input sample is not forced in.
func TestResampleTruncated(t *testing.T) {
	src := stroke(0, 0, 10, 0, 20, 0)
	dst := make([]Sample, 2)
	n := Resample(dst, src, 5)
	if n != 2 || dst[0] != src[0] || dst[1] != src[1] {
		t.Errorf("got %v, want the first two samples", dst[:n])
	}

	// with one more slot, the last sample is included
	dst = make([]Sample, 3)
	if n := Resample(dst, src, 5); n != 3 || dst[2] != src[2] {
		t.Errorf("got %v", dst[:n])
	}
}

func TestSimplifyTruncated(t *testing.T) {
	src := stroke(0, 0, 1, 1, 2, 0, 3, 1, 4, 0)
	dst := make([]Sample, 3)
	n := Simplify(dst, src, 0)
	if n != 3 {
		t.Fatalf("got %d samples, want 3", n)
	}
	for i := range n {
		if dst[i] != src[i] {
			t.Errorf("sample %d: got %v, want %v", i, dst[i].Pos, src[i].Pos)
		}
	}
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		name    string
		src     []Sample
		epsilon float64
		want    []int // indices into src
	}{
		{"collinear", stroke(0, 0, 5, 0, 10, 0), 0.01, []int{0, 2}},
		{"zigzag_zero", stroke(0, 0, 1, 1, 2, 0, 3, 1, 4, 0), 0, []int{0, 1, 2, 3, 4}},
		{"zigzag_inf", stroke(0, 0, 1, 1, 2, 0, 3, 1, 4, 0), math.Inf(1), []int{0, 4}},
		{"corner", stroke(0, 0, 5, 0.1, 10, 0, 10, 5, 10, 10), 1, []int{0, 2, 4}},
		{"pair", stroke(0, 0, 1, 1), 100, []int{0, 1}},
		{"single", stroke(3, 3), 1, []int{0}},
		// the deviation is measured against the segment, not the line
		{"beyond_end", stroke(0, 0, 10, 0, 14, 0, 4, 0), 3.5, []int{0, 2, 3}},
		// equal deviations: the first one wins
		{"tie", stroke(0, 0, 1, 1, 2, 0, 3, -1, 4, 0), 0.5, []int{0, 1, 3, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]Sample, len(c.src))
			n := Simplify(dst, c.src, c.epsilon)
			if n != len(c.want) {
				t.Fatalf("got %d samples, want %d", n, len(c.want))
			}
			for i, j := range c.want {
				if dst[i] != c.src[j] {
					t.Errorf("sample %d: got %v, want src[%d]", i, dst[i].Pos, j)
				}
			}
		})
	}
}

func TestSimplifySubsequence(t *testing.T) {
	src := wiggle(100)
	for _, eps := range []float64{0, 0.01, 0.5, 2, 10} {
		dst := make([]Sample, len(src))
		n := Simplify(dst, src, eps)
		if dst[0] != src[0] || dst[n-1] != src[len(src)-1] {
			t.Errorf("epsilon %g: end points not kept", eps)
		}
		j := 0
		for i := range n {
			for j < len(src) && src[j] != dst[i] {
				j++
			}
			if j == len(src) {
				t.Fatalf("epsilon %g: output is not a subsequence of the input", eps)
			}
			j++
		}
	}
}

func TestVelocities(t *testing.T) {
	cases := []struct {
		name string
		src  []Sample
		want float64
	}{
		{"unit", []Sample{
			{Pos: vec.Vec2{X: 0, Y: 0}, Time: 0},
			{Pos: vec.Vec2{X: 10, Y: 0}, Time: 1},
		}, 10},
		{"diagonal", []Sample{
			{Pos: vec.Vec2{X: 0, Y: 0}, Time: 2},
			{Pos: vec.Vec2{X: 3, Y: 4}, Time: 2.5},
		}, 10},
		{"equal_time", []Sample{
			{Pos: vec.Vec2{X: 0, Y: 0}, Time: 1},
			{Pos: vec.Vec2{X: 1, Y: 0}, Time: 1},
		}, 1e6},
		{"nan_time", []Sample{
			{Pos: vec.Vec2{X: 0, Y: 0}, Time: math.NaN()},
			{Pos: vec.Vec2{X: 1, Y: 0}, Time: 1},
		}, 1e6},
		{"backwards", []Sample{
			{Pos: vec.Vec2{X: 0, Y: 0}, Time: 1},
			{Pos: vec.Vec2{X: 1, Y: 0}, Time: 0},
		}, 1e6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]float64, 1)
			if n := Velocities(dst, c.src); n != 1 {
				t.Fatalf("got %d values", n)
			}
			if math.Abs(dst[0]-c.want) > 1e-9*c.want {
				t.Errorf("got %g, want %g", dst[0], c.want)
			}
		})
	}
}
