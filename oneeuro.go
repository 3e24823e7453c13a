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

import "math"

// OneEuro is the "1€ filter" of Casiez, Roussel and Vogel (CHI 2012):
// an adaptive low-pass filter whose cutoff frequency rises with speed.
// Slow movements are smoothed strongly, which removes jitter, while fast
// movements are followed with little lag.
//
// Frequencies are measured per unit of time of the sample timestamps;
// with timestamps in seconds they are in Hz.
type OneEuro struct {
	// MinCutoff is the cutoff frequency at zero speed.
	MinCutoff float64

	// Beta controls how fast the cutoff frequency grows with speed.
	Beta float64

	// DCutoff is the cutoff frequency used to smooth the speed estimate.
	DCutoff float64
}

// DefaultOneEuro returns filter parameters which work well for pointer
// input with timestamps in seconds.
func DefaultOneEuro() OneEuro {
	return OneEuro{MinCutoff: 1, Beta: 0.007, DCutoff: 1}
}

// minCutoff keeps the smoothing factor finite for non-positive cutoffs.
const minCutoff = 1e-9

// euroState is the filter state for one coordinate.
type euroState struct {
	x  float64 // filtered value
	dx float64 // filtered derivative
}

// Filter applies the filter to the positions and pressures of src.
// Each coordinate is filtered independently. The first sample is copied
// unchanged; time and tilt are never modified.
//
// The filter state lives only for the duration of the call.
func (f OneEuro) Filter(dst, src []Sample) int {
	w := newWriter(dst)
	n := len(src)
	if n == 0 {
		return 0
	}

	if w.put(src[0]) {
		st := [3]euroState{
			{x: src[0].Pos.X},
			{x: src[0].Pos.Y},
			{x: src[0].Pressure},
		}
		for i := 1; i < n; i++ {
			s := src[i]
			dt := timeStep(src[i-1].Time, s.Time)
			s.Pos.X = f.step(&st[0], s.Pos.X, dt)
			s.Pos.Y = f.step(&st[1], s.Pos.Y, dt)
			s.Pressure = f.step(&st[2], s.Pressure, dt)
			if !w.put(s) {
				break
			}
		}
	}
	return w.finish("one euro", n)
}

func (f OneEuro) step(st *euroState, v, dt float64) float64 {
	dx := (v - st.x) / dt
	st.dx += smoothingFactor(f.DCutoff, dt) * (dx - st.dx)
	cutoff := f.MinCutoff + f.Beta*math.Abs(st.dx)
	st.x += smoothingFactor(cutoff, dt) * (v - st.x)
	return st.x
}

// smoothingFactor returns the weight of a new value in an exponential
// low-pass filter with the given cutoff frequency.
func smoothingFactor(cutoff, dt float64) float64 {
	tau := 1 / (2 * math.Pi * max(cutoff, minCutoff))
	return 1 / (1 + tau/dt)
}
