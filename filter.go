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

// Smooth moves every interior sample towards the midpoint of its two
// neighbours. The factor is clamped to [0, 1], with NaN treated as 0:
// 0 leaves the stroke unchanged, 1 replaces each interior position and
// pressure by the neighbour average. The first and last samples are copied unchanged,
// and time and tilt are never modified.
//
// Inputs with fewer than three samples are copied as they are.
func Smooth(dst, src []Sample, factor float64) int {
	w := newWriter(dst)
	n := len(src)
	if n < 3 {
		for _, s := range src {
			if !w.put(s) {
				break
			}
		}
		return w.finish("smooth", n)
	}

	f := unitClamp(factor)
	g := 1 - f

	w.put(src[0])
	for i := 1; i < n-1 && !w.full(); i++ {
		prev, cur, next := &src[i-1], &src[i], &src[i+1]
		out := *cur
		out.Pos = prev.Pos.Add(next.Pos).Mul(0.5 * f).Add(cur.Pos.Mul(g))
		out.Pressure = f*(prev.Pressure+next.Pressure)*0.5 + g*cur.Pressure
		w.put(out)
	}
	w.put(src[n-1])
	return w.finish("smooth", n)
}

// Resample thins out the stroke so that consecutive samples are at least
// spacing apart. The first sample is always kept. A later sample is kept
// if its distance from the previously kept sample is at least spacing.
// The last input sample is always appended, so the final piece of the
// stroke may be shorter than spacing.
//
// If dst fills up before the walk reaches the end of src, the output
// is the prefix of the full result that fits, and the last input sample
// is not included.
func Resample(dst, src []Sample, spacing float64) int {
	w := newWriter(dst)
	n := len(src)
	if n == 0 {
		return 0
	}

	spacing2 := spacing * spacing
	last := 0
	if w.put(src[0]) {
		for i := 1; i < n; i++ {
			if dist2(src[last].Pos, src[i].Pos) < spacing2 {
				continue
			}
			if !w.put(src[i]) {
				break
			}
			last = i
		}
		if last != n-1 {
			w.put(src[n-1])
		}
	}
	return w.finish("resample", n)
}

// Simplify removes samples using the Ramer–Douglas–Peucker algorithm.
// Between two kept samples, the sample furthest from the segment
// joining them is kept if its distance exceeds epsilon, and the procedure
// is repeated on both halves. Otherwise all samples in between are
// dropped. The first and last samples are always kept, and the order of
// samples is preserved.
func Simplify(dst, src []Sample, epsilon float64) int {
	w := newWriter(dst)
	n := len(src)
	if n <= 2 || len(dst) == 0 {
		for _, s := range src {
			if !w.put(s) {
				break
			}
		}
		return w.finish("simplify", n)
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true
	simplifyRange(src, 0, n-1, epsilon*epsilon, keep)

	for i, k := range keep {
		if k && !w.put(src[i]) {
			break
		}
	}
	return w.finish("simplify", n)
}

// simplifyRange marks the samples to keep strictly between s and e.
// Ties are resolved in favour of the first sample found.
func simplifyRange(pts []Sample, s, e int, eps2 float64, keep []bool) {
	if e <= s+1 {
		return
	}
	a, b := pts[s].Pos, pts[e].Pos

	idx := -1
	maxDist := 0.0
	for i := s + 1; i < e; i++ {
		d := distToSegment2(pts[i].Pos, a, b)
		if d > maxDist {
			maxDist = d
			idx = i
		}
	}
	if idx < 0 || !(maxDist > eps2) {
		return
	}

	keep[idx] = true
	simplifyRange(pts, s, idx, eps2, keep)
	simplifyRange(pts, idx, e, eps2, keep)
}

// Velocities computes the speed between consecutive samples, in
// coordinate units per time unit. Entry i of the output belongs to the
// pair src[i], src[i+1]. Time differences below 1e-6, including
// negative and NaN ones, are replaced by 1e-6.
func Velocities(dst []float64, src []Sample) int {
	w := newWriter(dst)
	for i := 1; i < len(src); i++ {
		a, b := &src[i-1], &src[i]
		d := b.Pos.Sub(a.Pos).Length()
		dt := timeStep(a.Time, b.Time)
		if !w.put(d / dt) {
			break
		}
	}
	return w.finish("velocity", len(src))
}

// timeStep returns t1 - t0, floored at minTimeStep.
// NaN differences are replaced by minTimeStep as well.
func timeStep(t0, t1 float64) float64 {
	dt := t1 - t0
	if !(dt >= minTimeStep) {
		return minTimeStep
	}
	return dt
}
