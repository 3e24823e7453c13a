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
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/calligraphy/internal/trig"
)

// ErrInvalid is returned (wrapped) by the Validate methods.
var ErrInvalid = errors.New("invalid parameter")

// Pen describes a broad calligraphy nib.
//
// A stroke drawn across the nib is thick and a stroke drawn along the nib
// is thin. Thickness varies between 35% and 125% of Width·NibWidth as the
// direction changes, and is further scaled by pressure.
type Pen struct {
	// Width is the nominal stroke width. Must be positive.
	Width float64

	// Opacity is multiplied with pressure to give vertex alpha values.
	// Segment alpha values use Opacity alone. Results are clamped to [0, 1].
	Opacity float64

	// NibAngle is the orientation of the nib in degrees,
	// measured from the positive x-axis towards the positive y-axis.
	NibAngle float64

	// NibWidth scales the width of the nib.
	// It is clamped to the range [0.3, 2.5].
	NibWidth float64
}

// DefaultPen returns a pen with a nib held at 45°.
func DefaultPen() Pen {
	return Pen{
		Width:    6,
		Opacity:  1,
		NibAngle: 45,
		NibWidth: 1,
	}
}

// Validate checks that the pen parameters are usable.
// The stroke functions do not call Validate.
func (p *Pen) Validate() error {
	switch {
	case !finite(p.Width) || p.Width <= 0:
		return fmt.Errorf("pen width %g: %w", p.Width, ErrInvalid)
	case !finite(p.Opacity):
		return fmt.Errorf("pen opacity %g: %w", p.Opacity, ErrInvalid)
	case !finite(p.NibAngle):
		return fmt.Errorf("nib angle %g: %w", p.NibAngle, ErrInvalid)
	case !finite(p.NibWidth):
		return fmt.Errorf("nib width %g: %w", p.NibWidth, ErrInvalid)
	}
	return nil
}

// Segments converts a stroke into one [Segment] per pair of consecutive
// samples. Pairs of (nearly) coincident samples are skipped and do not
// use up space in dst.
func (p *Pen) Segments(dst []Segment, src []Sample) int {
	if len(src) < 2 {
		return 0
	}

	w := newWriter(dst)
	nb := p.nib()
	alpha := unitClamp(p.Opacity)
	for s := range spans(src) {
		seg := Segment{
			A:         s.A,
			B:         s.B,
			Thickness: nb.thickness(s.T, s.Pressure),
			Alpha:     alpha,
		}
		if !w.put(seg) {
			break
		}
	}
	return w.finish("segments", len(src)-1)
}

// nib holds the per-call constants of the thickness model.
type nib struct {
	dir  vec.Vec2 // unit vector along the nib
	base float64  // Width times the clamped nib width factor
}

func (p *Pen) nib() nib {
	if trig.Init() {
		Logger().Debug("trig table initialized", slog.Int("entries", trig.TableSize))
	}
	sin, cos := trig.Sincos(p.NibAngle * math.Pi / 180)
	return nib{
		dir:  vec.Vec2{X: cos, Y: sin},
		base: p.Width * clamp(p.NibWidth, minNibWidth, maxNibWidth),
	}
}

// thickness returns the full stroke width for a segment with unit
// tangent t and mean pressure.
func (n nib) thickness(t vec.Vec2, pressure float64) float64 {
	th := n.base * (thicknessOffset + thicknessRange*math.Abs(cross(t, n.dir))) * pressure
	if !(th >= MinThickness) { // also catches NaN
		return MinThickness
	}
	return th
}

// span is a non-degenerate piece of a stroke.
type span struct {
	A, B     vec.Vec2 // endpoints
	T        vec.Vec2 // unit tangent (A→B direction)
	N        vec.Vec2 // unit normal (90° CCW from T)
	Pressure float64  // mean pressure of A and B
}

// spans iterates over the pieces between consecutive samples,
// skipping pieces which are too short to have a direction.
func spans(src []Sample) iter.Seq[span] {
	return func(yield func(span) bool) {
		for i := 1; i < len(src); i++ {
			a, b := &src[i-1], &src[i]
			d := b.Pos.Sub(a.Pos)
			l2 := d.X*d.X + d.Y*d.Y
			if l2 < zeroLengthThreshold {
				continue
			}
			t := unit(d)
			s := span{
				A:        a.Pos,
				B:        b.Pos,
				T:        t,
				N:        normal(t),
				Pressure: (a.Pressure + b.Pressure) * 0.5,
			}
			if !yield(s) {
				return
			}
		}
	}
}

// unitClamp limits x to [0, 1], mapping NaN to 0.
func unitClamp(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}
