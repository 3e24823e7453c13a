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
	"log/slog"
	"slices"
)

// Pipeline applies a sequence of filters to a stroke.
//
// The stages run in this order, each one optional: the One Euro filter,
// smoothing, resampling, and simplification. Create one instance and
// reuse it for many strokes; scratch buffers grow as needed but never
// shrink.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	// OneEuro enables the One Euro filter, if not nil.
	OneEuro *OneEuro

	// Smoothing is the factor passed to [Smooth].
	// Smoothing is skipped if this is not positive.
	Smoothing float64

	// SmoothingPasses is the number of times [Smooth] is applied.
	SmoothingPasses int

	// Spacing is the minimum distance for [Resample].
	// Resampling is skipped if this is not positive.
	Spacing float64

	// Epsilon is the tolerance for [Simplify].
	// Simplification is skipped if this is negative.
	Epsilon float64

	buf [2][]Sample
}

// NewPipeline returns a pipeline with moderate smoothing, resampling at
// two units, and simplification with a quarter unit tolerance.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Smoothing:       0.5,
		SmoothingPasses: 1,
		Spacing:         2,
		Epsilon:         0.25,
	}
}

// Validate checks that the pipeline parameters are usable.
func (p *Pipeline) Validate() error {
	if f := p.OneEuro; f != nil {
		switch {
		case !finite(f.MinCutoff) || f.MinCutoff <= 0:
			return fmt.Errorf("one euro min cutoff %g: %w", f.MinCutoff, ErrInvalid)
		case !finite(f.Beta) || f.Beta < 0:
			return fmt.Errorf("one euro beta %g: %w", f.Beta, ErrInvalid)
		case !finite(f.DCutoff) || f.DCutoff <= 0:
			return fmt.Errorf("one euro derivative cutoff %g: %w", f.DCutoff, ErrInvalid)
		}
	}
	switch {
	case !finite(p.Smoothing):
		return fmt.Errorf("smoothing %g: %w", p.Smoothing, ErrInvalid)
	case p.SmoothingPasses < 0:
		return fmt.Errorf("smoothing passes %d: %w", p.SmoothingPasses, ErrInvalid)
	case !finite(p.Spacing):
		return fmt.Errorf("spacing %g: %w", p.Spacing, ErrInvalid)
	case !finite(p.Epsilon):
		return fmt.Errorf("epsilon %g: %w", p.Epsilon, ErrInvalid)
	}
	return nil
}

// Run filters src and writes the result to dst.
// The return value is the number of samples written to dst.
func (p *Pipeline) Run(dst, src []Sample) int {
	cur := src
	next := 0
	apply := func(stage func(out, in []Sample) int) {
		p.buf[next] = slices.Grow(p.buf[next][:0], len(cur))[:len(cur)]
		out := p.buf[next]
		cur = out[:stage(out, cur)]
		next ^= 1
	}

	if p.OneEuro != nil {
		f := *p.OneEuro
		apply(f.Filter)
	}
	if p.Smoothing > 0 {
		for range p.SmoothingPasses {
			apply(func(out, in []Sample) int { return Smooth(out, in, p.Smoothing) })
		}
	}
	if p.Spacing > 0 {
		apply(func(out, in []Sample) int { return Resample(out, in, p.Spacing) })
	}
	if p.Epsilon >= 0 {
		apply(func(out, in []Sample) int { return Simplify(out, in, p.Epsilon) })
	}

	n := copy(dst, cur)
	if n < len(cur) {
		logTruncated("pipeline", len(dst), len(src))
	}
	Logger().Debug("pipeline",
		slog.Int("input", len(src)),
		slog.Int("filtered", len(cur)),
		slog.Int("output", n))
	return n
}
