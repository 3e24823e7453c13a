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
	"log/slog"

	"golang.org/x/exp/constraints"
)

// writer fills a caller-supplied slice from the front.
// Once the slice is full, further elements are rejected and the
// writer remembers that the output was truncated.
type writer[T any] struct {
	buf       []T
	n         int
	truncated bool
}

func newWriter[T any](buf []T) writer[T] {
	return writer[T]{buf: buf}
}

// put stores v and reports whether there was room for it.
func (w *writer[T]) put(v T) bool {
	if w.n >= len(w.buf) {
		w.truncated = true
		return false
	}
	w.buf[w.n] = v
	w.n++
	return true
}

// full reports whether no more elements can be stored.
func (w *writer[T]) full() bool {
	return w.n >= len(w.buf)
}

// finish returns the number of elements written.
// Truncated output is logged at debug level.
func (w *writer[T]) finish(stage string, input int) int {
	if w.truncated {
		logTruncated(stage, len(w.buf), input)
	}
	return w.n
}

func logTruncated(stage string, capacity, input int) {
	Logger().Debug("output truncated",
		slog.String("stage", stage),
		slog.Int("capacity", capacity),
		slog.Int("input", input))
}

// clamp limits x to the interval [lo, hi].
// NaN values are passed through.
func clamp[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
