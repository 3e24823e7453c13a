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

// Package trig provides table-based sine and cosine.
//
// The table has one entry per 0.1° of arc. Lookups truncate the angle to
// the table resolution, so results can be off by up to about 1.7e-3.
// Use the math package where exact values are needed; this package is
// meant for per-segment loops where the nib direction is recomputed often.
package trig

import (
	"math"
	"sync"
)

// TableSize is the number of table entries covering one full turn.
const TableSize = 3600

var (
	once     sync.Once
	sinTable [TableSize]float64
	cosTable [TableSize]float64
)

// Init fills the lookup tables. It is called implicitly by the lookup
// functions, and calling it again has no effect. The return value
// reports whether this call built the tables.
//
// Init is safe for concurrent use.
func Init() (built bool) {
	once.Do(func() {
		for i := range TableSize {
			angle := float64(i) * math.Pi / (TableSize / 2.0)
			sinTable[i], cosTable[i] = math.Sincos(angle)
		}
		built = true
	})
	return built
}

// Index maps an angle in radians to its table slot.
// Non-finite angles map to slot 0.
func Index(rad float64) int {
	x := rad * TableSize / (2 * math.Pi)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	// Reduce before converting, so that huge angles cannot overflow int.
	i := int(math.Mod(math.Trunc(x), TableSize))
	if i < 0 {
		i += TableSize
	}
	return i
}

// Sin returns the tabulated sine of rad.
func Sin(rad float64) float64 {
	Init()
	return sinTable[Index(rad)]
}

// Cos returns the tabulated cosine of rad.
func Cos(rad float64) float64 {
	Init()
	return cosTable[Index(rad)]
}

// Sincos returns Sin(rad), Cos(rad) using a single table index.
func Sincos(rad float64) (sin, cos float64) {
	Init()
	i := Index(rad)
	return sinTable[i], cosTable[i]
}
