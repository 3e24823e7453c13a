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

import "seehuhn.de/go/geom/vec"

// Hit returns the index of the first segment which covers p, or -1 if
// there is none. A segment covers the points whose distance from the
// segment is at most half its thickness plus slop.
func Hit(segs []Segment, p vec.Vec2, slop float64) int {
	for i := range segs {
		s := &segs[i]
		r := 0.5*s.Thickness + slop
		if r < 0 {
			continue
		}
		if distToSegment2(p, s.A, s.B) <= r*r {
			return i
		}
	}
	return -1
}
