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

package testcases

import "seehuhn.de/go/calligraphy"

var pressureCases = []Case{
	{
		Name:   "ramp",
		Points: line(10, 32, 118, 32, 54, func(t float64) float64 { return t }),
		Pen:    pen(10, 90),
		Width:  128,
		Height: 64,
	},
	{
		// press in the middle, lift at both ends
		Name: "taper",
		Points: cubic(pt(10, 50), pt(40, 4), pt(88, 60), pt(118, 14), 60, func(t float64) float64 {
			return 4 * t * (1 - t)
		}),
		Pen:    pen(10, 45),
		Width:  128,
		Height: 64,
	},
	{
		// all thicknesses fall back to the minimum
		Name:   "zero_pressure",
		Points: line(10, 32, 54, 32, 22, constant(0)),
		Pen:    pen(8, 0),
		Width:  64,
		Height: 64,
	},
	{
		// pressure values outside [0, 1] are used as given
		Name:   "over_pressure",
		Points: line(10, 32, 54, 32, 22, constant(1.5)),
		Pen:    pen(6, 30),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "translucent",
		Points: line(10, 10, 54, 54, 22, func(t float64) float64 { return 1 - 0.5*t }),
		Pen: calligraphy.Pen{
			Width:    8,
			Opacity:  0.4,
			NibAngle: 0,
			NibWidth: 1,
		},
		Width:  64,
		Height: 64,
	},
}
