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

var degenerateCases = []Case{
	{
		Name:   "single_point",
		Points: polyline(1, pt(32, 32)),
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "coincident_pair",
		Points: polyline(1, pt(32, 32), pt(32, 32)),
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name: "repeated_points",
		Points: polyline(0.8,
			pt(10, 32), pt(10, 32), pt(20, 32), pt(20, 32), pt(20, 32),
			pt(32, 20), pt(44, 32), pt(44, 32), pt(54, 32)),
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name: "equal_timestamps",
		Points: []calligraphy.Sample{
			{Pos: pt(10, 32), Pressure: 1},
			{Pos: pt(30, 32), Pressure: 1},
			{Pos: pt(54, 32), Pressure: 1},
		},
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name: "backwards_time",
		Points: []calligraphy.Sample{
			{Pos: pt(10, 10), Pressure: 1, Time: 0.3},
			{Pos: pt(32, 32), Pressure: 1, Time: 0.2},
			{Pos: pt(54, 54), Pressure: 1, Time: 0.1},
		},
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
}
