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

var lineCases = []Case{
	{
		Name:   "horizontal",
		Points: line(10, 32, 54, 32, 22, constant(0.8)),
		Pen:    pen(8, 0),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "vertical",
		Points: line(32, 10, 32, 54, 22, constant(0.8)),
		Pen:    pen(8, 0),
		Width:  64,
		Height: 64,
	},
	{
		// drawn along the nib: thinnest possible stroke
		Name:   "along_nib",
		Points: line(12, 12, 52, 52, 20, constant(1)),
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		// drawn across the nib: thickest possible stroke
		Name:   "across_nib",
		Points: line(12, 52, 52, 12, 20, constant(1)),
		Pen:    pen(8, 45),
		Width:  64,
		Height: 64,
	},
	{
		Name:   "wide_nib",
		Points: line(10, 32, 54, 32, 11, constant(1)),
		Pen: calligraphy.Pen{
			Width:    8,
			Opacity:  0.7,
			NibAngle: 90,
			NibWidth: 2.5,
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "zigzag",
		Points: polyline(0.9, pt(8, 40), pt(20, 20), pt(32, 40), pt(44, 20), pt(56, 40)),
		Pen:    pen(6, 30),
		Width:  64,
		Height: 64,
	},
}
