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

// Command export writes the example strokes, together with the segments
// and meshes built from them, to a file for use by other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/term"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/testcases"
)

func main() {
	format := flag.String("format", "json", "output format (json or cbor)")
	out := flag.String("out", "testdata/testcases.json", "output file, or - for stdout")
	flag.Parse()

	if err := run(*format, *out); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
}

func run(format, out string) error {
	var data struct {
		TestCases []jsonTestCase `json:"testcases" cbor:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			data.TestCases = append(data.TestCases, toJSON(category, tc))
		}
	}

	var w io.Writer
	if out == "-" {
		if format == "cbor" && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write CBOR to a terminal")
		}
		w = os.Stdout
	} else {
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "cbor":
		enc, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return err
		}
		buf, err := enc.Marshal(data)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name" cbor:"name"`
	Width    int           `json:"width" cbor:"width"`
	Height   int           `json:"height" cbor:"height"`
	Pen      jsonPen       `json:"pen" cbor:"pen"`
	Samples  [][]float64   `json:"samples" cbor:"samples"`
	Segments []jsonSegment `json:"segments" cbor:"segments"`
	Vertices [][]float64   `json:"vertices" cbor:"vertices"`
	Indices  []uint32      `json:"indices" cbor:"indices"`
}

type jsonPen struct {
	Width    float64 `json:"width" cbor:"width"`
	Opacity  float64 `json:"opacity" cbor:"opacity"`
	NibAngle float64 `json:"nib_angle" cbor:"nib_angle"`
	NibWidth float64 `json:"nib_width" cbor:"nib_width"`
}

type jsonSegment struct {
	A         []float64 `json:"a" cbor:"a"`
	B         []float64 `json:"b" cbor:"b"`
	Thickness float64   `json:"thickness" cbor:"thickness"`
	Alpha     float64   `json:"alpha" cbor:"alpha"`
}

func toJSON(category string, tc testcases.Case) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Pen: jsonPen{
			Width:    tc.Pen.Width,
			Opacity:  tc.Pen.Opacity,
			NibAngle: tc.Pen.NibAngle,
			NibWidth: tc.Pen.NibWidth,
		},
	}

	// samples are stored as x, y, pressure, time, tilt x, tilt y
	for _, s := range tc.Points {
		jtc.Samples = append(jtc.Samples,
			[]float64{s.Pos.X, s.Pos.Y, s.Pressure, s.Time, s.Tilt.X, s.Tilt.Y})
	}

	segs := make([]calligraphy.Segment, max(len(tc.Points)-1, 0))
	segs = segs[:tc.Pen.Segments(segs, tc.Points)]
	for _, s := range segs {
		jtc.Segments = append(jtc.Segments, jsonSegment{
			A:         []float64{s.A.X, s.A.Y},
			B:         []float64{s.B.X, s.B.Y},
			Thickness: s.Thickness,
			Alpha:     s.Alpha,
		})
	}

	var m calligraphy.Mesh
	m.Build(&tc.Pen, tc.Points)
	for _, v := range m.Vertices {
		jtc.Vertices = append(jtc.Vertices, []float64{v.Pos.X, v.Pos.Y, v.Alpha})
	}
	jtc.Indices = m.Indices
	return jtc
}
