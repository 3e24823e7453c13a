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

// Command genpdf draws the meshes of all example strokes into PDF files
// for visual inspection, and optionally renders them to PNG using
// Ghostscript.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/calligraphy"
	"seehuhn.de/go/calligraphy/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	png := flag.Bool("png", false, "also render PNG files using Ghostscript")
	outline := flag.Bool("outline", false, "outline the mesh triangles")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	var mesh calligraphy.Mesh
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			mesh.Build(&tc.Pen, tc.Points)
			if err := generatePDF(tc, &mesh, pdfPath, *outline); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if *png {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.Case, m *calligraphy.Mesh, pdfPath string, outline bool) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray levels show the vertex alpha
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; strokes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// All vertices of a triangle share the alpha of their segment.
	for i, tri := range m.Triangles() {
		alpha := m.Vertices[m.Indices[3*i]].Alpha
		page.SetFillColor(color.DeviceGray(alpha))
		page.MoveTo(tri[0].X, tri[0].Y)
		page.LineTo(tri[1].X, tri[1].Y)
		page.LineTo(tri[2].X, tri[2].Y)
		page.ClosePath()
		page.Fill()
	}

	if outline && len(m.Indices) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.1)
		drawPath(page, m.Path())
		page.Stroke()
	}

	// centreline of the raw input
	if len(tc.Points) > 1 {
		page.SetStrokeColor(color.DeviceGray(0.25))
		page.SetLineWidth(0.25)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		page.MoveTo(tc.Points[0].Pos.X, tc.Points[0].Pos.Y)
		for _, s := range tc.Points[1:] {
			page.LineTo(s.Pos.X, s.Pos.Y)
		}
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the subset of the page methods needed by drawPath.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

// drawPath adds the line segments of p to the current path.
func drawPath(page pathBuilder, p *path.Data) {
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdLineTo:
			page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
			coordIdx++
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
