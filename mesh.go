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
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mesh converts a stroke into a triangle mesh with the thickness model of
// [Pen.Segments].
//
// Every non-degenerate segment becomes a quad of four vertices: the start
// point offset to the left and to the right of the segment (in this
// order), followed by the same two offsets of the end point. Left means
// the direction of the clockwise normal. The quad is covered by the two
// triangles (0, 2, 1) and (1, 2, 3) relative to the first vertex of the
// quad, so all triangles have the same orientation. All four vertices
// carry the alpha value Opacity·pressure, clamped to [0, 1].
//
// The return values are the number of vertices and indices written.
// Segments are emitted completely or not at all: the first segment which
// does not fit into either buffer ends the mesh. At least 4 vertices and
// 6 indices of space are needed for any output.
func (p *Pen) Mesh(vertices []Vertex, indices []uint32, src []Sample) (nv, ni int) {
	if len(src) < 2 {
		return 0, 0
	}

	nb := p.nib()
	for s := range spans(src) {
		if nv+4 > len(vertices) || ni+6 > len(indices) {
			logTruncated("mesh", min(len(vertices)/4, len(indices)/6), len(src)-1)
			break
		}

		d := 0.5 * nb.thickness(s.T, s.Pressure) // half-width
		off := s.N.Mul(d)
		alpha := unitClamp(p.Opacity * s.Pressure)

		vertices[nv+0] = Vertex{Pos: s.A.Sub(off), Alpha: alpha}
		vertices[nv+1] = Vertex{Pos: s.A.Add(off), Alpha: alpha}
		vertices[nv+2] = Vertex{Pos: s.B.Sub(off), Alpha: alpha}
		vertices[nv+3] = Vertex{Pos: s.B.Add(off), Alpha: alpha}

		base := uint32(nv)
		indices[ni+0] = base + 0
		indices[ni+1] = base + 2
		indices[ni+2] = base + 1
		indices[ni+3] = base + 1
		indices[ni+4] = base + 2
		indices[ni+5] = base + 3

		nv += 4
		ni += 6
	}
	return nv, ni
}

// Mesh holds a triangle mesh built by [Pen.Mesh].
//
// The buffers are reused by subsequent calls to Build. They grow as needed
// but never shrink, so that building meshes of similar size repeatedly
// does not allocate.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Build replaces the contents of m by the mesh for src.
func (m *Mesh) Build(p *Pen, src []Sample) {
	segs := max(len(src)-1, 0)
	m.Vertices = slices.Grow(m.Vertices[:0], 4*segs)[:4*segs]
	m.Indices = slices.Grow(m.Indices[:0], 6*segs)[:6*segs]
	nv, ni := p.Mesh(m.Vertices, m.Indices, src)
	m.Vertices = m.Vertices[:nv]
	m.Indices = m.Indices[:ni]
}

// Bounds returns the smallest rectangle containing all vertices.
// The zero rectangle is returned for an empty mesh.
func (m *Mesh) Bounds() rect.Rect {
	if len(m.Vertices) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, v := range m.Vertices {
		b.LLx = min(b.LLx, v.Pos.X)
		b.LLy = min(b.LLy, v.Pos.Y)
		b.URx = max(b.URx, v.Pos.X)
		b.URy = max(b.URy, v.Pos.Y)
	}
	return b
}

// Path returns the triangles of the mesh as closed subpaths.
func (m *Mesh) Path() *path.Data {
	p := &path.Data{}
	for _, tri := range m.Triangles() {
		p = p.MoveTo(tri[0]).LineTo(tri[1]).LineTo(tri[2]).Close()
	}
	return p
}

// Triangles iterates over the triangles of the mesh.
// The first value is the index of the triangle.
func (m *Mesh) Triangles() iter.Seq2[int, [3]vec.Vec2] {
	return func(yield func(int, [3]vec.Vec2) bool) {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			tri := [3]vec.Vec2{
				m.Vertices[m.Indices[i]].Pos,
				m.Vertices[m.Indices[i+1]].Pos,
				m.Vertices[m.Indices[i+2]].Pos,
			}
			if !yield(i/3, tri) {
				return
			}
		}
	}
}

// AppendVertexData appends the vertices of m to dst as interleaved
// float32 values x, y, alpha, ready for upload to a vertex buffer.
func (m *Mesh) AppendVertexData(dst []float32) []float32 {
	dst = slices.Grow(dst, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		dst = append(dst, float32(v.Pos.X), float32(v.Pos.Y), float32(v.Alpha))
	}
	return dst
}
