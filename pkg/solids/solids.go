// Package solids builds the five Platonic solids. Several are derived
// from a simpler solid used as scaffolding: the tetrahedron reuses four
// cube corners, the octahedron joins cube face centres, and the
// dodecahedron joins icosahedron face centres.
package solids

import (
	"math"

	"github.com/chazu/manualcad/pkg/geom"
)

// NewHexahedron returns an axis-aligned cube of edge size with one corner
// at the origin. Its 8 corners are shared by the 6 faces.
func NewHexahedron(size float64) *geom.Polyhedron {
	p1 := geom.NewPoint(0, 0, 0)
	p2 := geom.NewPoint(size, 0, 0)
	p3 := geom.NewPoint(size, size, 0)
	p4 := geom.NewPoint(0, size, 0)
	p5 := geom.NewPoint(0, 0, size)
	p6 := geom.NewPoint(size, 0, size)
	p7 := geom.NewPoint(size, size, size)
	p8 := geom.NewPoint(0, size, size)
	return geom.NewPolyhedron(
		geom.NewPolygon(p1, p2, p3, p4), // z = 0
		geom.NewPolygon(p1, p2, p6, p5), // y = 0
		geom.NewPolygon(p2, p3, p7, p6), // x = size
		geom.NewPolygon(p3, p4, p8, p7), // y = size
		geom.NewPolygon(p4, p1, p5, p8), // x = 0
		geom.NewPolygon(p5, p6, p7, p8), // z = size
	)
}

// NewTetrahedron returns the tetrahedron inscribed in a size cube on the
// alternating corners (s,0,0), (0,s,0), (s,s,s), (0,0,s). The corner
// points are the cube's own Point values.
func NewTetrahedron(size float64) *geom.Polyhedron {
	cube := NewHexahedron(size)
	a := cube.Faces[0].Points[1]
	b := cube.Faces[0].Points[3]
	c := cube.Faces[2].Points[2]
	d := cube.Faces[1].Points[3]
	return geom.NewPolyhedron(
		geom.NewPolygon(a, b, c),
		geom.NewPolygon(a, b, d),
		geom.NewPolygon(a, c, d),
		geom.NewPolygon(b, c, d),
	)
}

// NewOctahedron joins the six face centres of a size cube. The centres
// are new points, not shared with the cube.
func NewOctahedron(size float64) *geom.Polyhedron {
	cube := NewHexahedron(size)
	var c [6]*geom.Point
	for i, f := range cube.Faces {
		v := f.Center()
		c[i] = geom.NewPoint(v.X, v.Y, v.Z)
	}
	return geom.NewPolyhedron(
		geom.NewPolygon(c[0], c[1], c[2]),
		geom.NewPolygon(c[0], c[2], c[3]),
		geom.NewPolygon(c[0], c[4], c[3]),
		geom.NewPolygon(c[0], c[1], c[4]),
		geom.NewPolygon(c[1], c[2], c[5]),
		geom.NewPolygon(c[4], c[3], c[5]),
		geom.NewPolygon(c[2], c[3], c[5]),
		geom.NewPolygon(c[1], c[4], c[5]),
	)
}

// NewIcosahedron stitches two pentagonal rings of radius size, at
// z = -size/2 and z = +size/2 and rotated 36° apart, with an apex beyond
// each ring. Faces come in four bands of five: bottom cap, lower band,
// upper band, top cap.
func NewIcosahedron(size float64) *geom.Polyhedron {
	r := size
	var bottom, top [5]*geom.Point
	for i := 0; i < 5; i++ {
		a := 2 * math.Pi * float64(i) / 5
		bottom[i] = geom.NewPoint(r*math.Cos(a), r*math.Sin(a), -r/2)
		a += math.Pi / 5
		top[i] = geom.NewPoint(r*math.Cos(a), r*math.Sin(a), r/2)
	}

	bc := geom.NewPolygon(bottom[:]...).Center()
	tc := geom.NewPolygon(top[:]...).Center()
	bottomApex := geom.NewPoint(bc.X, bc.Y, bc.Z-r/2)
	topApex := geom.NewPoint(tc.X, tc.Y, tc.Z+r/2)

	faces := make([]*geom.Polygon, 0, 20)
	for i := 0; i < 5; i++ {
		faces = append(faces, geom.NewPolygon(bottom[i], bottomApex, bottom[(i+1)%5]))
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, geom.NewPolygon(bottom[i], top[i], bottom[(i+1)%5]))
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, geom.NewPolygon(top[i], top[(i+1)%5], bottom[(i+1)%5]))
	}
	for i := 0; i < 5; i++ {
		faces = append(faces, geom.NewPolygon(top[i], topApex, top[(i+1)%5]))
	}
	return geom.NewPolyhedron(faces...)
}

// dodecahedronFaces groups the icosahedron's 20 face centres into the 12
// pentagons of the dual. Each row is the ring of faces around one
// icosahedron vertex, in order; any other order self-intersects.
var dodecahedronFaces = [12][5]int{
	{0, 1, 2, 3, 4},
	{0, 4, 9, 14, 5},
	{0, 5, 10, 6, 1},
	{1, 2, 7, 11, 6},
	{2, 3, 8, 12, 7},
	{3, 8, 13, 9, 4},
	{5, 14, 19, 15, 10},
	{6, 11, 16, 15, 10},
	{7, 12, 17, 16, 11},
	{8, 13, 18, 17, 12},
	{9, 14, 19, 18, 13},
	{15, 16, 17, 18, 19},
}

// NewDodecahedron uses the face centres of a size icosahedron as its 20
// vertices.
func NewDodecahedron(size float64) *geom.Polyhedron {
	ico := NewIcosahedron(size)
	verts := make([]*geom.Point, len(ico.Faces))
	for i, f := range ico.Faces {
		v := f.Center()
		verts[i] = geom.NewPoint(v.X, v.Y, v.Z)
	}

	faces := make([]*geom.Polygon, 0, len(dodecahedronFaces))
	for _, row := range dodecahedronFaces {
		pts := make([]*geom.Point, len(row))
		for j, idx := range row {
			pts[j] = verts[idx]
		}
		faces = append(faces, geom.NewPolygon(pts...))
	}
	return geom.NewPolyhedron(faces...)
}
