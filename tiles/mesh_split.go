package tiles

// A SplitResult holds both halves of a split mesh.
type SplitResult struct {
	// Left contains geometry with axis coordinates less than the plane.
	Left *Mesh

	// Right contains geometry with axis coordinates greater than or equal
	// to the plane.
	Right *Mesh

	// Straddled is the number of input faces that crossed the plane.
	Straddled int
}

// SplitMesh is a convenience wrapper around Mesh.Split.
func SplitMesh(m *Mesh, axis Axis, threshold float64) *SplitResult {
	left, right, count := m.Split(Plane{Axis: axis, Coord: threshold})
	return &SplitResult{Left: left, Right: right, Straddled: count}
}

// Split cuts the mesh along an axis-aligned plane, dividing triangles that
// cross the plane so that both halves share the exact same seam vertices.
//
// A vertex belongs to the left half if its coordinate is strictly less than
// the plane; vertices on the plane belong to the right half.
//
// The returned count is the number of faces that crossed the plane.
func (m *Mesh) Split(p Plane) (left, right *Mesh, straddled int) {
	s := &splitter{
		plane:      p,
		leftIndex:  newVertexIndex(len(m.vertices)),
		rightIndex: newVertexIndex(len(m.vertices)),
		leftFaces:  make([]Face, 0, len(m.faces)),
		rightFaces: make([]Face, 0, len(m.faces)),
	}
	for i := range m.faces {
		if s.splitFace(&m.faces[i]) {
			straddled++
		}
	}

	name := m.DisplayName() + "-" + p.Axis.String()
	left = &Mesh{
		Name:     name + "L",
		vertices: s.leftIndex.Vertices(),
		faces:    s.leftFaces,
	}
	right = &Mesh{
		Name:     name + "R",
		vertices: s.rightIndex.Vertices(),
		faces:    s.rightFaces,
	}
	return
}

type sideClass int

const (
	allLeft sideClass = iota
	allRight
	pivotLeft
	pivotRight
)

// A triangleClass describes how a face lies relative to a plane.
//
// For pivotLeft and pivotRight, Pivot is the corner which is alone on its
// side.
type triangleClass struct {
	Side  sideClass
	Pivot int
}

func classifyTriangle(left [3]bool) triangleClass {
	var numLeft int
	for _, l := range left {
		if l {
			numLeft++
		}
	}
	switch numLeft {
	case 3:
		return triangleClass{Side: allLeft}
	case 0:
		return triangleClass{Side: allRight}
	case 1:
		for i, l := range left {
			if l {
				return triangleClass{Side: pivotLeft, Pivot: i}
			}
		}
	case 2:
		for i, l := range left {
			if !l {
				return triangleClass{Side: pivotRight, Pivot: i}
			}
		}
	}
	panic("unreachable")
}

type splitter struct {
	plane Plane

	leftIndex  *vertexIndex
	rightIndex *vertexIndex
	leftFaces  []Face
	rightFaces []Face
}

// splitFace routes one face to the appropriate halves, returning true if
// the face straddled the plane.
func (s *splitter) splitFace(f *Face) bool {
	var left [3]bool
	for i, p := range f.Points {
		left[i] = s.plane.Left(p)
	}
	class := classifyTriangle(left)

	// Corners in their original cyclic order, starting at the pivot.
	p := f.Points
	i := class.Pivot
	v0, v1, v2 := p[i], p[(i+1)%3], p[(i+2)%3]

	switch class.Side {
	case allLeft:
		s.leftFaces = append(s.leftFaces, s.copyFace(s.leftIndex, f))
	case allRight:
		s.rightFaces = append(s.rightFaces, s.copyFace(s.rightIndex, f))
	case pivotLeft:
		s.clipPivotLeft(v0, v1, v2)
		return true
	case pivotRight:
		s.clipPivotRight(v0, v1, v2)
		return true
	}
	return false
}

func (s *splitter) copyFace(index *vertexIndex, f *Face) Face {
	p := f.Points
	return newFace(index.AddIndex(p[0]), index.AddIndex(p[1]), index.AddIndex(p[2]),
		p[0], p[1], p[2])
}

// clipPivotLeft handles a face with vL on the left and vR1, vR2 on the right.
func (s *splitter) clipPivotLeft(vL, vR1, vR2 Vertex) {
	q := s.plane.Coord
	axis := s.plane.Axis
	left, right := s.leftIndex, s.rightIndex

	iL := left.AddIndex(vL)

	if IsOnPlane(axis.Dimension(vR1), q) && IsOnPlane(axis.Dimension(vR2), q) {
		// The plane passes through an edge; keep the face intact.
		iR1 := left.AddIndex(vR1)
		iR2 := left.AddIndex(vR2)
		s.leftFaces = append(s.leftFaces, newFace(iL, iR1, iR2, vL, vR1, vR2))
		return
	}

	iR1 := right.AddIndex(vR1)
	iR2 := right.AddIndex(vR2)

	t1 := axis.CutEdge(vL, vR1, q)
	t1Left := left.AddIndex(t1)
	t1Right := right.AddIndex(t1)

	t2 := axis.CutEdge(vL, vR2, q)
	t2Left := left.AddIndex(t2)
	t2Right := right.AddIndex(t2)

	s.leftFaces = append(s.leftFaces, newFace(iL, t1Left, t2Left, vL, t1, t2))
	s.rightFaces = append(
		s.rightFaces,
		newFace(t1Right, iR1, iR2, t1, vR1, vR2),
		newFace(t1Right, iR2, t2Right, t1, vR2, t2),
	)
}

// clipPivotRight handles a face with vR on the right and vL1, vL2 on the left.
func (s *splitter) clipPivotRight(vR, vL1, vL2 Vertex) {
	q := s.plane.Coord
	axis := s.plane.Axis
	left, right := s.leftIndex, s.rightIndex

	iR := right.AddIndex(vR)

	if IsOnPlane(axis.Dimension(vL1), q) && IsOnPlane(axis.Dimension(vL2), q) {
		iL1 := right.AddIndex(vL1)
		iL2 := right.AddIndex(vL2)
		s.rightFaces = append(s.rightFaces, newFace(iR, iL1, iL2, vR, vL1, vL2))
		return
	}

	iL1 := left.AddIndex(vL1)
	iL2 := left.AddIndex(vL2)

	t1 := axis.CutEdge(vR, vL1, q)
	t1Left := left.AddIndex(t1)
	t1Right := right.AddIndex(t1)

	t2 := axis.CutEdge(vR, vL2, q)
	t2Left := left.AddIndex(t2)
	t2Right := right.AddIndex(t2)

	s.rightFaces = append(s.rightFaces, newFace(iR, t1Right, t2Right, vR, t1, t2))
	s.leftFaces = append(
		s.leftFaces,
		newFace(t2Left, iL1, iL2, t2, vL1, vL2),
		newFace(t2Left, t1Left, iL1, t2, t1, vL1),
	)
}
