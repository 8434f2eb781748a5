package tiles

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// DefaultMeshName is used for meshes whose name is blank.
const DefaultMeshName = "Mesh"

// A Mesh is an indexed triangle mesh.
//
// Meshes are immutable once created. Splitting a mesh never modifies it.
type Mesh struct {
	Name string

	vertices []Vertex
	faces    []Face
}

// NewMesh creates a mesh from a vertex array and triangles given as indices
// into that array.
//
// The input slices are copied. An error is returned if any triangle refers to
// a vertex that does not exist.
func NewMesh(name string, vertices []Vertex, triangles [][3]int) (*Mesh, error) {
	faces := make([]Face, len(triangles))
	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(vertices) {
				return nil, errors.Errorf("new mesh: face %d has vertex index %d out of range [0, %d)",
					i, idx, len(vertices))
			}
		}
		faces[i] = newFace(t[0], t[1], t[2], vertices[t[0]], vertices[t[1]], vertices[t[2]])
	}
	return &Mesh{
		Name:     name,
		vertices: append([]Vertex{}, vertices...),
		faces:    faces,
	}, nil
}

// NewMeshModel3D creates an indexed mesh from the triangles of a model3d mesh,
// merging vertices with identical coordinates.
//
// The order of the resulting faces is arbitrary, since model3d meshes are
// unordered. Use NewMeshTriangles to preserve the order of a triangle list.
func NewMeshModel3D(name string, m *model3d.Mesh) *Mesh {
	return NewMeshTriangles(name, m.TriangleSlice())
}

// NewMeshTriangles creates an indexed mesh from a list of triangles, such as
// the result of model3d.ReadSTL, merging vertices with identical coordinates.
//
// Faces keep the order of tris, and vertices are ordered by first use.
func NewMeshTriangles(name string, tris []*model3d.Triangle) *Mesh {
	index := newVertexIndex(len(tris) * 3)
	faces := make([]Face, 0, len(tris))
	for _, t := range tris {
		faces = append(faces, newFace(
			index.AddIndex(t[0]),
			index.AddIndex(t[1]),
			index.AddIndex(t[2]),
			t[0], t[1], t[2],
		))
	}
	return &Mesh{
		Name:     name,
		vertices: index.Vertices(),
		faces:    faces,
	}
}

// Model3D converts the mesh into a model3d mesh.
func (m *Mesh) Model3D() *model3d.Mesh {
	res := model3d.NewMesh()
	for i := range m.faces {
		res.Add(m.faces[i].Triangle())
	}
	return res
}

// DisplayName gets the mesh's name, or DefaultMeshName if it is blank.
func (m *Mesh) DisplayName() string {
	if strings.TrimSpace(m.Name) == "" {
		return DefaultMeshName
	}
	return m.Name
}

func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

func (m *Mesh) Vertex(i int) Vertex {
	return m.vertices[i]
}

func (m *Mesh) Face(i int) Face {
	return m.faces[i]
}

// Vertices gets a copy of the vertex array.
func (m *Mesh) Vertices() []Vertex {
	return append([]Vertex{}, m.vertices...)
}

// Faces gets a copy of the face array.
func (m *Mesh) Faces() []Face {
	return append([]Face{}, m.faces...)
}

// Min gets the componentwise minimum of the vertices.
//
// The result is the origin for an empty mesh.
func (m *Mesh) Min() Vertex {
	if len(m.vertices) == 0 {
		return model3d.Origin
	}
	res := m.vertices[0]
	for _, v := range m.vertices[1:] {
		res = res.Min(v)
	}
	return res
}

// Max gets the componentwise maximum of the vertices.
//
// The result is the origin for an empty mesh.
func (m *Mesh) Max() Vertex {
	if len(m.vertices) == 0 {
		return model3d.Origin
	}
	res := m.vertices[0]
	for _, v := range m.vertices[1:] {
		res = res.Max(v)
	}
	return res
}

// Bounds computes the bounding box of the mesh in one pass.
func (m *Mesh) Bounds() *model3d.Rect {
	if len(m.vertices) == 0 {
		return &model3d.Rect{}
	}
	min := model3d.XYZ(math.Inf(1), math.Inf(1), math.Inf(1))
	max := min.Scale(-1)
	for _, v := range m.vertices {
		min = min.Min(v)
		max = max.Max(v)
	}
	return &model3d.Rect{MinVal: min, MaxVal: max}
}

// Centroid computes the mean of all the vertices.
//
// The result is NaN for a mesh without vertices.
func (m *Mesh) Centroid() Vertex {
	var sum Vertex
	for _, v := range m.vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(m.vertices)))
}

// Area computes the total surface area of the faces.
func (m *Mesh) Area() float64 {
	var res float64
	for i := range m.faces {
		res += m.faces[i].Triangle().Area()
	}
	return res
}
