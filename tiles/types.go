package tiles

import (
	"fmt"

	"github.com/unixpickle/model3d/model3d"
)

// A Vertex is a point in a mesh, identified by its exact coordinates.
type Vertex = model3d.Coord3D

// A Face is a triangle in a Mesh.
//
// Indices refer to the owning mesh's vertex array, and Points holds the same
// vertices by value. The order of the corners defines the winding.
type Face struct {
	Indices [3]int
	Points  [3]Vertex
}

func newFace(i1, i2, i3 int, v1, v2, v3 Vertex) Face {
	return Face{
		Indices: [3]int{i1, i2, i3},
		Points:  [3]Vertex{v1, v2, v3},
	}
}

// Triangle gets the face's geometry as a model3d triangle.
func (f Face) Triangle() *model3d.Triangle {
	return &model3d.Triangle{f.Points[0], f.Points[1], f.Points[2]}
}

// ObjString renders the face as an OBJ face directive with 1-based indices.
func (f Face) ObjString() string {
	return fmt.Sprintf("f %d %d %d", f.Indices[0]+1, f.Indices[1]+1, f.Indices[2]+1)
}

// vertexIndex assigns sequential indices to distinct vertices in the order
// they are first seen.
type vertexIndex struct {
	indices  map[Vertex]int
	vertices []Vertex
}

func newVertexIndex(capacity int) *vertexIndex {
	return &vertexIndex{
		indices:  make(map[Vertex]int, capacity),
		vertices: make([]Vertex, 0, capacity),
	}
}

// AddIndex returns the index of v, inserting it if it has not been seen.
func (v *vertexIndex) AddIndex(vertex Vertex) int {
	if idx, ok := v.indices[vertex]; ok {
		return idx
	}
	idx := len(v.vertices)
	v.indices[vertex] = idx
	v.vertices = append(v.vertices, vertex)
	return idx
}

// Vertices gets the vertices ordered by their assigned index.
func (v *vertexIndex) Vertices() []Vertex {
	return v.vertices
}
