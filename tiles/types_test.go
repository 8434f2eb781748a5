package tiles

import (
	"reflect"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestVertexIndex(t *testing.T) {
	index := newVertexIndex(0)
	vertices := []Vertex{
		model3d.XYZ(1, 2, 3),
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 2, 3),
		model3d.XYZ(1, 2, 3+1e-12),
		model3d.XYZ(0, 0, 0),
	}
	var indices []int
	for _, v := range vertices {
		indices = append(indices, index.AddIndex(v))
	}
	if expected := []int{0, 1, 0, 2, 1}; !reflect.DeepEqual(indices, expected) {
		t.Fatalf("expected indices %v but got %v", expected, indices)
	}
	expected := []Vertex{vertices[0], vertices[1], vertices[3]}
	if !reflect.DeepEqual(index.Vertices(), expected) {
		t.Fatalf("expected %v but got %v", expected, index.Vertices())
	}
}

func TestFaceObjString(t *testing.T) {
	f := newFace(0, 4, 2, model3d.Origin, model3d.X(1), model3d.Y(1))
	if s := f.ObjString(); s != "f 1 5 3" {
		t.Fatalf("unexpected face string %q", s)
	}
	if tri := f.Triangle(); *tri != (model3d.Triangle{model3d.Origin, model3d.X(1), model3d.Y(1)}) {
		t.Fatalf("unexpected triangle %v", tri)
	}
}
