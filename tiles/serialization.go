package tiles

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// WriteObj encodes the mesh as a Wavefront OBJ object.
//
// Vertices are written before faces, and coordinates use a fixed-point
// format which does not depend on the locale.
func (m *Mesh) WriteObj(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := writeObj(bw, m); err != nil {
		return errors.Wrap(err, "write obj")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write obj")
	}
	return nil
}

func writeObj(w *bufio.Writer, m *Mesh) error {
	if _, err := w.WriteString("o " + m.DisplayName() + "\n"); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for _, v := range m.vertices {
		buf = append(buf[:0], "v "...)
		buf = strconv.AppendFloat(buf, v.X, 'f', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Y, 'f', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, v.Z, 'f', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	for i := range m.faces {
		if _, err := w.WriteString(m.faces[i].ObjString() + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// SaveObj writes the mesh to an OBJ file.
func (m *Mesh) SaveObj(path string) error {
	return Save(path, m, func(w io.Writer, m *Mesh) error {
		return m.WriteObj(w)
	})
}

// Load opens a file and decodes it with f.
func Load[T any](path string, f func(io.Reader) (T, error)) (T, error) {
	r, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "load")
	}
	defer r.Close()
	res, err := f(r)
	if err != nil {
		return res, errors.Wrap(err, "load "+path)
	}
	return res, nil
}

// Save creates a file and encodes obj into it with f.
func Save[T any](path string, obj T, f func(io.Writer, T) error) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save")
	}
	if err := f(w, obj); err != nil {
		w.Close()
		return errors.Wrap(err, "save "+path)
	}
	return errors.Wrap(w.Close(), "save "+path)
}
