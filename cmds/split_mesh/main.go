package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/obj-tiles/tiles"
)

func main() {
	var axisName string
	var coord float64
	var name string
	flag.StringVar(&axisName, "axis", "x", "split axis (x, y, or z)")
	flag.Float64Var(&coord, "coord", math.NaN(),
		"coordinate of the split plane (default: centroid of the mesh)")
	flag.StringVar(&name, "name", "", "name of the input mesh (default: input file name)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: split_mesh [flags] <input.stl> <left.obj> <right.obj>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, leftPath, rightPath := args[0], args[1], args[2]

	axis, err := tiles.ParseAxis(axisName)
	essentials.Must(err)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	log.Println("Loading mesh...")
	tris, err := tiles.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := tiles.NewMeshTriangles(name, tris)
	log.Printf(" => %d vertices, %d faces", mesh.NumVertices(), mesh.NumFaces())
	if mesh.NumVertices() == 0 {
		essentials.Die("input mesh is empty")
	}

	if math.IsNaN(coord) {
		coord = axis.Dimension(mesh.Centroid())
	}
	plane := tiles.Plane{Axis: axis, Coord: coord}

	log.Printf("Splitting along %v...", plane)
	left, right, straddled := mesh.Split(plane)
	log.Printf(" => %d straddling faces", straddled)
	log.Printf(" => %s: %d faces, %s: %d faces", left.Name, left.NumFaces(),
		right.Name, right.NumFaces())
	log.Printf(" => area %f -> %f", mesh.Area(), left.Area()+right.Area())

	log.Println("Writing outputs...")
	essentials.Must(left.SaveObj(leftPath))
	essentials.Must(right.SaveObj(rightPath))
}
