package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/obj-tiles/tiles"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_info [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	tris, err := tiles.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := tiles.NewMeshTriangles("", tris)

	fmt.Println("Number of vertices:", mesh.NumVertices())
	fmt.Println("Number of faces:", mesh.NumFaces())
	if mesh.NumVertices() > 0 {
		bounds := mesh.Bounds()
		fmt.Println("Min:", bounds.MinVal)
		fmt.Println("Max:", bounds.MaxVal)
		fmt.Println("Centroid:", mesh.Centroid())
	}
	fmt.Println("Area:", mesh.Area())
}
