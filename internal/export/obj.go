// Package export writes generated geometry to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/madw0lf/cesium/pkg/geometry"
)

// WriteOBJ writes the geometry as Wavefront OBJ. The geometry must carry a
// position attribute; normals are written when present.
func WriteOBJ(w io.Writer, g *geometry.Geometry) error {
	if g.PrimitiveType != geometry.Triangles {
		return fmt.Errorf("OBJ export supports triangle lists only, got primitive type %d", g.PrimitiveType)
	}
	positions, ok := g.Attributes[geometry.AttributePosition]
	if !ok {
		return fmt.Errorf("geometry has no %s attribute", geometry.AttributePosition)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", g.VertexCount(), g.TriangleCount())

	for i := 0; i+2 < len(positions.Values); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n",
			positions.Values[i], positions.Values[i+1], positions.Values[i+2])
	}

	normals, hasNormals := g.Attributes[geometry.AttributeNormal]
	if hasNormals {
		for i := 0; i+2 < len(normals.Values); i += 3 {
			fmt.Fprintf(bw, "vn %g %g %g\n",
				normals.Values[i], normals.Values[i+1], normals.Values[i+2])
		}
	}

	// OBJ indices are 1-based; vertex and normal arrays are parallel.
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := g.Indices[i]+1, g.Indices[i+1]+1, g.Indices[i+2]+1
		if hasNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
		}
	}

	return bw.Flush()
}

// WriteOBJFile writes the geometry as Wavefront OBJ to the given path.
func WriteOBJFile(path string, g *geometry.Geometry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := WriteOBJ(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
