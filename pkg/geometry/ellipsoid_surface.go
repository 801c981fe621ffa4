package geometry

import (
	"errors"
	"fmt"

	"github.com/madw0lf/cesium/pkg/math"
)

// ErrInvalidConfiguration is returned when generator options fail their
// preconditions. No buffers are allocated before the check.
var ErrInvalidConfiguration = errors.New("invalid geometry configuration")

// DefaultPartitions is the edge subdivision count used by
// DefaultEllipsoidSurfaceOptions.
const DefaultPartitions = 32

// EllipsoidSurfaceOptions configures NewEllipsoidSurface. Zero-valued
// Ellipsoid, VertexFormat, and ModelMatrix fields fall back to the unit
// sphere, positions+normals, and identity respectively. NumberOfPartitions
// must be set explicitly and greater than zero; start from
// DefaultEllipsoidSurfaceOptions to get the defaults.
type EllipsoidSurfaceOptions struct {
	Ellipsoid          Ellipsoid
	NumberOfPartitions int
	VertexFormat       VertexFormat
	ModelMatrix        math.Mat4
	PickData           any
}

// DefaultEllipsoidSurfaceOptions returns options for a unit sphere with 32
// partitions, positions and normals, and an identity model matrix.
func DefaultEllipsoidSurfaceOptions() EllipsoidSurfaceOptions {
	return EllipsoidSurfaceOptions{
		Ellipsoid:          UnitSphere(),
		NumberOfPartitions: DefaultPartitions,
		VertexFormat:       DefaultVertexFormat(),
		ModelMatrix:        math.Identity(),
	}
}

// NewEllipsoidSurface tessellates the ellipsoid surface by subdividing the
// faces of a cube and projecting the result outward, returning positions,
// normals, and a triangle index list.
//
// For n partitions per edge the result has 8 + 12(n-1) + 6(n-1)^2 vertices
// and 12n^2 triangles. Vertices on shared cube edges and corners are never
// duplicated: each edge is subdivided once and reused by both adjoining
// faces.
func NewEllipsoidSurface(opts EllipsoidSurfaceOptions) (*Geometry, error) {
	n := opts.NumberOfPartitions
	if n <= 0 {
		return nil, fmt.Errorf("%w: numberOfPartitions must be greater than zero, got %d",
			ErrInvalidConfiguration, n)
	}

	ellipsoid := opts.Ellipsoid
	if ellipsoid == (Ellipsoid{}) {
		ellipsoid = UnitSphere()
	}
	format := opts.VertexFormat
	if format == (VertexFormat{}) {
		format = DefaultVertexFormat()
	}
	modelMatrix := opts.ModelMatrix
	if modelMatrix == (math.Mat4{}) {
		modelMatrix = math.Identity()
	}

	b := newMeshBuilder(n)
	b.positions = append(b.positions, cubeCorners[:]...)

	// Subdivide the 12 cube edges once. Adjoining faces share the index
	// lists, which is what keeps edge vertices from being duplicated.
	b01 := b.subdivideEdge(0, 1, n)
	b12 := b.subdivideEdge(1, 2, n)
	b23 := b.subdivideEdge(2, 3, n)
	b30 := b.subdivideEdge(3, 0, n)
	t45 := b.subdivideEdge(4, 5, n)
	t56 := b.subdivideEdge(5, 6, n)
	t67 := b.subdivideEdge(6, 7, n)
	t74 := b.subdivideEdge(7, 4, n)
	v04 := b.subdivideEdge(0, 4, n)
	v15 := b.subdivideEdge(1, 5, n)
	v26 := b.subdivideEdge(2, 6, n)
	v37 := b.subdivideEdge(3, 7, n)

	// Six faces, boundaries given as (left, bottom, right, top) with left
	// and right running bottom to top and bottom and top running left to
	// right. Orientations are chosen so every face winds outward; the two
	// z-plane caps traverse two of their ring edges backward.
	b.tessellateFace(forward(v04), forward(b01), forward(v15), forward(t45), n) // -y
	b.tessellateFace(forward(v15), forward(b12), forward(v26), forward(t56), n) // +x
	b.tessellateFace(forward(v26), forward(b23), forward(v37), forward(t67), n) // +y
	b.tessellateFace(forward(v37), forward(b30), forward(v04), forward(t74), n) // -x
	b.tessellateFace(forward(b01), backward(b30), backward(b23), forward(b12), n) // -z
	b.tessellateFace(backward(t74), forward(t45), forward(t56), backward(t67), n) // +z

	// Normals come from the cube-space positions, so compute them before
	// the in-place projection below. GeodeticSurfaceNormal is scale
	// invariant along a ray, making the pre-projection point a valid input.
	var normals []math.Vec3
	if format.Normal {
		normals = make([]math.Vec3, len(b.positions))
		for i, p := range b.positions {
			normals[i] = ellipsoid.GeodeticSurfaceNormal(p)
		}
	}

	// Project every cube-space position onto the ellipsoid, in place.
	for i := range b.positions {
		b.positions[i] = ellipsoid.ScaleToSurface(b.positions[i])
	}

	attributes := make(map[string]Attribute, 2)
	if format.Position {
		attributes[AttributePosition] = Attribute{
			ComponentsPerAttribute: 3,
			Values:                 flattenVec3(b.positions),
		}
	}
	if format.Normal {
		attributes[AttributeNormal] = Attribute{
			ComponentsPerAttribute: 3,
			Values:                 flattenVec3(normals),
		}
	}

	return &Geometry{
		Attributes:     attributes,
		Indices:        b.indices,
		PrimitiveType:  Triangles,
		BoundingSphere: BoundingSphereFromEllipsoid(ellipsoid),
		ModelMatrix:    modelMatrix,
		PickData:       opts.PickData,
	}, nil
}

// cubeCorners are the 8 corners of the cube [-1,1]^3: indices 0-3 loop
// around the z=-1 plane, 4-7 around the z=+1 plane, with corner i+4
// directly above corner i.
var cubeCorners = [8]math.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

// meshBuilder owns the shared position buffer and the triangle index buffer
// while a surface is under construction. A position's index in the buffer
// is its vertex identifier everywhere.
type meshBuilder struct {
	positions []math.Vec3
	indices   []uint32
}

func newMeshBuilder(n int) *meshBuilder {
	vertexCount := 8 + 12*(n-1) + 6*(n-1)*(n-1)
	return &meshBuilder{
		positions: make([]math.Vec3, 0, vertexCount),
		indices:   make([]uint32, 0, 6*2*n*n*3),
	}
}

// addPosition appends a position and returns its index.
func (b *meshBuilder) addPosition(p math.Vec3) int {
	b.positions = append(b.positions, p)
	return len(b.positions) - 1
}

// subdivideEdge splits the straight edge between two existing positions
// into n segments, appending the n-1 interior points. The returned list
// has n+1 indices ordered from start to end.
func (b *meshBuilder) subdivideEdge(start, end, n int) []int {
	edge := make([]int, 0, n+1)
	edge = append(edge, start)

	origin := b.positions[start]
	direction := b.positions[end].Sub(origin)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		edge = append(edge, b.addPosition(origin.Add(direction.Scale(t))))
	}

	edge = append(edge, end)
	return edge
}

// faceEdge is one boundary edge of a quad face. When reversed is set the
// list is traversed end to start, so callers state the traversal direction
// instead of copying and reversing index lists.
type faceEdge struct {
	indices  []int
	reversed bool
}

func forward(indices []int) faceEdge {
	return faceEdge{indices: indices}
}

func backward(indices []int) faceEdge {
	return faceEdge{indices: indices, reversed: true}
}

func (e faceEdge) at(i int) int {
	if e.reversed {
		return e.indices[len(e.indices)-1-i]
	}
	return e.indices[i]
}

// tessellateFace fills the interior (n-1)x(n-1) grid of one cube face by
// bilinear interpolation in the face's local basis and appends two
// triangles per grid cell. All four boundary edges must already be
// subdivided; their vertices are reused, never recreated.
func (b *meshBuilder) tessellateFace(left, bottom, right, top faceEdge, n int) {
	origin := b.positions[bottom.at(0)]
	x := b.positions[bottom.at(n)].Sub(origin)
	y := b.positions[top.at(0)].Sub(origin)

	// Two row buffers swapped each iteration instead of reallocated.
	bottomRow := make([]int, n+1)
	topRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		bottomRow[i] = bottom.at(i)
	}

	for j := 1; j <= n; j++ {
		if j < n {
			// Interior row: ends come from the side edges, the rest
			// are new grid points.
			topRow[0] = left.at(j)
			topRow[n] = right.at(j)
			for i := 1; i < n; i++ {
				offset := x.Scale(float64(i) / float64(n)).
					Add(y.Scale(float64(j) / float64(n)))
				topRow[i] = b.addPosition(origin.Add(offset))
			}
		} else {
			// Last row is the already-built top edge.
			for i := 0; i <= n; i++ {
				topRow[i] = top.at(i)
			}
		}

		for k := 0; k < n; k++ {
			b.indices = append(b.indices,
				uint32(bottomRow[k]), uint32(bottomRow[k+1]), uint32(topRow[k+1]),
				uint32(bottomRow[k]), uint32(topRow[k+1]), uint32(topRow[k]),
			)
		}

		bottomRow, topRow = topRow, bottomRow
	}
}

// flattenVec3 packs vectors into a flat single-precision component array.
func flattenVec3(vs []math.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, float32(v.X), float32(v.Y), float32(v.Z))
	}
	return out
}
