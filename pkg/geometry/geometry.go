package geometry

import "github.com/madw0lf/cesium/pkg/math"

// Attribute names used by the generators in this package.
const (
	AttributePosition = "position"
	AttributeNormal   = "normal"
)

// Attribute is one flat per-vertex data array. Components are stored as
// single-precision floats, ComponentsPerAttribute entries per vertex.
type Attribute struct {
	ComponentsPerAttribute int
	Values                 []float32
}

// PrimitiveType describes how an index list is consumed.
type PrimitiveType int

const (
	Points PrimitiveType = iota
	Lines
	Triangles
)

// VertexFormat selects which per-vertex attributes a generator produces.
// ST, Tangent, and Bitangent are accepted for compatibility with other
// generators but are not produced by the ellipsoid tessellator.
type VertexFormat struct {
	Position  bool
	Normal    bool
	ST        bool
	Tangent   bool
	Bitangent bool
}

// DefaultVertexFormat returns a format with positions and normals.
func DefaultVertexFormat() VertexFormat {
	return VertexFormat{Position: true, Normal: true}
}

// Geometry is the output of a geometry generator: named vertex attribute
// buffers, one triangle-list index buffer, a bounding volume, a model
// transform, and opaque pick metadata. A Geometry is immutable once
// returned.
type Geometry struct {
	Attributes     map[string]Attribute
	Indices        []uint32
	PrimitiveType  PrimitiveType
	BoundingSphere BoundingSphere
	ModelMatrix    math.Mat4
	PickData       any
}

// VertexCount returns the number of vertices, derived from the position
// attribute. Returns 0 if positions were not generated.
func (g *Geometry) VertexCount() int {
	pos, ok := g.Attributes[AttributePosition]
	if !ok || pos.ComponentsPerAttribute == 0 {
		return 0
	}
	return len(pos.Values) / pos.ComponentsPerAttribute
}

// TriangleCount returns the number of triangles in the index buffer.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}
