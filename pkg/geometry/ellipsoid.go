// Package geometry generates renderable globe geometry: vertex attribute
// buffers, triangle index lists, and bounding volumes.
package geometry

import "github.com/madw0lf/cesium/pkg/math"

// Ellipsoid is a quadratic surface defined in Cartesian coordinates by
// (x/a)^2 + (y/b)^2 + (z/c)^2 = 1, centered at the origin.
type Ellipsoid struct {
	radii               math.Vec3
	oneOverRadiiSquared math.Vec3
}

// NewEllipsoid returns an ellipsoid with the given radii along each axis.
func NewEllipsoid(x, y, z float64) Ellipsoid {
	return Ellipsoid{
		radii: math.Vec3{X: x, Y: y, Z: z},
		oneOverRadiiSquared: math.Vec3{
			X: 1 / (x * x),
			Y: 1 / (y * y),
			Z: 1 / (z * z),
		},
	}
}

// UnitSphere returns an ellipsoid with all radii equal to one.
func UnitSphere() Ellipsoid {
	return NewEllipsoid(1, 1, 1)
}

// WGS84 returns the World Geodetic System 1984 reference ellipsoid,
// in meters.
func WGS84() Ellipsoid {
	return NewEllipsoid(6378137.0, 6378137.0, 6356752.3142451793)
}

// Radii returns the radii along each axis.
func (e Ellipsoid) Radii() math.Vec3 {
	return e.radii
}

// MaximumRadius returns the largest radius.
func (e Ellipsoid) MaximumRadius() float64 {
	return e.radii.MaxComponent()
}

// MinimumRadius returns the smallest radius.
func (e Ellipsoid) MinimumRadius() float64 {
	return e.radii.MinComponent()
}

// GeodeticSurfaceNormal returns the outward unit normal of the ellipsoid
// for the given point: the normalized gradient of the implicit surface.
// On a sphere this degenerates to the radial direction; for unequal radii
// it does not.
func (e Ellipsoid) GeodeticSurfaceNormal(p math.Vec3) math.Vec3 {
	return p.MulComponents(e.oneOverRadiiSquared).Normalize()
}

// ScaleToSurface maps a point onto the ellipsoid along the ray from the
// origin through the point: normalize, then scale by the radii. This is a
// ray-through-origin approximation, not a nearest-point projection; it is
// the standard mapping for cube-map style tessellation.
func (e Ellipsoid) ScaleToSurface(p math.Vec3) math.Vec3 {
	return p.Normalize().MulComponents(e.radii)
}
