package geometry

import "github.com/madw0lf/cesium/pkg/math"

// BoundingSphere is a sphere that encloses a set of geometry.
type BoundingSphere struct {
	Center math.Vec3
	Radius float64
}

// BoundingSphereFromEllipsoid returns the tightest sphere centered at the
// origin that encloses the ellipsoid. Independent of any tessellation.
func BoundingSphereFromEllipsoid(e Ellipsoid) BoundingSphere {
	return BoundingSphere{Radius: e.MaximumRadius()}
}

// BoundingSphereFromPoints returns a sphere enclosing all the given points,
// centered at the midpoint of their axis-aligned bounds.
func BoundingSphereFromPoints(points []math.Vec3) BoundingSphere {
	if len(points) == 0 {
		return BoundingSphere{}
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	center := min.Add(max).Scale(0.5)
	radius := 0.0
	for _, p := range points {
		if d := center.Distance(p); d > radius {
			radius = d
		}
	}
	return BoundingSphere{Center: center, Radius: radius}
}

// Contains reports whether the point lies inside or on the sphere.
func (s BoundingSphere) Contains(p math.Vec3) bool {
	return s.Center.Distance(p) <= s.Radius
}
