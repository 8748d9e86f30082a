package core

import "math"

// MinAABBPadding is the smallest extent any non-empty AABB axis may have
const MinAABBPadding = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

var (
	// EmptyAABB bounds nothing and is the identity for NewAABBUnion
	EmptyAABB = NewAABB(EmptyInterval, EmptyInterval, EmptyInterval)
	// UniverseAABB bounds everything
	UniverseAABB = NewAABB(UniverseInterval, UniverseInterval, UniverseInterval)
)

// NewAABB creates an AABB from three axis intervals, padding thin axes
func NewAABB(x, y, z Interval) AABB {
	aabb := AABB{X: x, Y: y, Z: z}
	aabb.padToMinimums()
	return aabb
}

// NewAABBFromPoints creates an AABB from two opposite corners given in any order
func NewAABBFromPoints(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	)
}

// NewAABBUnion returns the smallest AABB enclosing both boxes
func NewAABBUnion(a, b AABB) AABB {
	return AABB{
		X: NewIntervalUnion(a.X, b.X),
		Y: NewIntervalUnion(a.Y, b.Y),
		Z: NewIntervalUnion(a.Z, b.Z),
	}
}

// padToMinimums widens any axis thinner than MinAABBPadding to exactly that size,
// keeping its midpoint. Empty axes stay empty.
func (aabb *AABB) padToMinimums() {
	aabb.X = padInterval(aabb.X)
	aabb.Y = padInterval(aabb.Y)
	aabb.Z = padInterval(aabb.Z)
}

func padInterval(i Interval) Interval {
	size := i.Size()
	if i.IsEmpty() || size >= MinAABBPadding {
		return i
	}
	return i.Expand(MinAABBPadding - size)
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or Z for any other value
func (aabb AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Hit tests if a ray intersects with this AABB within interval using the slab method
func (aabb AABB) Hit(ray Ray, interval Interval) bool {
	tMin, tMax := interval.Min, interval.Max

	for axis := 0; axis < 3; axis++ {
		slab := aabb.AxisInterval(axis)
		origin := ray.Origin.Get(axis)
		direction := ray.Direction.Get(axis)

		// A zero direction component gives ±Inf bounds, or NaN when the
		// origin sits exactly on the slab plane.
		t0 := (slab.Min - origin) / direction
		t1 := (slab.Max - origin) / direction

		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// Comparisons rather than math.Max/math.Min so NaN bounds leave the
		// running interval unchanged.
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	x, y, z := aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size()
	if x > y {
		if x > z {
			return 0
		}
		return 2
	}
	if y > z {
		return 1
	}
	return 2
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return NewAABB(
		aabb.X.Add(offset.X),
		aabb.Y.Add(offset.Y),
		aabb.Z.Add(offset.Z),
	)
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// SurfaceArea returns the surface area of the AABB
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// Contains reports whether point lies inside the box (boundary inclusive)
func (aabb AABB) Contains(point Vec3) bool {
	return aabb.X.Contains(point.X) &&
		aabb.Y.Contains(point.Y) &&
		aabb.Z.Contains(point.Z)
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}
