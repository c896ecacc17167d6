package core

// HitRecord contains information about a ray-object intersection.
// It is created fresh by every successful Hit call.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the outside of the surface
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is implemented by everything a ray can intersect: primitives, lists and BVH nodes.
type Hittable interface {
	// Hit returns the nearest intersection with t in the open interval (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval [time0, time1]
	BoundingBox(time0, time1 float64) AABB
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material decides how an incoming ray is absorbed, reflected or refracted at a hit.
// Implementations are immutable and may be shared by any number of primitives and goroutines.
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}
