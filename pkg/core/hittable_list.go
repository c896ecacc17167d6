package core

// HittableList is a flat collection of objects tested by linear scan
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the nearest intersection among all objects in the list
func (l *HittableList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the union of all object boxes; an empty list yields the zero box
func (l *HittableList) BoundingBox(time0, time1 float64) AABB {
	if len(l.Objects) == 0 {
		return AABB{}
	}

	box := l.Objects[0].BoundingBox(time0, time1)
	for _, object := range l.Objects[1:] {
		box = SurroundingBox(box, object.BoundingBox(time0, time1))
	}
	return box
}
