package core

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// MockShape for testing
type MockShape struct {
	boundingBox AABB
	hitFn       func(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

func (m MockShape) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return m.hitFn(ray, tMin, tMax)
}

func (m MockShape) BoundingBox(time0, time1 float64) AABB {
	return m.boundingBox
}

// makeHitFn returns a hit function reporting a hit at tValue for rays travelling along +X
func makeHitFn(tValue float64) func(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return func(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
		if ray.Direction.X > 0 && tValue > tMin && tValue < tMax {
			return &HitRecord{T: tValue}, true
		}
		return nil, false
	}
}

func neverHit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return nil, false
}

func newTestRandom() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestBVH_Empty(t *testing.T) {
	bvh, err := NewBVH([]Hittable{}, 0, 1, newTestRandom())
	if !errors.Is(err, ErrEmptyScene) {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}
	if bvh != nil {
		t.Error("Expected nil BVH for empty object list")
	}
}

func TestBVH_SingleShape(t *testing.T) {
	shape := MockShape{
		boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
		hitFn:       makeHitFn(1.0),
	}

	bvh, err := NewBVH([]Hittable{shape}, 0, 1, newTestRandom())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := bvh.Stats()
	if stats.Nodes != 1 {
		t.Errorf("Expected 1 node for single shape, got %d", stats.Nodes)
	}
	if stats.Primitives != 1 {
		t.Errorf("Expected 1 primitive for single shape, got %d", stats.Primitives)
	}

	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.T != 1.0 {
		t.Errorf("Expected hit at t=1.0, got t=%f", hit.T)
	}
}

func TestBVH_ClosestHit(t *testing.T) {
	shapes := []Hittable{
		MockShape{
			boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
			hitFn:       makeHitFn(2.0),
		},
		MockShape{
			boundingBox: NewAABB(NewVec3(0.5, 0, 0), NewVec3(1.5, 1, 1)),
			hitFn:       makeHitFn(1.0), // closest
		},
		MockShape{
			boundingBox: NewAABB(NewVec3(1.0, 0, 0), NewVec3(2.0, 1, 1)),
			hitFn:       makeHitFn(3.0),
		},
	}

	// Different seeds produce different split axes; the answer must not change
	for seed := int64(0); seed < 10; seed++ {
		bvh, err := NewBVH(shapes, 0, 1, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
		hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatalf("seed %d: expected hit", seed)
		}
		if math.Abs(hit.T-1.0) > 1e-9 {
			t.Errorf("seed %d: expected closest hit at t=1.0, got t=%f", seed, hit.T)
		}
	}
}

func TestBVH_RayHitsBoundingBoxButMissesShapes(t *testing.T) {
	shape := MockShape{
		boundingBox: NewAABB(NewVec3(0, 0, 0), NewVec3(2, 2, 2)),
		hitFn:       neverHit,
	}

	bvh, err := NewBVH([]Hittable{shape, shape}, 0, 1, newTestRandom())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := NewRay(NewVec3(-1, 1, 1), NewVec3(1, 0, 0))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if isHit {
		t.Error("Expected miss when ray hits bounding box but misses shape")
	}
	if hit != nil {
		t.Error("Expected nil hit record when no shapes are hit")
	}
}

func TestBVH_PrunesMissedBoxes(t *testing.T) {
	calls := 0
	countingHit := func(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
		calls++
		return nil, false
	}

	shapes := make([]Hittable, 16)
	for i := range shapes {
		shapes[i] = MockShape{
			boundingBox: NewAABB(NewVec3(float64(i), 10, 0), NewVec3(float64(i)+1, 11, 1)),
			hitFn:       countingHit,
		}
	}

	bvh, err := NewBVH(shapes, 0, 1, newTestRandom())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Ray travels along y=0, far below every box
	ray := NewRay(NewVec3(-5, 0, 0.5), NewVec3(1, 0, 0))
	if _, isHit := bvh.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss")
	}
	if calls != 0 {
		t.Errorf("Expected no primitive tests after root box miss, got %d", calls)
	}
}

func TestBVH_StatsAndBoxes(t *testing.T) {
	shapes := make([]Hittable, 20)
	for i := range shapes {
		shapes[i] = MockShape{
			boundingBox: NewAABB(NewVec3(float64(i), 0, 0), NewVec3(float64(i)+1, 1, 1)),
			hitFn:       neverHit,
		}
	}

	bvh, err := NewBVH(shapes, 0, 1, newTestRandom())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats := bvh.Stats()
	if stats.Primitives != 20 {
		t.Errorf("Expected 20 primitives, got %d", stats.Primitives)
	}
	if stats.MaxDepth == 0 {
		t.Error("Expected max depth > 0 for 20 shapes")
	}

	expected := AABB{Min: NewVec3(0, 0, 0), Max: NewVec3(20, 1, 1)}
	if bvh.Box != expected {
		t.Errorf("Expected root box %v, got %v", expected, bvh.Box)
	}

	// Every node box must enclose its children
	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		for _, child := range []Hittable{node.Left, node.Right} {
			if !boxContains(node.Box, child.BoundingBox(0, 1)) {
				t.Errorf("Node box %v does not contain child box %v", node.Box, child.BoundingBox(0, 1))
			}
			if childNode, ok := child.(*BVHNode); ok {
				check(childNode)
			}
		}
	}
	check(bvh)
}

func TestBVH_IdenticalBoundingBoxes(t *testing.T) {
	sameBoundingBox := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	shapes := make([]Hittable, 5)
	for i := range shapes {
		shapes[i] = MockShape{
			boundingBox: sameBoundingBox,
			hitFn:       makeHitFn(float64(i + 1)),
		}
	}

	bvh, err := NewBVH(shapes, 0, 1, newTestRandom())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected closest hit at t=1.0, got t=%f", hit.T)
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	shapes := make([]Hittable, 10)
	for i := range shapes {
		shapes[i] = MockShape{
			boundingBox: NewAABB(NewVec3(float64(10-i), 0, 0), NewVec3(float64(11-i), 1, 1)),
			hitFn:       makeHitFn(float64(i)),
		}
	}
	first := shapes[0].(MockShape).boundingBox

	if _, err := NewBVH(shapes, 0, 1, newTestRandom()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if shapes[0].(MockShape).boundingBox != first {
		t.Error("NewBVH reordered the caller's slice")
	}
}
