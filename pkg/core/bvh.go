package core

import (
	"math/rand"
	"sort"
)

// BVHNode is a node of a Bounding Volume Hierarchy. Children are either primitives or
// further BVH nodes. A node built over a single object references it from both sides.
// The tree is immutable after construction and safe for concurrent Hit calls.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   AABB // Encloses both children over the build shutter interval

	single bool // Left and Right are the same object
}

// boxedObject pairs an object with its bounding box so boxes are computed once per build
type boxedObject struct {
	object Hittable
	box    AABB
}

// NewBVH constructs a BVH over objects for the shutter interval [time0, time1].
// The split axis of every node is drawn from random; passing a seeded generator
// makes the tree shape reproducible.
func NewBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	// Work on a copy so the caller's slice order is untouched
	items := make([]boxedObject, len(objects))
	for i, object := range objects {
		items[i] = boxedObject{object: object, box: object.BoundingBox(time0, time1)}
	}

	return buildBVH(items, random), nil
}

// buildBVH recursively splits items at the midpoint after sorting along a random axis
func buildBVH(items []boxedObject, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	less := func(a, b boxedObject) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	var left, right boxedObject
	node := &BVHNode{}

	switch len(items) {
	case 1:
		left, right = items[0], items[0]
		node.single = true
	case 2:
		if less(items[0], items[1]) {
			left, right = items[0], items[1]
		} else {
			left, right = items[1], items[0]
		}
	default:
		sort.Slice(items, func(i, j int) bool {
			return less(items[i], items[j])
		})

		mid := len(items) / 2
		leftNode := buildBVH(items[:mid], random)
		rightNode := buildBVH(items[mid:], random)
		left = boxedObject{object: leftNode, box: leftNode.Box}
		right = boxedObject{object: rightNode, box: rightNode.Box}
	}

	node.Left = left.object
	node.Right = right.object
	node.Box = SurroundingBox(left.box, right.box)
	return node
}

// Hit returns the nearest intersection in (tMin, tMax) among all objects below this node
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	// A missed box prunes the whole subtree
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, isHitLeft := n.Left.Hit(ray, tMin, tMax)
	if n.single {
		return hitLeft, isHitLeft
	}

	// The right subtree may only report hits closer than the left one
	if isHitLeft {
		tMax = hitLeft.T
	}
	if hitRight, isHitRight := n.Right.Hit(ray, tMin, tMax); isHitRight {
		return hitRight, true
	}

	return hitLeft, isHitLeft
}

// BoundingBox returns the box cached at construction time
func (n *BVHNode) BoundingBox(time0, time1 float64) AABB {
	return n.Box
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes      int // Internal nodes, including single-object leaves
	Primitives int // Non-BVH children
	MaxDepth   int
}

// Stats walks the tree and returns statistics about its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.single {
		children = children[:1]
	}

	for _, child := range children {
		if childNode, ok := child.(*BVHNode); ok {
			childNode.collectStats(depth+1, stats)
		} else {
			stats.Primitives++
		}
	}
}
