package renderer

import (
	"fmt"
	"testing"
)

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		height, workers int
		expected        []RowRange
	}{
		{10, 1, []RowRange{{0, 10}}},
		{10, 2, []RowRange{{0, 5}, {5, 10}}},
		{10, 3, []RowRange{{0, 3}, {3, 6}, {6, 10}}},
		{10, 4, []RowRange{{0, 2}, {2, 4}, {4, 6}, {6, 10}}},
		{3, 8, []RowRange{{0, 1}, {1, 2}, {2, 3}}},
		{5, 0, []RowRange{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d rows %d workers", tt.height, tt.workers), func(t *testing.T) {
			ranges := PartitionRows(tt.height, tt.workers)
			if len(ranges) != len(tt.expected) {
				t.Fatalf("Expected %d ranges, got %d: %v", len(tt.expected), len(ranges), ranges)
			}
			for i := range ranges {
				if ranges[i] != tt.expected[i] {
					t.Errorf("Range %d: expected %v, got %v", i, tt.expected[i], ranges[i])
				}
			}
		})
	}
}

func TestPartitionRows_CoversEveryRowOnce(t *testing.T) {
	for height := 1; height <= 64; height++ {
		for workers := 1; workers <= 16; workers++ {
			seen := make([]int, height)
			for _, r := range PartitionRows(height, workers) {
				if r.Len() <= 0 {
					t.Fatalf("height=%d workers=%d: empty range %v", height, workers, r)
				}
				for j := r.Start; j < r.End; j++ {
					seen[j]++
				}
			}
			for j, count := range seen {
				if count != 1 {
					t.Fatalf("height=%d workers=%d: row %d covered %d times", height, workers, j, count)
				}
			}
		}
	}
}

func TestPartitionRows_EmptyFrame(t *testing.T) {
	if ranges := PartitionRows(0, 4); ranges != nil {
		t.Errorf("Expected no ranges for an empty frame, got %v", ranges)
	}
}
