package cmd

import (
	"flag"
	"reflect"
	"testing"

	"github.com/urfave/cli"
)

func TestWorkerCounts(t *testing.T) {
	tests := []struct {
		max      int
		expected []int
	}{
		{1, []int{1}},
		{2, []int{1, 2}},
		{4, []int{1, 2, 4}},
		{6, []int{1, 2, 4, 6}},
		{8, []int{1, 2, 4, 8}},
		{12, []int{1, 2, 4, 8, 12}},
	}

	for _, tt := range tests {
		got := workerCounts(tt.max)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("workerCounts(%d) = %v, expected %v", tt.max, got, tt.expected)
		}
	}
}

func TestBench(t *testing.T) {
	set := flag.NewFlagSet("bench", flag.ContinueOnError)
	set.String("scene", "three-spheres", "")
	set.Int("width", 16, "")
	set.Int("spp", 1, "")
	set.Int("depth", 3, "")
	set.Int("max-workers", 2, "")
	set.Int64("seed", 42, "")

	if err := Bench(cli.NewContext(cli.NewApp(), set, nil)); err != nil {
		t.Fatalf("Bench failed: %v", err)
	}
}

func TestBenchUnknownScene(t *testing.T) {
	set := flag.NewFlagSet("bench", flag.ContinueOnError)
	set.String("scene", "nonexistent", "")
	set.Int("width", 16, "")
	set.Int("spp", 1, "")
	set.Int("depth", 3, "")
	set.Int("max-workers", 1, "")
	set.Int64("seed", 42, "")

	if err := Bench(cli.NewContext(cli.NewApp(), set, nil)); err == nil {
		t.Error("Expected error for unknown scene")
	}
}
