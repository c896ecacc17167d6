package renderer

// RowRange is a half-open range [Start, End) of internal row indices
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the range
func (r RowRange) Len() int {
	return r.End - r.Start
}

// PartitionRows splits height rows into contiguous ranges, one per worker. Every worker gets
// height/workers rows and the last one also takes the remainder. Workers are capped to
// height so no range is empty.
func PartitionRows(height, workers int) []RowRange {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	rowsPerWorker := height / workers
	ranges := make([]RowRange, workers)
	for i := range ranges {
		ranges[i] = RowRange{Start: i * rowsPerWorker, End: (i + 1) * rowsPerWorker}
	}
	ranges[workers-1].End = height

	return ranges
}
