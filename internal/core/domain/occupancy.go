package domain

// ShiftRecord is the minimal projection the aggregator needs from an
// accommodation record. Callers are responsible for pre-filtering to
// Approved + seated records before aggregating.
type ShiftRecord struct {
	ShiftPattern string
	ShiftType    string
}

// DayGrid maps weekday -> bucket -> coverage count. One record increments
// every day cell its bucket covers, so this models coverage, not headcount.
type DayGrid map[string]map[ShiftBucket]int

// DistinctCounts maps bucket -> number of distinct records in that bucket.
type DistinctCounts map[ShiftBucket]int

// NewDayGrid returns a grid zeroed for all 7 weekdays and 5 buckets, so the
// JSON shape is stable even when a day or bucket has no coverage.
func NewDayGrid() DayGrid {
	grid := make(DayGrid, len(Weekdays))
	for _, day := range Weekdays {
		cells := make(map[ShiftBucket]int, len(Buckets))
		for _, b := range Buckets {
			cells[b] = 0
		}
		grid[day] = cells
	}
	return grid
}

// NewDistinctCounts returns a zeroed per-bucket counter.
func NewDistinctCounts() DistinctCounts {
	counts := make(DistinctCounts, len(Buckets))
	for _, b := range Buckets {
		counts[b] = 0
	}
	return counts
}

// Aggregate builds the day-coverage grid and per-bucket distinct counts from
// one pass over the records. Both outputs come from the same record set: a
// bucket's total grid contribution is always distinct count times the span of
// its day set. Records that resolve to BucketUnknown are skipped silently and
// appear in neither output.
func Aggregate(records []ShiftRecord) (DayGrid, DistinctCounts) {
	grid := NewDayGrid()
	counts := NewDistinctCounts()

	for _, rec := range records {
		bucket := EffectiveBucket(rec.ShiftType, rec.ShiftPattern)
		days, ok := ShiftDays[bucket]
		if !ok {
			continue
		}
		for _, day := range days {
			grid[day][bucket]++
		}
		counts[bucket]++
	}

	return grid, counts
}
