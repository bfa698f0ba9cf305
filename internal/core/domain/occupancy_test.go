package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateSingleRecord(t *testing.T) {
	grid, counts := Aggregate([]ShiftRecord{
		{ShiftPattern: "DA5-1830", ShiftType: "FHD"},
	})

	require.Len(t, grid, 7)
	for _, day := range ShiftDays[BucketFHD] {
		assert.Equal(t, 1, grid[day][BucketFHD], "day %s", day)
	}
	assert.Equal(t, 0, grid["Thursday"][BucketFHD])
	assert.Equal(t, 0, grid["Friday"][BucketFHD])
	assert.Equal(t, 0, grid["Saturday"][BucketFHD])

	// Distinct count is 1 regardless of the 4-day span
	assert.Equal(t, 1, counts[BucketFHD])
	for _, b := range []ShiftBucket{BucketFHN, BucketBHD, BucketBHN, BucketFLEX} {
		assert.Equal(t, 0, counts[b])
	}
}

func TestAggregateUnknownExcluded(t *testing.T) {
	grid, counts := Aggregate([]ShiftRecord{
		{ShiftPattern: "ZZ9", ShiftType: ""},
		{ShiftPattern: "", ShiftType: "unknown"},
	})

	for _, day := range Weekdays {
		for _, b := range Buckets {
			assert.Equal(t, 0, grid[day][b])
		}
	}
	for _, b := range Buckets {
		assert.Equal(t, 0, counts[b])
	}
}

func TestAggregateFallsBackToPattern(t *testing.T) {
	// Stale stored values are never trusted blindly
	_, counts := Aggregate([]ShiftRecord{
		{ShiftPattern: "NB2200", ShiftType: "unknown"},
	})
	assert.Equal(t, 1, counts[BucketBHN])

	// But a valid stored bucket wins over a contradicting pattern
	_, counts = Aggregate([]ShiftRecord{
		{ShiftPattern: "NB2200", ShiftType: "FHD"},
	})
	assert.Equal(t, 1, counts[BucketFHD])
	assert.Equal(t, 0, counts[BucketBHN])
}

func TestAggregateFlexSpansWholeWeek(t *testing.T) {
	grid, counts := Aggregate([]ShiftRecord{
		{ShiftPattern: "FLEXPT", ShiftType: ""},
	})

	for _, day := range Weekdays {
		assert.Equal(t, 1, grid[day][BucketFLEX], "day %s", day)
	}
	assert.Equal(t, 1, counts[BucketFLEX])
}

func TestAggregateScenario(t *testing.T) {
	// Three approved seated submissions: two front-half days, one back-half night
	grid, counts := Aggregate([]ShiftRecord{
		{ShiftPattern: "DA1"},
		{ShiftPattern: "DA2"},
		{ShiftPattern: "RTN1"},
	})

	assert.Equal(t, DistinctCounts{
		BucketFHD: 2, BucketFHN: 0, BucketBHD: 0, BucketBHN: 1, BucketFLEX: 0,
	}, counts)

	// Wednesday is covered by both the FHD and BHN day sets
	assert.Equal(t, map[ShiftBucket]int{
		BucketFHD: 2, BucketFHN: 0, BucketBHD: 0, BucketBHN: 1, BucketFLEX: 0,
	}, grid["Wednesday"])

	// Thursday only sees the back-half record
	assert.Equal(t, map[ShiftBucket]int{
		BucketFHD: 0, BucketFHN: 0, BucketBHD: 0, BucketBHN: 1, BucketFLEX: 0,
	}, grid["Thursday"])
}

func TestAggregateGridConsistentWithDistinctCounts(t *testing.T) {
	records := []ShiftRecord{
		{ShiftPattern: "DA1"}, {ShiftPattern: "DA2"}, {ShiftPattern: "NB1"},
		{ShiftPattern: "RTN9"}, {ShiftPattern: "RT4"}, {ShiftPattern: "FLEX-A"},
		{ShiftPattern: "NA7"}, {ShiftPattern: "bogus"},
	}
	grid, counts := Aggregate(records)

	// A bucket's total grid contribution equals its distinct count times its
	// day span, since both structures come from the same record set
	for _, b := range Buckets {
		total := 0
		for _, day := range Weekdays {
			total += grid[day][b]
		}
		assert.Equal(t, counts[b]*len(ShiftDays[b]), total, "bucket %s", b)
	}
}
