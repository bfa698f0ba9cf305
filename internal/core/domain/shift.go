package domain

import "strings"

// ShiftBucket is the classified category of a free-text shift pattern.
type ShiftBucket string

const (
	BucketFHD     ShiftBucket = "FHD"
	BucketFHN     ShiftBucket = "FHN"
	BucketBHD     ShiftBucket = "BHD"
	BucketBHN     ShiftBucket = "BHN"
	BucketFLEX    ShiftBucket = "FLEX"
	BucketUnknown ShiftBucket = "unknown"
)

// Buckets lists the countable buckets in display order. BucketUnknown is
// intentionally excluded: unclassified records never reach seat counting.
var Buckets = []ShiftBucket{BucketFHD, BucketFHN, BucketBHD, BucketBHN, BucketFLEX}

// Weekdays in site display order (the site week starts on Sunday).
var Weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// shiftRules is the ordered substring rule table for Classify.
// Order matters because tokens overlap: "RTN" must be checked before the plain
// "RT" rule, and "NB" before it too, or night RT shifts get bucketed as days.
var shiftRules = []struct {
	token  string
	bucket ShiftBucket
}{
	{"RTN", BucketBHN},
	{"DA", BucketFHD},
	{"DB", BucketBHD},
	{"DC", BucketFHD},
	{"NA", BucketFHN},
	{"NB", BucketBHN},
	{"RT", BucketBHD},
	{"FLEX", BucketFLEX},
}

// Classify maps a raw shift pattern (e.g. "DA5-1830") to its bucket.
// Matching is case-insensitive, first rule wins. Empty or unmatched input
// degrades to BucketUnknown; it never returns an error.
func Classify(pattern string) ShiftBucket {
	if pattern == "" {
		return BucketUnknown
	}
	s := strings.ToUpper(pattern)
	for _, r := range shiftRules {
		if strings.Contains(s, r.token) {
			return r.bucket
		}
	}
	return BucketUnknown
}

// ShiftDays maps each bucket to the weekdays it covers.
// Front-half shifts run Sunday through Wednesday, back-half shifts Wednesday
// through Saturday (Wednesday is shared), FLEX covers the whole week.
var ShiftDays = map[ShiftBucket][]string{
	BucketFHD:  {"Sunday", "Monday", "Tuesday", "Wednesday"},
	BucketFHN:  {"Sunday", "Monday", "Tuesday", "Wednesday"},
	BucketBHD:  {"Wednesday", "Thursday", "Friday", "Saturday"},
	BucketBHN:  {"Wednesday", "Thursday", "Friday", "Saturday"},
	BucketFLEX: {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
}

// ParseBucket normalizes a stored shift type string into a ShiftBucket.
// Anything that is not one of the five countable buckets is BucketUnknown.
func ParseBucket(s string) ShiftBucket {
	switch ShiftBucket(strings.ToUpper(strings.TrimSpace(s))) {
	case BucketFHD:
		return BucketFHD
	case BucketFHN:
		return BucketFHN
	case BucketBHD:
		return BucketBHD
	case BucketBHN:
		return BucketBHN
	case BucketFLEX:
		return BucketFLEX
	default:
		return BucketUnknown
	}
}

// EffectiveBucket resolves the bucket for a record: the stored shift type when
// it is a valid bucket, otherwise re-derived from the raw pattern. All read
// paths go through this accessor so a stale or blank stored value is never
// trusted blindly.
func EffectiveBucket(shiftType, shiftPattern string) ShiftBucket {
	if b := ParseBucket(shiftType); b != BucketUnknown {
		return b
	}
	return Classify(shiftPattern)
}
