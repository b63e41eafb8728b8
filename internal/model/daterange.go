package model

import "time"

// DateBucket names a time-range classification applied to a sale's
// creation timestamp for list filtering. Pure session state, never
// persisted.
type DateBucket string

const (
	BucketAll       DateBucket = "all"
	BucketToday     DateBucket = "today"
	BucketYesterday DateBucket = "yesterday"
	BucketThisWeek  DateBucket = "thisWeek"
	BucketThisMonth DateBucket = "thisMonth"
	BucketCustom    DateBucket = "custom"
)

// DateRange is one of six mutually exclusive selections. CustomDate is only
// meaningful for BucketCustom; picking any other bucket clears it.
type DateRange struct {
	Bucket     DateBucket
	CustomDate *time.Time
}

// ParseBucket maps the query value onto a known bucket, falling back to all.
func ParseBucket(s string) DateBucket {
	switch DateBucket(s) {
	case BucketToday, BucketYesterday, BucketThisWeek, BucketThisMonth, BucketCustom:
		return DateBucket(s)
	default:
		return BucketAll
	}
}

// WithBucket returns the range switched to b. Selecting a non-custom bucket
// drops any previously chosen custom date.
func (r DateRange) WithBucket(b DateBucket) DateRange {
	r.Bucket = b
	if b != BucketCustom {
		r.CustomDate = nil
	}
	return r
}

// Contains reports whether t falls inside the selected range relative to
// now. Bounds are inclusive on both ends. A custom selection without a
// chosen date degenerates to "always true".
func (r DateRange) Contains(t, now time.Time) bool {
	switch r.Bucket {
	case BucketToday:
		return within(t, startOfDay(now), endOfDay(now))
	case BucketYesterday:
		y := now.AddDate(0, 0, -1)
		return within(t, startOfDay(y), endOfDay(y))
	case BucketThisWeek:
		return within(t, startOfWeek(now), endOfDay(startOfWeek(now).AddDate(0, 0, 6)))
	case BucketThisMonth:
		return within(t, startOfMonth(now), endOfDay(endOfMonth(now)))
	case BucketCustom:
		if r.CustomDate == nil {
			return true
		}
		return within(t, startOfDay(*r.CustomDate), endOfDay(*r.CustomDate))
	default: // BucketAll
		return true
	}
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfWeek returns the Monday 00:00 of t's week.
func startOfWeek(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -back))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, -1)
}
