package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Wednesday afternoon, fixed zone for determinism.
var now = time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestTodayBucketBoundaries(t *testing.T) {
	rng := DateRange{Bucket: BucketToday}

	assert.True(t, rng.Contains(at(2026, 8, 26, 0, 0), now), "start of day is included")
	assert.True(t, rng.Contains(time.Date(2026, 8, 26, 23, 59, 59, 999_000_000, time.UTC), now))
	assert.False(t, rng.Contains(at(2026, 8, 27, 0, 0), now), "past end of day is excluded")
	assert.False(t, rng.Contains(at(2026, 8, 25, 23, 59), now))
}

func TestYesterdayBucket(t *testing.T) {
	rng := DateRange{Bucket: BucketYesterday}

	assert.True(t, rng.Contains(at(2026, 8, 25, 0, 0), now))
	assert.True(t, rng.Contains(at(2026, 8, 25, 23, 59), now))
	assert.False(t, rng.Contains(at(2026, 8, 26, 0, 0), now))
	assert.False(t, rng.Contains(at(2026, 8, 24, 23, 59), now))
}

func TestThisWeekStartsMonday(t *testing.T) {
	rng := DateRange{Bucket: BucketThisWeek}

	assert.True(t, rng.Contains(at(2026, 8, 24, 0, 0), now), "Monday 00:00")
	assert.True(t, rng.Contains(at(2026, 8, 30, 23, 59), now), "Sunday night")
	assert.False(t, rng.Contains(at(2026, 8, 23, 23, 59), now), "previous Sunday")
	assert.False(t, rng.Contains(at(2026, 8, 31, 0, 0), now), "next Monday")
}

func TestThisWeekWhenNowIsSunday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	rng := DateRange{Bucket: BucketThisWeek}

	assert.True(t, rng.Contains(at(2026, 8, 24, 0, 0), sunday), "week still starts on the 24th")
	assert.False(t, rng.Contains(at(2026, 8, 31, 0, 0), sunday))
}

func TestThisMonthBucket(t *testing.T) {
	rng := DateRange{Bucket: BucketThisMonth}

	assert.True(t, rng.Contains(at(2026, 8, 1, 0, 0), now))
	assert.True(t, rng.Contains(at(2026, 8, 31, 23, 59), now))
	assert.False(t, rng.Contains(at(2026, 7, 31, 23, 59), now))
	assert.False(t, rng.Contains(at(2026, 9, 1, 0, 0), now))
}

func TestCustomBucket(t *testing.T) {
	day := at(2026, 8, 10, 0, 0)
	rng := DateRange{Bucket: BucketCustom, CustomDate: &day}

	assert.True(t, rng.Contains(at(2026, 8, 10, 12, 0), now))
	assert.False(t, rng.Contains(at(2026, 8, 11, 0, 0), now))
}

func TestCustomBucketWithoutDateMatchesEverything(t *testing.T) {
	rng := DateRange{Bucket: BucketCustom}

	assert.True(t, rng.Contains(at(1999, 1, 1, 0, 0), now))
	assert.True(t, rng.Contains(at(2030, 12, 31, 23, 59), now))
}

func TestAllBucketMatchesEverything(t *testing.T) {
	rng := DateRange{Bucket: BucketAll}
	assert.True(t, rng.Contains(at(1999, 1, 1, 0, 0), now))
}

func TestWithBucketClearsCustomDate(t *testing.T) {
	day := at(2026, 8, 10, 0, 0)
	rng := DateRange{Bucket: BucketCustom, CustomDate: &day}

	switched := rng.WithBucket(BucketToday)
	assert.Nil(t, switched.CustomDate)
	assert.Equal(t, BucketToday, switched.Bucket)

	kept := rng.WithBucket(BucketCustom)
	assert.NotNil(t, kept.CustomDate)
}

func TestParseBucketFallsBackToAll(t *testing.T) {
	assert.Equal(t, BucketThisWeek, ParseBucket("thisWeek"))
	assert.Equal(t, BucketAll, ParseBucket(""))
	assert.Equal(t, BucketAll, ParseBucket("nonsense"))
}
