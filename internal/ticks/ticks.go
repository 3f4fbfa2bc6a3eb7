// Package ticks converts between the .osr timestamp encoding, a count of
// 100-nanosecond ticks since 0001-01-01 00:00:00 UTC, and time.Time.
package ticks

import "time"

const (
	// perSecond is the number of 100ns ticks in one second.
	perSecond = 10_000_000

	// unixEpochOffset is the number of seconds between the tick epoch
	// (0001-01-01) and the Unix epoch (1970-01-01).
	unixEpochOffset = 62_135_596_800
)

// ToTime converts a tick count to a UTC timestamp, truncated to whole
// seconds. The field carries no sub-second resolution in practice.
func ToTime(t uint64) time.Time {
	return time.Unix(int64(t/perSecond)-unixEpochOffset, 0).UTC()
}

// FromTime converts a timestamp to ticks at second granularity.
func FromTime(t time.Time) uint64 {
	return uint64(t.Unix()+unixEpochOffset) * perSecond
}
