package weather

import "time"

// ResolveLocalTime converts a UTC epoch timestamp into the wall-clock time at
// a location with the given UTC offset. The result is pinned to a fixed-offset
// zone, so its calendar fields depend only on the two arguments and never on
// the timezone of the machine evaluating the call. Every calendar field is
// derived from the timestamp itself; nothing is borrowed from "now".
func ResolveLocalTime(epochSeconds int64, utcOffsetSeconds int) time.Time {
	zone := time.FixedZone("", utcOffsetSeconds)
	return time.Unix(epochSeconds, 0).In(zone)
}

// LocalDateKey returns the location-local calendar date of a UTC epoch
// timestamp as a sortable YYYY-MM-DD key, used to group forecast samples into
// days on the location's calendar rather than the viewer's.
func LocalDateKey(epochSeconds int64, utcOffsetSeconds int) string {
	return ResolveLocalTime(epochSeconds, utcOffsetSeconds).Format("2006-01-02")
}
