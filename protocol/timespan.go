package protocol

import "time"

// j2kEpoch is 2000-01-01T12:00:00Z as unix seconds. Winston timestamps
// on the wire are seconds relative to this instant ("J2kSec").
const j2kEpoch = 946728000

// J2kFromTime converts a wall-clock instant to J2kSec.
func J2kFromTime(t time.Time) float64 {
	return float64(t.UnixNano())/float64(time.Second) - j2kEpoch
}

// TimeFromJ2k converts J2kSec back to a wall-clock instant in UTC.
func TimeFromJ2k(j2k float64) time.Time {
	return time.Unix(0, int64((j2k+j2kEpoch)*float64(time.Second))).UTC()
}

// TimeSpan is the ordered pair of instants bounding a data request.
type TimeSpan struct {
	Start time.Time
	End   time.Time
}

// NewTimeSpan builds a TimeSpan, swapping the bounds if they arrive
// reversed so Start never follows End.
func NewTimeSpan(start, end time.Time) TimeSpan {
	if end.Before(start) {
		start, end = end, start
	}

	return TimeSpan{Start: start, End: end}
}
