package broker

import (
	"math"
	"time"
)

const (
	maxTimeout = time.Duration(math.MaxInt32) * time.Millisecond
	minTimeout = time.Duration(math.MinInt32) * time.Millisecond
)

// nowMonotonic returns the current time using the runtime's monotonic clock
// reading. The broker never compares this value across process restarts, so
// the wall-clock component carried alongside it is incidental.
func nowMonotonic() time.Time { return time.Now() }

func timestamp(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

func timestampToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}

func duration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func milliseconds(d time.Duration) int32 {
	switch {
	case d > maxTimeout:
		d = maxTimeout
	case d < minTimeout:
		d = minTimeout
	}
	return int32(d / time.Millisecond)
}
