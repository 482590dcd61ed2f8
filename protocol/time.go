package protocol

import "time"

// Timestamp converts a time.Time to a Kafka wire timestamp: milliseconds
// since the Unix epoch. A zero time encodes as 0.
func Timestamp(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

// MakeTime converts a Kafka wire timestamp back to a time.Time.
func MakeTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC()
}
