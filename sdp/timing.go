package sdp

import (
	"strconv"
	"strings"
)

// TimeDescription groups a "t=" field with the "r=" fields that follow it.
type TimeDescription struct {
	// t=<start-time> <stop-time>
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.9
	Timing Timing
	// r=<repeat interval> <active duration> <offsets from start-time>
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.10
	RepeatTimes []RepeatTime
}

// Timing holds the start and stop times of the "t=" field.
type Timing struct {
	Start uint64
	Stop  uint64
}

func (t Timing) String() string {
	return strconv.FormatUint(t.Start, 10) + " " + strconv.FormatUint(t.Stop, 10)
}

// RepeatTime represents the "r=" field.
// All values are in seconds, shorthand units like "7d" are expanded by the parser.
type RepeatTime struct {
	Interval int64
	Duration int64
	Offsets  []int64
}

func (r RepeatTime) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(r.Interval, 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatInt(r.Duration, 10))
	for _, off := range r.Offsets {
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatInt(off, 10))
	}
	return sb.String()
}
