package sdp

import "strconv"

// Bandwidth represents the "b=" field.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5.8
type Bandwidth struct {
	// Experimental is set when the type has the "X-" prefix, the prefix itself is not kept in Type.
	Experimental bool
	Type         string
	Value        uint64
}

func (b Bandwidth) String() string {
	var prefix string
	if b.Experimental {
		prefix = "X-"
	}
	return prefix + b.Type + ":" + strconv.FormatUint(b.Value, 10)
}
