package sdp

import (
	"fmt"
	"strconv"
)

// Session holds the session-level fields of a session description.
//
// Version, Origin and Name are nil until their line is parsed.
// The optional string fields are omitted on render when empty.
type Session struct {
	// v=0
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.1
	Version *int
	// o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.2
	Origin *Origin
	// s=<session name>
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.3
	Name *string
	// i=<session description>
	Information string
	// u=<uri>
	URI string
	// e=<email-address>
	Email string
	// p=<phone-number>
	Phone string
	// c=<nettype> <addrtype> <connection-address>
	Connection *ConnectionInformation
	// b=<bwtype>:<bandwidth>
	Bandwidths []Bandwidth
	// z=<adjustment time> <offset> <adjustment time> <offset> ...
	// https://datatracker.ietf.org/doc/html/rfc4566#section-5.11
	TimeZones []TimeZone
	// k=<method>[:<encryption key>]
	EncryptionKey string
	// a=<attribute>[:<value>]
	Attributes []Attribute
}

// Attribute returns the value of the first session attribute with the given key.
// The second result reports whether the attribute is present.
func (s *Session) Attribute(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	return lookupAttribute(s.Attributes, key)
}

// Origin represents the "o=" field.
type Origin struct {
	Username       string
	SessionID      uint64
	SessionVersion uint64
	NetworkType    string
	AddressType    string
	UnicastAddress string
}

func (o *Origin) String() string {
	if o == nil {
		return ""
	}
	return fmt.Sprintf("%s %d %d %s %s %s",
		o.Username, o.SessionID, o.SessionVersion, o.NetworkType, o.AddressType, o.UnicastAddress)
}

// TimeZone is one adjustment of the "z=" field.
type TimeZone struct {
	AdjustmentTime uint64
	// Offset in seconds.
	Offset int64
}

func (tz TimeZone) String() string {
	return strconv.FormatUint(tz.AdjustmentTime, 10) + " " + strconv.FormatInt(tz.Offset, 10)
}
