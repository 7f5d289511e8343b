package sdp

import "strconv"

// ConnectionInformation represents the "c=" field.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5.7
type ConnectionInformation struct {
	NetworkType string
	AddressType string
	Address     *Address
}

func (c *ConnectionInformation) String() string {
	if c == nil {
		return ""
	}
	s := c.NetworkType + " " + c.AddressType
	if c.Address != nil {
		s += " " + c.Address.String()
	}
	return s
}

// Address is the connection address of the "c=" field.
//
// The parser keeps the whole third token in Address, so a multicast suffix like "/127" stays there.
// TTL and Range are rendered when set.
type Address struct {
	Address string
	TTL     *int
	Range   *int
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	s := a.Address
	if a.TTL != nil {
		s += "/" + strconv.Itoa(*a.TTL)
	}
	if a.Range != nil {
		s += "/" + strconv.Itoa(*a.Range)
	}
	return s
}
