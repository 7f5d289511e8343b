package sdp

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// MediaDescription holds a "m=" field and the media-level fields that follow it.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5.14
type MediaDescription struct {
	// m=<media> <port>[/<number of ports>] <proto> <fmt> ...
	MediaName MediaName
	// i=<media title>
	Title string
	// c=<nettype> <addrtype> <connection-address>
	Connection *ConnectionInformation
	// b=<bwtype>:<bandwidth>
	Bandwidths []Bandwidth
	// k=<method>[:<encryption key>]
	EncryptionKey string
	// a=<attribute>[:<value>]
	Attributes []Attribute
}

// Attribute returns the value of the first media attribute with the given key.
// The second result reports whether the attribute is present.
func (m *MediaDescription) Attribute(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	return lookupAttribute(m.Attributes, key)
}

// ExtMaps decodes every "a=extmap" attribute of the media description in order.
func (m *MediaDescription) ExtMaps() ([]ExtMap, error) {
	if m == nil {
		return nil, nil
	}

	var exts []ExtMap
	for _, a := range m.Attributes {
		if a.Key != AttrKeyExtMap {
			continue
		}
		e, err := ParseExtMap(a.String())
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		exts = append(exts, e)
	}
	return exts, nil
}

// MediaName represents the value of the "m=" field.
type MediaName struct {
	Media   string
	Port    RangedPort
	Protos  []string
	Formats []string
}

func (n MediaName) String() string {
	parts := make([]string, 0, 3+len(n.Formats))
	parts = append(parts, n.Media, n.Port.String(), strings.Join(n.Protos, "/"))
	parts = append(parts, n.Formats...)
	return strings.Join(parts, " ")
}

// RangedPort is a port with an optional number of ports, "<port>[/<number of ports>]".
type RangedPort struct {
	Value int
	Range *int
}

func (p RangedPort) String() string {
	s := strconv.Itoa(p.Value)
	if p.Range != nil {
		s += "/" + strconv.Itoa(*p.Range)
	}
	return s
}
