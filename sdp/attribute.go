package sdp

// Attribute represents the "a=" field.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5.13
//
// A nil Value marks a property (flag) attribute like "a=recvonly".
type Attribute struct {
	Key   string
	Value *string
}

// NewAttribute creates a value attribute "a=<key>:<value>".
func NewAttribute(key, value string) Attribute {
	return Attribute{Key: key, Value: &value}
}

// NewPropertyAttribute creates a flag attribute "a=<key>".
func NewPropertyAttribute(key string) Attribute {
	return Attribute{Key: key}
}

// IsProperty reports whether the attribute has no value.
func (a Attribute) IsProperty() bool { return a.Value == nil }

// Val returns the attribute value and whether it is set.
func (a Attribute) Val() (string, bool) {
	if a.Value == nil {
		return "", false
	}
	return *a.Value, true
}

func (a Attribute) String() string {
	if a.Value == nil {
		return a.Key
	}
	return a.Key + ":" + *a.Value
}

func lookupAttribute(attrs []Attribute, key string) (string, bool) {
	for _, a := range attrs {
		if a.Key == key {
			v, _ := a.Val()
			return v, true
		}
	}
	return "", false
}
