package sdp

// Direction is the media direction of an extmap attribute.
type Direction uint8

const (
	DirectionUnspecified Direction = iota
	DirectionSendRecv
	DirectionSendOnly
	DirectionRecvOnly
	DirectionInactive
)

var directionNames = [...]string{
	DirectionUnspecified: "",
	DirectionSendRecv:    "sendrecv",
	DirectionSendOnly:    "sendonly",
	DirectionRecvOnly:    "recvonly",
	DirectionInactive:    "inactive",
}

// ParseDirection converts a direction name to [Direction].
// Unknown names result in [DirectionUnspecified].
func ParseDirection(s string) Direction {
	for d, name := range directionNames {
		if name != "" && name == s {
			return Direction(d)
		}
	}
	return DirectionUnspecified
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return ""
}
