package sdp

import "strconv"

// State is a state of the session description grammar.
// Each state names the first field it accepts, later fields of its section are accepted too.
type State int

const (
	StateVersion State = iota
	StateOrigin
	StateName
	StateSessionInfo
	StateSessionURI
	StateSessionEmail
	StateSessionPhone
	StateSessionConn
	StateSessionBandwidth
	StateTime
	StateSessionTimeZone
	StateSessionAttr
	StateMedia
	StateMediaTitle
	StateMediaConn
	StateMediaAttr

	numStates int = iota
)

var stateNames = [...]string{
	StateVersion:          "version",
	StateOrigin:           "origin",
	StateName:             "session name",
	StateSessionInfo:      "session information",
	StateSessionURI:       "session uri",
	StateSessionEmail:     "session email",
	StateSessionPhone:     "session phone",
	StateSessionConn:      "session connection",
	StateSessionBandwidth: "session bandwidth",
	StateTime:             "time",
	StateSessionTimeZone:  "session time zone",
	StateSessionAttr:      "session attribute",
	StateMedia:            "media",
	StateMediaTitle:       "media title",
	StateMediaConn:        "media connection",
	StateMediaAttr:        "media attribute",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Accepting reports whether the input may end in this state.
func (s State) Accepting() bool {
	return s >= 0 && int(s) < numStates && accepting[s]
}

func (s State) inMedia() bool { return s >= StateMedia }

// Field keys.
const (
	keyVersion    = "v="
	keyOrigin     = "o="
	keyName       = "s="
	keyInfo       = "i="
	keyURI        = "u="
	keyEmail      = "e="
	keyPhone      = "p="
	keyConn       = "c="
	keyBandwidth  = "b="
	keyTiming     = "t="
	keyRepeatTime = "r="
	keyTimeZones  = "z="
	keyEncKey     = "k="
	keyAttr       = "a="
	keyMedia      = "m="
)

type transitionTable [numStates]map[string]State

// strictTransitions follows the field order of RFC 4566 Section 5.
//
//	+-----------------------+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
//	| state                 | v | o | s | i | u | e | p | c | b | t | r | z | k | a | m |
//	+-----------------------+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
//	| 0  version            | 1 |   |   |   |   |   |   |   |   |   |   |   |   |   |   |
//	| 1  origin             |   | 2 |   |   |   |   |   |   |   |   |   |   |   |   |   |
//	| 2  session name       |   |   | 3 |   |   |   |   |   |   |   |   |   |   |   |   |
//	| 3  session info       |   |   |   | 4 | 5 | 6 | 7 | 8 | 8 | 9 |   |   |   |   |   |
//	| 4  session uri        |   |   |   |   | 5 | 6 | 7 | 8 | 8 | 9 |   |   |   |   |   |
//	| 5  session email      |   |   |   |   |   | 6 | 7 | 8 | 8 | 9 |   |   |   |   |   |
//	| 6  session phone      |   |   |   |   |   |   | 7 | 8 | 8 | 9 |   |   |   |   |   |
//	| 7  session connection |   |   |   |   |   |   |   | 8 | 8 | 9 |   |   |   |   |   |
//	| 8  session bandwidth  |   |   |   |   |   |   |   |   | 8 | 9 |   |   |   |   |   |
//	| 9  time *             |   |   |   |   |   |   |   |   |   | 9 | 9 |10 |11 |11 |12 |
//	| 10 session time zone *|   |   |   |   |   |   |   |   |   |   |   |   |11 |11 |12 |
//	| 11 session attribute *|   |   |   |   |   |   |   |   |   |   |   |   |   |11 |12 |
//	| 12 media *            |   |   |   |13 |   |   |   |14 |14 |   |   |   |15 |15 |12 |
//	| 13 media title *      |   |   |   |   |   |   |   |14 |14 |   |   |   |15 |15 |12 |
//	| 14 media connection * |   |   |   |   |   |   |   |   |14 |   |   |   |15 |15 |12 |
//	| 15 media attribute *  |   |   |   |   |   |   |   |   |   |   |   |   |   |15 |12 |
//	+-----------------------+---+---+---+---+---+---+---+---+---+---+---+---+---+---+---+
//
// States marked with * accept the end of input.
var strictTransitions = transitionTable{
	StateVersion: {keyVersion: StateOrigin},
	StateOrigin:  {keyOrigin: StateName},
	StateName:    {keyName: StateSessionInfo},
	StateSessionInfo: {
		keyInfo:      StateSessionURI,
		keyURI:       StateSessionEmail,
		keyEmail:     StateSessionPhone,
		keyPhone:     StateSessionConn,
		keyConn:      StateSessionBandwidth,
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateSessionURI: {
		keyURI:       StateSessionEmail,
		keyEmail:     StateSessionPhone,
		keyPhone:     StateSessionConn,
		keyConn:      StateSessionBandwidth,
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateSessionEmail: {
		keyEmail:     StateSessionPhone,
		keyPhone:     StateSessionConn,
		keyConn:      StateSessionBandwidth,
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateSessionPhone: {
		keyPhone:     StateSessionConn,
		keyConn:      StateSessionBandwidth,
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateSessionConn: {
		keyConn:      StateSessionBandwidth,
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateSessionBandwidth: {
		keyBandwidth: StateSessionBandwidth,
		keyTiming:    StateTime,
	},
	StateTime: {
		keyTiming:     StateTime,
		keyRepeatTime: StateTime,
		keyTimeZones:  StateSessionTimeZone,
		keyEncKey:     StateSessionAttr,
		keyAttr:       StateSessionAttr,
		keyMedia:      StateMedia,
	},
	StateSessionTimeZone: {
		keyEncKey: StateSessionAttr,
		keyAttr:   StateSessionAttr,
		keyMedia:  StateMedia,
	},
	StateSessionAttr: {
		keyAttr:  StateSessionAttr,
		keyMedia: StateMedia,
	},
	StateMedia: {
		keyInfo:      StateMediaTitle,
		keyConn:      StateMediaConn,
		keyBandwidth: StateMediaConn,
		keyEncKey:    StateMediaAttr,
		keyAttr:      StateMediaAttr,
		keyMedia:     StateMedia,
	},
	StateMediaTitle: {
		keyConn:      StateMediaConn,
		keyBandwidth: StateMediaConn,
		keyEncKey:    StateMediaAttr,
		keyAttr:      StateMediaAttr,
		keyMedia:     StateMedia,
	},
	StateMediaConn: {
		keyBandwidth: StateMediaConn,
		keyEncKey:    StateMediaAttr,
		keyAttr:      StateMediaAttr,
		keyMedia:     StateMedia,
	},
	StateMediaAttr: {
		keyAttr:  StateMediaAttr,
		keyMedia: StateMedia,
	},
}

// lenientExtras are the out of order media fields emitted by some generators.
// A late field moves the media section back to the state its field leads to in strictTransitions.
var lenientExtras = transitionTable{
	StateMediaAttr: {
		keyInfo:      StateMediaTitle,
		keyConn:      StateMediaConn,
		keyBandwidth: StateMediaConn,
		keyEncKey:    StateMediaAttr,
	},
}

var lenientTransitions = mergeTransitions(strictTransitions, lenientExtras)

var accepting = [numStates]bool{
	StateTime:            true,
	StateSessionTimeZone: true,
	StateSessionAttr:     true,
	StateMedia:           true,
	StateMediaTitle:      true,
	StateMediaConn:       true,
	StateMediaAttr:       true,
}

func mergeTransitions(base, extra transitionTable) transitionTable {
	var tbl transitionTable
	for s := range tbl {
		tbl[s] = make(map[string]State, len(base[s])+len(extra[s]))
		for k, n := range base[s] {
			tbl[s][k] = n
		}
		for k, n := range extra[s] {
			tbl[s][k] = n
		}
	}
	return tbl
}

// next returns the state the field key leads to from s.
func (tbl *transitionTable) next(s State, key string) (State, bool) {
	if s < 0 || int(s) >= numStates {
		return s, false
	}
	n, ok := tbl[s][key]
	return n, ok
}

// keys returns the field keys accepted in s, in the RFC field order.
func (tbl *transitionTable) keys(s State) []string {
	var keys []string
	for _, k := range fieldOrder {
		if _, ok := tbl[s][k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

var fieldOrder = []string{
	keyVersion, keyOrigin, keyName, keyInfo, keyURI, keyEmail, keyPhone, keyConn,
	keyBandwidth, keyTiming, keyRepeatTime, keyTimeZones, keyEncKey, keyAttr, keyMedia,
}
