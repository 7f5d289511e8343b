package sdp

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gosdp/internal/grammar"
	"github.com/ghettovoice/gosdp/internal/util"
)

// Registered token sets.
// https://datatracker.ietf.org/doc/html/rfc4566#section-8.2
var (
	netTypes   = []string{"IN"}
	addrTypes  = []string{"IP4", "IP6"}
	bwTypes    = []string{"CT", "AS"}
	mediaKinds = []string{"audio", "video", "text", "application", "message"}
	protoNames = []string{"UDP", "RTP", "AVP", "SAVP", "SAVPF", "TLS", "DTLS", "SCTP", "AVPF"}
)

const bwExperimentalPrefix = "X-"

func checkRegistered(tok string, set []string) error {
	if util.IndexOf(tok, set...) == -1 {
		return errtrace.Wrap(newInvalidValueErr("%q is not a registered value", tok))
	}
	return nil
}

func parseUint(s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, errtrace.Wrap(newInvalidNumberErr(err))
	}
	return v, nil
}

// newNumSyntaxErr reports a token rejected by the grammar the way strconv does.
func newNumSyntaxErr(fn, s string) error {
	return newInvalidNumberErr(&strconv.NumError{Func: fn, Num: s, Err: strconv.ErrSyntax}) //errtrace:skip
}

func parseInt(s string, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, errtrace.Wrap(newInvalidNumberErr(err))
	}
	return v, nil
}

// decodeVersion decodes "v=0".
func decodeVersion(l line) (int, error) {
	v, err := parseInt(l.value, 0)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	// https://datatracker.ietf.org/doc/html/rfc8829#section-5.2.1
	if v != 0 {
		return 0, errtrace.Wrap(newInvalidValueErr("unsupported version %q", l.value))
	}
	return int(v), nil
}

// decodeOrigin decodes "o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>".
func decodeOrigin(l line) (*Origin, error) {
	fields := strings.Fields(l.value)
	if len(fields) != 6 {
		return nil, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	sessID, err := parseUint(fields[1], 64)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	sessVer, err := parseUint(fields[2], 64)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := checkRegistered(fields[3], netTypes); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := checkRegistered(fields[4], addrTypes); err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &Origin{
		Username:       fields[0],
		SessionID:      sessID,
		SessionVersion: sessVer,
		NetworkType:    fields[3],
		AddressType:    fields[4],
		UnicastAddress: fields[5],
	}, nil
}

// decodeURI validates "u=<uri>" and returns it unchanged.
func decodeURI(l line) (string, error) {
	if _, err := url.Parse(l.value); err != nil {
		return "", errtrace.Wrap(newInvalidValueErr(err))
	}
	return l.value, nil
}

// decodeConnection decodes "c=<nettype> <addrtype> [<connection-address>]".
func decodeConnection(l line) (*ConnectionInformation, error) {
	fields := strings.Fields(l.value)
	if len(fields) < 2 {
		return nil, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}
	if err := checkRegistered(fields[0], netTypes); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := checkRegistered(fields[1], addrTypes); err != nil {
		return nil, errtrace.Wrap(err)
	}

	conn := &ConnectionInformation{
		NetworkType: fields[0],
		AddressType: fields[1],
	}
	if len(fields) > 2 {
		conn.Address = &Address{Address: fields[2]}
	}
	return conn, nil
}

// decodeBandwidth decodes "b=<bwtype>:<bandwidth>".
func decodeBandwidth(l line) (Bandwidth, error) {
	parts := strings.Split(l.value, ":")
	if len(parts) != 2 || !grammar.IsToken(parts[0]) {
		return Bandwidth{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	var bw Bandwidth
	if typ, ok := strings.CutPrefix(parts[0], bwExperimentalPrefix); ok {
		if typ == "" {
			return Bandwidth{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
		}
		bw.Experimental = true
		bw.Type = typ
	} else {
		if err := checkRegistered(parts[0], bwTypes); err != nil {
			return Bandwidth{}, errtrace.Wrap(err)
		}
		bw.Type = parts[0]
	}

	v, err := parseUint(parts[1], 64)
	if err != nil {
		return Bandwidth{}, errtrace.Wrap(err)
	}
	bw.Value = v
	return bw, nil
}

// decodeTiming decodes "t=<start-time> <stop-time>".
func decodeTiming(l line) (Timing, error) {
	fields := strings.Fields(l.value)
	if len(fields) < 2 {
		return Timing{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	start, err := parseUint(fields[0], 64)
	if err != nil {
		return Timing{}, errtrace.Wrap(err)
	}
	stop, err := parseUint(fields[1], 64)
	if err != nil {
		return Timing{}, errtrace.Wrap(err)
	}
	return Timing{Start: start, Stop: stop}, nil
}

// decodeRepeatTime decodes "r=<repeat interval> <active duration> <offsets from start-time>".
func decodeRepeatTime(l line) (RepeatTime, error) {
	fields := strings.Fields(l.value)
	if len(fields) < 3 {
		return RepeatTime{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	interval, err := decodeTimeUnits(fields[0])
	if err != nil {
		return RepeatTime{}, errtrace.Wrap(err)
	}
	dur, err := decodeTimeUnits(fields[1])
	if err != nil {
		return RepeatTime{}, errtrace.Wrap(err)
	}

	offsets := make([]int64, 0, len(fields)-2)
	for _, f := range fields[2:] {
		off, err := decodeTimeUnits(f)
		if err != nil {
			return RepeatTime{}, errtrace.Wrap(err)
		}
		offsets = append(offsets, off)
	}
	return RepeatTime{Interval: interval, Duration: dur, Offsets: offsets}, nil
}

// decodeTimeZones decodes "z=<adjustment time> <offset> <adjustment time> <offset> ...".
func decodeTimeZones(l line) ([]TimeZone, error) {
	fields := strings.Fields(l.value)
	if len(fields)%2 != 0 {
		return nil, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	tzs := make([]TimeZone, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		adj, err := parseUint(fields[i], 64)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		off, err := decodeTimeUnits(fields[i+1])
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		tzs = append(tzs, TimeZone{AdjustmentTime: adj, Offset: off})
	}
	return tzs, nil
}

var timeUnits = map[byte]int64{
	'd': 86400,
	'h': 3600,
	'm': 60,
	's': 1,
}

// decodeTimeUnits expands the typed time shorthand, "7d" is 604800 seconds.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5.10
func decodeTimeUnits(s string) (int64, error) {
	num, unit, ok := grammar.SplitTypedTime(s)
	if !ok {
		return 0, errtrace.Wrap(newNumSyntaxErr("ParseInt", s))
	}
	factor := int64(1)
	if unit != "" {
		factor = timeUnits[unit[0]]
	}

	v, err := parseInt(num, 64)
	if err != nil {
		return 0, errtrace.Wrap(err)
	}
	if v > math.MaxInt64/factor || v < math.MinInt64/factor {
		return 0, errtrace.Wrap(newInvalidValueErr("%q overflows 64-bit seconds", s))
	}
	return v * factor, nil
}

// decodeMediaName decodes "m=<media> <port>[/<number of ports>] <proto> <fmt> ...".
func decodeMediaName(l line) (MediaName, error) {
	fields := strings.Fields(l.value)
	if len(fields) < 4 {
		return MediaName{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}

	if err := checkRegistered(fields[0], mediaKinds); err != nil {
		return MediaName{}, errtrace.Wrap(err)
	}

	var port RangedPort
	portStr, rangeStr, hasRange := strings.Cut(fields[1], "/")
	v, err := parseUint(portStr, 16)
	if err != nil {
		return MediaName{}, errtrace.Wrap(err)
	}
	port.Value = int(v)
	if hasRange {
		r, err := parseInt(rangeStr, 32)
		if err != nil {
			return MediaName{}, errtrace.Wrap(err)
		}
		rng := int(r)
		port.Range = &rng
	}

	protos := strings.Split(fields[2], "/")
	for _, p := range protos {
		if err := checkRegistered(p, protoNames); err != nil {
			return MediaName{}, errtrace.Wrap(err)
		}
	}

	return MediaName{
		Media:   fields[0],
		Port:    port,
		Protos:  protos,
		Formats: append([]string(nil), fields[3:]...),
	}, nil
}

// decodeAttribute decodes "a=<attribute>" and "a=<attribute>:<value>".
// The attribute name must be a token, the value stays opaque.
func decodeAttribute(l line) (Attribute, error) {
	key, val, ok := strings.Cut(l.value, ":")
	if !grammar.IsToken(key) {
		return Attribute{}, errtrace.Wrap(newInvalidSyntaxErr(l.raw))
	}
	if !ok {
		return NewPropertyAttribute(key), nil
	}
	return NewAttribute(key, val), nil
}
