package sdp

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gosdp/internal/constraints"
	"github.com/ghettovoice/gosdp/internal/errorutil"
	"github.com/ghettovoice/gosdp/internal/grammar"
)

// Attribute keys with dedicated support.
const (
	AttrKeyExtMap = "extmap"
)

// Extmap id bounds.
const (
	MinExtMapID = 1
	MaxExtMapID = 246
)

// ExtensionURI identifies one of the registered RTP header extensions.
// Unknown extension URIs are represented by [ExtensionURINone].
type ExtensionURI uint8

const (
	ExtensionURINone ExtensionURI = iota
	ExtensionURIAbsSendTime
	ExtensionURITransportCC
	ExtensionURIPlayoutDelay
	ExtensionURIVideoContentType
	ExtensionURIVideoTiming
	ExtensionURIColorSpace
	ExtensionURISDESMid
	ExtensionURISDESRTPStreamID
	ExtensionURISDESRepairedRTPStreamID
	ExtensionURIAudioLevel
	ExtensionURIVideoOrientation
	ExtensionURITOffset
)

var extURIs = [...]string{
	ExtensionURINone:                    "",
	ExtensionURIAbsSendTime:             "http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time",
	ExtensionURITransportCC:             "http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01",
	ExtensionURIPlayoutDelay:            "http://www.webrtc.org/experiments/rtp-hdrext/playout-delay",
	ExtensionURIVideoContentType:        "http://www.webrtc.org/experiments/rtp-hdrext/video-content-type",
	ExtensionURIVideoTiming:             "http://www.webrtc.org/experiments/rtp-hdrext/video-timing",
	ExtensionURIColorSpace:              "http://www.webrtc.org/experiments/rtp-hdrext/color-space",
	ExtensionURISDESMid:                 "urn:ietf:params:rtp-hdrext:sdes:mid",
	ExtensionURISDESRTPStreamID:         "urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id",
	ExtensionURISDESRepairedRTPStreamID: "urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id",
	ExtensionURIAudioLevel:              "urn:ietf:params:rtp-hdrext:ssrc-audio-level",
	ExtensionURIVideoOrientation:        "urn:3gpp:video-orientation",
	ExtensionURITOffset:                 "urn:ietf:params:rtp-hdrext:toffset",
}

var extURIIdx = func() map[string]ExtensionURI {
	m := make(map[string]ExtensionURI, len(extURIs)-1)
	for i, uri := range extURIs {
		if uri != "" {
			m[uri] = ExtensionURI(i)
		}
	}
	return m
}()

// ParseExtensionURI looks up a registered extension URI.
func ParseExtensionURI(uri string) ExtensionURI { return extURIIdx[uri] }

// String returns the extension URI, empty for [ExtensionURINone] and unknown values.
func (u ExtensionURI) String() string {
	if int(u) < len(extURIs) {
		return extURIs[u]
	}
	return ""
}

// ExtMap represents the activation of a single RTP header extension,
// "a=extmap:<value>["/"<direction>] <URI> <extensionattributes>".
// https://datatracker.ietf.org/doc/html/rfc8285#section-8
type ExtMap struct {
	ID        int
	Direction Direction
	URI       ExtensionURI
	// ExtAttr holds every token after the URI joined by a single space, nil when there are none.
	ExtAttr   *string
}

// ParseExtMap decodes an extmap attribute line "extmap:<id>[/<direction>] <uri> [<ext-attr>]".
//
// The id must be in range [MinExtMapID, MaxExtMapID].
// Unknown URIs are not an error, they are kept as [ExtensionURINone].
// An id token with more than one "/" is rejected.
func ParseExtMap[T constraints.Byteseq](s T) (ExtMap, error) {
	line := strings.TrimSpace(string(s))
	_, val, ok := strings.Cut(line, ":")
	if !ok {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidSyntaxErr(line)))
	}

	fields := strings.Fields(val)
	if len(fields) < 2 {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidSyntaxErr(line)))
	}

	idDir := strings.Split(fields[0], "/")
	if len(idDir) > 2 {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidSyntaxErr(line)))
	}

	if !grammar.IsExtMapID(idDir[0]) {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newNumSyntaxErr("Atoi", idDir[0])))
	}
	id, err := strconv.Atoi(idDir[0])
	if err != nil {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidNumberErr(err)))
	}
	if id < MinExtMapID || id > MaxExtMapID {
		return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidValueErr(
			"%s -- extmap key must be in the range %d-%d", idDir[0], MinExtMapID, MaxExtMapID)))
	}

	e := ExtMap{ID: id}
	if len(idDir) == 2 {
		if e.Direction = ParseDirection(idDir[1]); e.Direction == DirectionUnspecified {
			return ExtMap{}, errtrace.Wrap(newInvalidExtMapErr(newInvalidValueErr(
				"unknown direction from %s", idDir[1])))
		}
	}

	e.URI = ParseExtensionURI(fields[1])

	if len(fields) > 2 {
		attr := strings.Join(fields[2:], " ")
		e.ExtAttr = &attr
	}
	return e, nil
}

func newInvalidExtMapErr(err error) error {
	return errorutil.NewWrapperError(ErrInvalidExtMap, err) //errtrace:skip
}

// String returns the attribute value without the "extmap:" prefix.
func (e ExtMap) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(e.ID))
	if e.Direction != DirectionUnspecified {
		sb.WriteByte('/')
		sb.WriteString(e.Direction.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(e.URI.String())
	if e.ExtAttr != nil {
		sb.WriteByte(' ')
		sb.WriteString(*e.ExtAttr)
	}
	return sb.String()
}

// Marshal returns the attribute line, "extmap:<id>[/<direction>] <uri> [<ext-attr>]".
func (e ExtMap) Marshal() string { return AttrKeyExtMap + ":" + e.String() }

// Attribute converts the extmap to a media [Attribute].
func (e ExtMap) Attribute() Attribute { return NewAttribute(AttrKeyExtMap, e.String()) }
