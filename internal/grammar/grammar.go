// Package grammar implements the SDP token rules of RFC 4566 Section 9 with ABNF operators.
//
// https://datatracker.ietf.org/doc/html/rfc4566#section-9
package grammar

import (
	"github.com/ghettovoice/abnf"
	"github.com/ghettovoice/abnf/pkg/abnf_core"

	"github.com/ghettovoice/gosdp/internal/constraints"
)

var core = abnf_core.Operators()

// token-char = %x21 / %x23-27 / %x2A-2B / %x2D-2E / %x30-39 / %x41-5A / %x5E-7E
var tokenChar = abnf.Alt(
	"token-char",
	abnf.Literal("%x21", []byte{0x21}),
	abnf.Range("%x23-27", []byte{0x23}, []byte{0x27}),
	abnf.Range("%x2A-2B", []byte{0x2A}, []byte{0x2B}),
	abnf.Range("%x2D-2E", []byte{0x2D}, []byte{0x2E}),
	abnf.Range("%x30-39", []byte{0x30}, []byte{0x39}),
	abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
	abnf.Range("%x5E-7E", []byte{0x5E}, []byte{0x7E}),
)

// token = 1*(token-char)
var token = abnf.Repeat1Inf("token", tokenChar)

// fixed-len-time-unit = %x64 / %x68 / %x6d / %x73
var fixedLenTimeUnit = abnf.Alt(
	"fixed-len-time-unit",
	abnf.LiteralCS("%x64", []byte{'d'}),
	abnf.LiteralCS("%x68", []byte{'h'}),
	abnf.LiteralCS("%x6d", []byte{'m'}),
	abnf.LiteralCS("%x73", []byte{'s'}),
)

// typed-time = ["-"] 1*DIGIT [fixed-len-time-unit]
//
// The optional sign comes from the "z=" offset rule, repeat times share the decoder.
var typedTime = abnf.Concat(
	"typed-time",
	abnf.Optional(`["-"]`, abnf.LiteralCS(`"-"`, []byte{'-'})),
	abnf.Repeat1Inf("1*DIGIT", core.DIGIT),
	abnf.Optional("[fixed-len-time-unit]", fixedLenTimeUnit),
)

// extmap-id = 1*5DIGIT
//
// https://datatracker.ietf.org/doc/html/rfc8285#section-7
var extMapID = abnf.Repeat("extmap-id", 1, 5, core.DIGIT)

// match runs op over the whole s and returns the longest node when it spans all of s.
func match[T constraints.Byteseq](op abnf.Operator, s T) (*abnf.Node, bool) {
	if len(s) == 0 {
		return nil, false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, false
	}
	n := ns.Best()
	return n, n.Len() == len(s)
}

// IsToken reports whether s is an RFC 4566 token.
// Bandwidth types and attribute names are tokens.
func IsToken[T constraints.Byteseq](s T) bool {
	_, ok := match(token, s)
	return ok
}

// SplitTypedTime splits a typed time like "-7d" into the signed number and the unit letter.
// The unit is empty when s has no unit suffix.
func SplitTypedTime[T constraints.Byteseq](s T) (num, unit string, ok bool) {
	n, ok := match(typedTime, s)
	if !ok {
		return "", "", false
	}
	if u, found := n.GetNode("fixed-len-time-unit"); found {
		unit = u.String()
	}
	return string(s[:len(s)-len(unit)]), unit, true
}

// IsExtMapID reports whether s is a well-formed extmap id.
// The range is checked by the caller.
func IsExtMapID[T constraints.Byteseq](s T) bool {
	_, ok := match(extMapID, s)
	return ok
}
