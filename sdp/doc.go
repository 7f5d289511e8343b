// Package sdp implements parsing and rendering of the Session Description Protocol (SDP).
//
// The parser follows the field order of [RFC 4566 Section 5] with a deterministic state machine:
// every line is checked against the set of keys the current state accepts, so a misplaced field
// is reported at the line where it appears rather than by a separate validation pass.
//
//	Session description
//	   v=  (protocol version)
//	   o=  (originator and session identifier)
//	   s=  (session name)
//	   i=* (session information)
//	   u=* (URI of description)
//	   e=* (email address)
//	   p=* (phone number)
//	   c=* (connection information)
//	   b=* (zero or more bandwidth information lines)
//	   One or more time descriptions ("t=" and "r=" lines)
//	   z=* (time zone adjustments)
//	   k=* (encryption key)
//	   a=* (zero or more session attribute lines)
//	   Zero or more media descriptions
//
//	Time description
//	   t=  (time the session is active)
//	   r=* (zero or more repeat times)
//
//	Media description
//	   m=  (media name and transport address)
//	   i=* (media title)
//	   c=* (connection information)
//	   b=* (zero or more bandwidth information lines)
//	   k=* (encryption key)
//	   a=* (zero or more media attribute lines)
//
// By default the parser is lenient: after a media encryption key or attribute it still accepts
// "i=", "c=", "b=" and "k=" lines, which some generators emit out of order.
// Set [Parser.Strict] to reject them.
//
// Attributes are kept opaque, except "a=extmap" which can be decoded with [ParseExtMap]
// or [MediaDescription.ExtMaps].
//
// Example:
//
//	desc, err := sdp.Parse("v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\n")
//	if err != nil {
//		var perr *sdp.ParseError
//		if errors.As(err, &perr) {
//			// perr.Line, perr.Buf point to the offending line
//		}
//		return err
//	}
//	fmt.Print(desc.Render())
//
// [RFC 4566 Section 5]: https://datatracker.ietf.org/doc/html/rfc4566#section-5
package sdp

//go:generate go tool errtrace -w .
