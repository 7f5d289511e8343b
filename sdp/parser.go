package sdp

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gosdp/internal/constraints"
	"github.com/ghettovoice/gosdp/internal/errorutil"
	"github.com/ghettovoice/gosdp/internal/log"
)

var defParser = &Parser{}

// Parse parses a session description from s using the default lenient parser.
// See [Parser.Parse] for details.
func Parse[T constraints.Byteseq](s T) (*Description, error) {
	return errtrace.Wrap2(defParser.Parse(string(s)))
}

// ParseReader parses a session description from r using the default lenient parser.
// See [Parser.ParseReader] for details.
func ParseReader(r io.Reader) (*Description, error) {
	return errtrace.Wrap2(defParser.ParseReader(r))
}

// Parser parses session descriptions.
//
// The zero value is a lenient parser without logging.
// A Parser is safe for concurrent use.
type Parser struct {
	// Strict rejects the out of order media fields accepted by default,
	// see [Parser.Parse].
	Strict bool
	// Logger is used for parse tracing.
	// Accepted fields are logged at debug level,
	// out of order fields accepted in lenient mode are logged at warn level.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// Parse parses a single session description from s.
//
// The whole input is consumed, parsing is all or nothing:
// in success case, it returns a [Description] and nil error;
// otherwise, it returns nil and an error, which is a [*ParseError] for decode and order failures.
//
// Unless [Parser.Strict] is set, the "i=", "c=", "b=" and "k=" media fields
// are also accepted after media attributes.
func (p *Parser) Parse(s string) (*Description, error) {
	r := getStrRdr(s)
	br := getBufRdr(r)
	defer func() {
		freeBufRdr(br)
		freeStrRdr(r)
	}()
	return errtrace.Wrap2(p.parse(br))
}

// ParseReader parses a single session description reading r until [io.EOF].
// See [Parser.Parse] for details.
// Read failures are returned as [*ParseError] wrapping the reader error.
func (p *Parser) ParseReader(r io.Reader) (*Description, error) {
	br := getBufRdr(r)
	defer freeBufRdr(br)
	return errtrace.Wrap2(p.parse(br))
}

func (p *Parser) log() *slog.Logger {
	if p == nil || p.Logger == nil {
		return log.Noop
	}
	return p.Logger
}

func (p *Parser) transitions() *transitionTable {
	if p != nil && p.Strict {
		return &strictTransitions
	}
	return &lenientTransitions
}

func (p *Parser) parse(br *bufio.Reader) (*Description, error) {
	var (
		lr    = lineReader{r: br}
		tbl   = p.transitions()
		asm   = newAssembler()
		state = StateVersion
		lgr   = p.log()
	)
	for {
		ln, n, err := lr.next()
		if err != nil {
			return nil, errtrace.Wrap(newParseError(err, state, ln))
		}

		if ln.eof() {
			if !state.Accepting() {
				return nil, errtrace.Wrap(newParseError(
					errorutil.NewWrapperError(ErrUnexpectedField, io.ErrUnexpectedEOF), state, ln))
			}
			return asm.desc, nil
		}

		next, ok := tbl.next(state, ln.key)
		if !ok {
			return nil, errtrace.Wrap(newParseError(newUnexpectedFieldErr(ln.key), state, ln))
		}
		if _, ok := strictTransitions.next(state, ln.key); !ok {
			lgr.LogAttrs(context.Background(), slog.LevelWarn, "sdp field accepted out of order",
				slog.String("state", state.String()),
				slog.String("key", ln.key),
				slog.Int("line_num", ln.num),
				slog.String("line", ln.raw),
			)
		}

		if err := asm.apply(state, ln); err != nil {
			return nil, errtrace.Wrap(newParseError(err, state, ln))
		}

		lgr.LogAttrs(context.Background(), slog.LevelDebug, "sdp field accepted",
			slog.String("state", state.String()),
			slog.String("next", next.String()),
			slog.Int("line_num", ln.num),
			slog.Int("bytes", n),
			slog.String("line", ln.raw),
		)
		state = next
	}
}

func newParseError(err error, state State, ln line) *ParseError {
	perr := &ParseError{Err: err, State: state, Line: ln.num}
	if ln.raw != "" {
		perr.Buf = []byte(ln.raw)
	}
	return perr
}

// assembler is the description being built by the parser.
// curTime and curMedia index the open time and media descriptions, -1 when there is none.
type assembler struct {
	desc     *Description
	curTime  int
	curMedia int
}

func newAssembler() *assembler {
	return &assembler{
		desc:     new(Description),
		curTime:  -1,
		curMedia: -1,
	}
}

func (a *assembler) pushTime(t Timing) {
	a.desc.TimeDescriptions = append(a.desc.TimeDescriptions, TimeDescription{Timing: t})
	a.curTime = len(a.desc.TimeDescriptions) - 1
}

func (a *assembler) time() (*TimeDescription, error) {
	if a.curTime < 0 || a.curTime >= len(a.desc.TimeDescriptions) {
		return nil, errtrace.Wrap(ErrNoTimeDescription)
	}
	return &a.desc.TimeDescriptions[a.curTime], nil
}

func (a *assembler) pushMedia(mn MediaName) {
	a.desc.MediaDescriptions = append(a.desc.MediaDescriptions, MediaDescription{MediaName: mn})
	a.curMedia = len(a.desc.MediaDescriptions) - 1
}

func (a *assembler) media() (*MediaDescription, error) {
	if a.curMedia < 0 || a.curMedia >= len(a.desc.MediaDescriptions) {
		return nil, errtrace.Wrap(ErrNoMediaDescription)
	}
	return &a.desc.MediaDescriptions[a.curMedia], nil
}

// apply decodes the line and stores it in the description.
// The section of the source state decides whether "i=", "c=", "b=", "k=" and "a=" belong
// to the session or to the open media description.
func (a *assembler) apply(src State, ln line) error {
	sess := &a.desc.Session
	switch ln.key {
	case keyVersion:
		v, err := decodeVersion(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.Version = &v
	case keyOrigin:
		o, err := decodeOrigin(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.Origin = o
	case keyName:
		name := ln.value
		sess.Name = &name
	case keyURI:
		uri, err := decodeURI(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.URI = uri
	case keyEmail:
		sess.Email = ln.value
	case keyPhone:
		sess.Phone = ln.value
	case keyTiming:
		t, err := decodeTiming(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		a.pushTime(t)
	case keyRepeatTime:
		r, err := decodeRepeatTime(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		td, err := a.time()
		if err != nil {
			return errtrace.Wrap(err)
		}
		td.RepeatTimes = append(td.RepeatTimes, r)
	case keyTimeZones:
		tzs, err := decodeTimeZones(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.TimeZones = append(sess.TimeZones, tzs...)
	case keyMedia:
		mn, err := decodeMediaName(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		a.pushMedia(mn)
	case keyInfo, keyConn, keyBandwidth, keyEncKey, keyAttr:
		if src.inMedia() {
			return errtrace.Wrap(a.applyMedia(ln))
		}
		return errtrace.Wrap(a.applySession(ln))
	default:
		return errtrace.Wrap(newUnexpectedFieldErr(ln.key))
	}
	return nil
}

func (a *assembler) applySession(ln line) error {
	sess := &a.desc.Session
	switch ln.key {
	case keyInfo:
		sess.Information = ln.value
	case keyConn:
		c, err := decodeConnection(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.Connection = c
	case keyBandwidth:
		bw, err := decodeBandwidth(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.Bandwidths = append(sess.Bandwidths, bw)
	case keyEncKey:
		sess.EncryptionKey = ln.value
	case keyAttr:
		attr, err := decodeAttribute(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		sess.Attributes = append(sess.Attributes, attr)
	default:
		return errtrace.Wrap(newUnexpectedFieldErr(ln.key))
	}
	return nil
}

func (a *assembler) applyMedia(ln line) error {
	md, err := a.media()
	if err != nil {
		return errtrace.Wrap(err)
	}
	switch ln.key {
	case keyInfo:
		md.Title = ln.value
	case keyConn:
		c, err := decodeConnection(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		md.Connection = c
	case keyBandwidth:
		bw, err := decodeBandwidth(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		md.Bandwidths = append(md.Bandwidths, bw)
	case keyEncKey:
		md.EncryptionKey = ln.value
	case keyAttr:
		attr, err := decodeAttribute(ln)
		if err != nil {
			return errtrace.Wrap(err)
		}
		md.Attributes = append(md.Attributes, attr)
	default:
		return errtrace.Wrap(newUnexpectedFieldErr(ln.key))
	}
	return nil
}
