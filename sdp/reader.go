package sdp

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"

	"braces.dev/errtrace"
)

const maxLineSize = 4096

// line is a single "<key>=<value>" line of a session description.
// The zero line with an empty key marks the end of input.
type line struct {
	key   string // including the trailing '='
	value string
	raw   string
	num   int
}

func (l line) eof() bool { return l.key == "" }

type lineReader struct {
	r   *bufio.Reader
	num int
}

// next reads one line and returns it with the number of bytes consumed.
// A clean end of input returns the zero line and zero bytes.
func (lr *lineReader) next() (line, int, error) {
	s, err := lr.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return line{num: lr.num + 1}, len(s), errtrace.Wrap(err)
	}
	if len(s) == 0 {
		return line{num: lr.num + 1}, 0, nil
	}

	lr.num++
	raw := strings.TrimRight(s, "\r\n")
	key, val, ok := strings.Cut(raw, "=")
	if !ok {
		return line{raw: raw, num: lr.num}, len(s), errtrace.Wrap(newInvalidSyntaxErr(raw))
	}
	return line{key: key + "=", value: val, raw: raw, num: lr.num}, len(s), nil
}

var bufRdrPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, maxLineSize)
	},
}

func getBufRdr(r io.Reader) *bufio.Reader {
	br := bufRdrPool.Get().(*bufio.Reader) //nolint:forcetypeassert
	br.Reset(r)
	return br
}

func freeBufRdr(r *bufio.Reader) {
	r.Reset(nil)
	bufRdrPool.Put(r)
}

var strRdrPool = sync.Pool{
	New: func() any { return strings.NewReader("") },
}

func getStrRdr(s string) *strings.Reader {
	r := strRdrPool.Get().(*strings.Reader) //nolint:forcetypeassert
	r.Reset(s)
	return r
}

func freeStrRdr(r *strings.Reader) {
	r.Reset("")
	strRdrPool.Put(r)
}
