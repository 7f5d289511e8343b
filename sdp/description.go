package sdp

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gosdp/internal/ioutil"
	"github.com/ghettovoice/gosdp/internal/util"
)

const crlf = "\r\n"

// Description is a parsed session description.
// https://datatracker.ietf.org/doc/html/rfc4566#section-5
type Description struct {
	Session
	TimeDescriptions  []TimeDescription
	MediaDescriptions []MediaDescription
}

// RenderTo writes the description to w in the RFC field order.
// Optional fields that are empty are skipped, every line ends with CRLF.
func (d *Description) RenderTo(w io.Writer) (num int, err error) {
	if d == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	if d.Version != nil {
		renderField(cw, keyVersion, strconv.Itoa(*d.Version))
	}
	if d.Origin != nil {
		renderField(cw, keyOrigin, d.Origin.String())
	}
	if d.Name != nil {
		renderField(cw, keyName, *d.Name)
	}
	renderOptField(cw, keyInfo, d.Information)
	renderOptField(cw, keyURI, d.URI)
	renderOptField(cw, keyEmail, d.Email)
	renderOptField(cw, keyPhone, d.Phone)
	if d.Connection != nil {
		renderField(cw, keyConn, d.Connection.String())
	}
	for _, bw := range d.Bandwidths {
		renderField(cw, keyBandwidth, bw.String())
	}

	for _, td := range d.TimeDescriptions {
		renderField(cw, keyTiming, td.Timing.String())
		for _, r := range td.RepeatTimes {
			renderField(cw, keyRepeatTime, r.String())
		}
	}

	if len(d.TimeZones) > 0 {
		tzs := make([]string, len(d.TimeZones))
		for i, tz := range d.TimeZones {
			tzs[i] = tz.String()
		}
		renderField(cw, keyTimeZones, strings.Join(tzs, " "))
	}
	renderOptField(cw, keyEncKey, d.EncryptionKey)
	for _, a := range d.Attributes {
		renderField(cw, keyAttr, a.String())
	}

	for i := range d.MediaDescriptions {
		md := &d.MediaDescriptions[i]
		renderField(cw, keyMedia, md.MediaName.String())
		renderOptField(cw, keyInfo, md.Title)
		if md.Connection != nil {
			renderField(cw, keyConn, md.Connection.String())
		}
		for _, bw := range md.Bandwidths {
			renderField(cw, keyBandwidth, bw.String())
		}
		renderOptField(cw, keyEncKey, md.EncryptionKey)
		for _, a := range md.Attributes {
			renderField(cw, keyAttr, a.String())
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func renderField(cw *ioutil.CountingWriter, key, val string) {
	cw.Fprint(key, val, crlf) //nolint:errcheck
}

func renderOptField(cw *ioutil.CountingWriter, key, val string) {
	if val != "" {
		renderField(cw, key, val)
	}
}

// Render renders the description to a string.
func (d *Description) Render() string {
	if d == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	d.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (d *Description) String() string { return d.Render() }

// MarshalText implements [encoding.TextMarshaler].
func (d *Description) MarshalText() ([]byte, error) {
	return []byte(d.Render()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] with the default lenient parser.
func (d *Description) UnmarshalText(text []byte) error {
	d2, err := Parse(text)
	if err != nil {
		return errtrace.Wrap(err)
	}
	*d = *d2
	return nil
}

// LogValue implements [slog.LogValuer] for structured logging.
func (d *Description) LogValue() slog.Value {
	if d == nil {
		return slog.Value{}
	}

	attrs := make([]slog.Attr, 0, 4)
	if d.Origin != nil {
		attrs = append(attrs, slog.String("origin", d.Origin.String()))
	}
	if d.Name != nil {
		attrs = append(attrs, slog.String("name", *d.Name))
	}
	attrs = append(attrs, slog.Int("times", len(d.TimeDescriptions)))
	if len(d.MediaDescriptions) > 0 {
		media := make([]string, len(d.MediaDescriptions))
		for i := range d.MediaDescriptions {
			media[i] = d.MediaDescriptions[i].MediaName.Media
		}
		attrs = append(attrs, slog.Any("media", media))
	}
	return slog.GroupValue(attrs...)
}
