package sdp_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/gosdp/internal/log"
	"github.com/ghettovoice/gosdp/internal/testutil/iomock"
	"github.com/ghettovoice/gosdp/sdp"
)

const (
	minimalSDP = "v=0\r\n" +
		"o=- 1 1 IN IP4 127.0.0.1\r\n" +
		"s=-\r\n" +
		"t=0 0\r\n"

	fullSDP = "v=0\r\n" +
		"o=jdoe 2890844526 2890842807 IN IP4 10.47.16.5\r\n" +
		"s=SDP Seminar\r\n" +
		"i=A Seminar on the session description protocol\r\n" +
		"u=http://www.example.com/seminars/sdp.pdf\r\n" +
		"e=j.doe@example.com (Jane Doe)\r\n" +
		"p=+1 617 555-6011\r\n" +
		"c=IN IP4 224.2.17.12/127\r\n" +
		"b=X-YZ:128\r\n" +
		"b=AS:12345\r\n" +
		"t=2873397496 2873404696\r\n" +
		"r=604800 3600 0 90000\r\n" +
		"t=3034423619 3042462419\r\n" +
		"z=2882844526 -3600 2898848070 0\r\n" +
		"k=clear:secret\r\n" +
		"a=recvonly\r\n" +
		"a=tool:gosdp\r\n" +
		"m=audio 49170 RTP/AVP 0\r\n" +
		"i=Vivamus a posuere nisl\r\n" +
		"c=IN IP4 203.0.113.1\r\n" +
		"b=X-YZ:128\r\n" +
		"k=prompt\r\n" +
		"a=sendrecv\r\n" +
		"m=video 51372/2 RTP/AVP 99\r\n" +
		"a=rtpmap:99 h263-1998/90000\r\n"
)

func minimalDesc() *sdp.Description {
	return &sdp.Description{
		Session: sdp.Session{
			Version: ptr(0),
			Origin: &sdp.Origin{
				Username:       "-",
				SessionID:      1,
				SessionVersion: 1,
				NetworkType:    "IN",
				AddressType:    "IP4",
				UnicastAddress: "127.0.0.1",
			},
			Name: ptr("-"),
		},
		TimeDescriptions: []sdp.TimeDescription{
			{Timing: sdp.Timing{Start: 0, Stop: 0}},
		},
	}
}

func fullDesc() *sdp.Description {
	return &sdp.Description{
		Session: sdp.Session{
			Version: ptr(0),
			Origin: &sdp.Origin{
				Username:       "jdoe",
				SessionID:      2890844526,
				SessionVersion: 2890842807,
				NetworkType:    "IN",
				AddressType:    "IP4",
				UnicastAddress: "10.47.16.5",
			},
			Name:        ptr("SDP Seminar"),
			Information: "A Seminar on the session description protocol",
			URI:         "http://www.example.com/seminars/sdp.pdf",
			Email:       "j.doe@example.com (Jane Doe)",
			Phone:       "+1 617 555-6011",
			Connection: &sdp.ConnectionInformation{
				NetworkType: "IN",
				AddressType: "IP4",
				Address:     &sdp.Address{Address: "224.2.17.12/127"},
			},
			Bandwidths: []sdp.Bandwidth{
				{Experimental: true, Type: "YZ", Value: 128},
				{Type: "AS", Value: 12345},
			},
			TimeZones: []sdp.TimeZone{
				{AdjustmentTime: 2882844526, Offset: -3600},
				{AdjustmentTime: 2898848070, Offset: 0},
			},
			EncryptionKey: "clear:secret",
			Attributes: []sdp.Attribute{
				sdp.NewPropertyAttribute("recvonly"),
				sdp.NewAttribute("tool", "gosdp"),
			},
		},
		TimeDescriptions: []sdp.TimeDescription{
			{
				Timing: sdp.Timing{Start: 2873397496, Stop: 2873404696},
				RepeatTimes: []sdp.RepeatTime{
					{Interval: 604800, Duration: 3600, Offsets: []int64{0, 90000}},
				},
			},
			{Timing: sdp.Timing{Start: 3034423619, Stop: 3042462419}},
		},
		MediaDescriptions: []sdp.MediaDescription{
			{
				MediaName: sdp.MediaName{
					Media:   "audio",
					Port:    sdp.RangedPort{Value: 49170},
					Protos:  []string{"RTP", "AVP"},
					Formats: []string{"0"},
				},
				Title: "Vivamus a posuere nisl",
				Connection: &sdp.ConnectionInformation{
					NetworkType: "IN",
					AddressType: "IP4",
					Address:     &sdp.Address{Address: "203.0.113.1"},
				},
				Bandwidths:    []sdp.Bandwidth{{Experimental: true, Type: "YZ", Value: 128}},
				EncryptionKey: "prompt",
				Attributes:    []sdp.Attribute{sdp.NewPropertyAttribute("sendrecv")},
			},
			{
				MediaName: sdp.MediaName{
					Media:   "video",
					Port:    sdp.RangedPort{Value: 51372, Range: ptr(2)},
					Protos:  []string{"RTP", "AVP"},
					Formats: []string{"99"},
				},
				Attributes: []sdp.Attribute{sdp.NewAttribute("rtpmap", "99 h263-1998/90000")},
			},
		},
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  *sdp.Description
	}{
		{"minimal", minimalSDP, minimalDesc()},
		{"minimal without CR", strings.ReplaceAll(minimalSDP, "\r\n", "\n"), minimalDesc()},
		{"minimal without last EOL", strings.TrimSuffix(minimalSDP, "\r\n"), minimalDesc()},
		{"full", fullSDP, fullDesc()},
		{
			"time units",
			minimalSDP +
				"r=7d 1h 0 25h\r\n" +
				"z=2882844526 -1h 2898848070 0\r\n",
			func() *sdp.Description {
				d := minimalDesc()
				d.TimeDescriptions[0].RepeatTimes = []sdp.RepeatTime{
					{Interval: 604800, Duration: 3600, Offsets: []int64{0, 90000}},
				}
				d.TimeZones = []sdp.TimeZone{
					{AdjustmentTime: 2882844526, Offset: -3600},
					{AdjustmentTime: 2898848070, Offset: 0},
				}
				return d
			}(),
		},
		{
			"attribute with colons",
			minimalSDP + "a=fingerprint:sha-256 AB:CD:EF\r\n",
			func() *sdp.Description {
				d := minimalDesc()
				d.Attributes = []sdp.Attribute{sdp.NewAttribute("fingerprint", "sha-256 AB:CD:EF")}
				return d
			}(),
		},
		{
			"repeated time before media",
			minimalSDP + "t=10 20\r\nr=1m 30s 0\r\nm=application 9 UDP/DTLS/SCTP webrtc-datachannel\r\n",
			func() *sdp.Description {
				d := minimalDesc()
				d.TimeDescriptions = append(d.TimeDescriptions, sdp.TimeDescription{
					Timing:      sdp.Timing{Start: 10, Stop: 20},
					RepeatTimes: []sdp.RepeatTime{{Interval: 60, Duration: 30, Offsets: []int64{0}}},
				})
				d.MediaDescriptions = []sdp.MediaDescription{
					{
						MediaName: sdp.MediaName{
							Media:   "application",
							Port:    sdp.RangedPort{Value: 9},
							Protos:  []string{"UDP", "DTLS", "SCTP"},
							Formats: []string{"webrtc-datachannel"},
						},
					},
				}
				return d
			}(),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := sdp.Parse(c.input)
			if err != nil {
				t.Fatalf("sdp.Parse(%q) error = %v, want nil", c.input, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("sdp.Parse(%q) = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
		})
	}
}

func TestParse_Bytes(t *testing.T) {
	t.Parallel()

	got, err := sdp.Parse([]byte(minimalSDP))
	if err != nil {
		t.Fatalf("sdp.Parse(bytes) error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, minimalDesc()); diff != "" {
		t.Errorf("sdp.Parse(bytes) = %+v, want %+v\ndiff (-got +want):\n%v", got, minimalDesc(), diff)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     string
		wantErr   error
		wantState sdp.State
		wantLine  int
	}{
		{"empty", "", io.ErrUnexpectedEOF, sdp.StateVersion, 1},
		{"missing version", "o=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\n", sdp.ErrUnexpectedField, sdp.StateVersion, 1},
		{"missing origin", "v=0\r\ns=-\r\nt=0 0\r\n", sdp.ErrUnexpectedField, sdp.StateOrigin, 2},
		{"missing name", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\nt=0 0\r\n", sdp.ErrUnexpectedField, sdp.StateName, 3},
		{"missing timing", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\n", io.ErrUnexpectedEOF, sdp.StateSessionInfo, 4},
		{"version not zero", "v=1\r\n", sdp.ErrInvalidValue, sdp.StateVersion, 1},
		{"version not number", "v=x\r\n", sdp.ErrInvalidNumber, sdp.StateVersion, 1},
		{"line without equal sign", "v=0\r\nqwerty\r\n", sdp.ErrInvalidSyntax, sdp.StateOrigin, 2},
		{"empty line", "v=0\r\n\r\no=- 1 1 IN IP4 127.0.0.1\r\n", sdp.ErrInvalidSyntax, sdp.StateOrigin, 2},
		{"origin too short", "v=0\r\no=- 1 1 IN IP4\r\n", sdp.ErrInvalidSyntax, sdp.StateOrigin, 2},
		{"origin bad session id", "v=0\r\no=- x 1 IN IP4 127.0.0.1\r\n", sdp.ErrInvalidNumber, sdp.StateOrigin, 2},
		{"origin bad network type", "v=0\r\no=- 1 1 XX IP4 127.0.0.1\r\n", sdp.ErrInvalidValue, sdp.StateOrigin, 2},
		{"origin bad address type", "v=0\r\no=- 1 1 IN IPX 127.0.0.1\r\n", sdp.ErrInvalidValue, sdp.StateOrigin, 2},
		{"duplicate name", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\ns=-\r\n", sdp.ErrUnexpectedField, sdp.StateSessionInfo, 4},
		{
			"information after uri",
			"v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nu=http://example.com\r\ni=info\r\n",
			sdp.ErrUnexpectedField, sdp.StateSessionEmail, 5,
		},
		{
			"bad uri",
			"v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nu=http://[::1\r\n",
			sdp.ErrInvalidValue, sdp.StateSessionInfo, 4,
		},
		{"connection too short", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nc=IN\r\n", sdp.ErrInvalidSyntax, sdp.StateSessionInfo, 4},
		{"bandwidth without value", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nb=AS\r\n", sdp.ErrInvalidSyntax, sdp.StateSessionInfo, 4},
		{"bandwidth bad type", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nb=ZZ:1\r\n", sdp.ErrInvalidValue, sdp.StateSessionInfo, 4},
		{"bandwidth type not a token", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nb=A S:1\r\n", sdp.ErrInvalidSyntax, sdp.StateSessionInfo, 4},
		{"bandwidth empty experimental type", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nb=X-:1\r\n", sdp.ErrInvalidSyntax, sdp.StateSessionInfo, 4},
		{"timing not number", "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 x\r\n", sdp.ErrInvalidNumber, sdp.StateSessionInfo, 4},
		{"repeat too short", minimalSDP + "r=7d 1h\r\n", sdp.ErrInvalidSyntax, sdp.StateTime, 5},
		{"repeat overflow", minimalSDP + "r=9223372036854775807d 1h 0\r\n", sdp.ErrInvalidValue, sdp.StateTime, 5},
		{"repeat unknown unit", minimalSDP + "r=7w 1h 0\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"repeat upper case unit", minimalSDP + "r=7D 1h 0\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"repeat plus sign", minimalSDP + "r=+7 1h 0\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"time zone offset bad unit", minimalSDP + "z=2882844526 -1x\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"time zones odd", minimalSDP + "z=2882844526\r\n", sdp.ErrInvalidSyntax, sdp.StateTime, 5},
		{"unknown field", minimalSDP + "x=1\r\n", sdp.ErrUnexpectedField, sdp.StateTime, 5},
		{"media too short", minimalSDP + "m=video\r\n", sdp.ErrInvalidSyntax, sdp.StateTime, 5},
		{"media bad kind", minimalSDP + "m=game 9 RTP/AVP 0\r\n", sdp.ErrInvalidValue, sdp.StateTime, 5},
		{"media bad proto", minimalSDP + "m=audio 9 RTP/FOO 0\r\n", sdp.ErrInvalidValue, sdp.StateTime, 5},
		{"media msrp proto", minimalSDP + "m=message 9 TCP/MSRP *\r\n", sdp.ErrInvalidValue, sdp.StateTime, 5},
		{"session attribute name not a token", minimalSDP + "a=bad key:1\r\n", sdp.ErrInvalidSyntax, sdp.StateTime, 5},
		{"session attribute without name", minimalSDP + "a=:1\r\n", sdp.ErrInvalidSyntax, sdp.StateTime, 5},
		{"media attribute name not a token", minimalSDP + "m=audio 9 RTP/AVP 0\r\na=rtp\"map:0\r\n", sdp.ErrInvalidSyntax, sdp.StateMedia, 6},
		{"media bad port", minimalSDP + "m=audio 70000 RTP/AVP 0\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"media bad port range", minimalSDP + "m=audio 9/x RTP/AVP 0\r\n", sdp.ErrInvalidNumber, sdp.StateTime, 5},
		{"session field in media", minimalSDP + "m=audio 9 RTP/AVP 0\r\nt=0 0\r\n", sdp.ErrUnexpectedField, sdp.StateMedia, 6},
		{"attribute before time zones", minimalSDP + "a=recvonly\r\nz=0 0\r\n", sdp.ErrUnexpectedField, sdp.StateSessionAttr, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := sdp.Parse(c.input)
			if got != nil {
				t.Errorf("sdp.Parse(%q) = %+v, want nil", c.input, got)
			}
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("sdp.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}

			var perr *sdp.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("sdp.Parse(%q) error = %T, want *sdp.ParseError", c.input, err)
			}
			if perr.State != c.wantState || perr.Line != c.wantLine {
				t.Errorf("sdp.Parse(%q) error at %v:%d, want %v:%d",
					c.input, perr.State, perr.Line, c.wantState, c.wantLine)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, err := sdp.Parse(minimalSDP + "x=1\r\n")

	var perr *sdp.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("sdp.Parse() error = %T, want *sdp.ParseError", err)
	}
	if !perr.Grammar() {
		t.Errorf("perr.Grammar() = false, want true")
	}
	if got, want := string(perr.Buf), "x=1"; got != want {
		t.Errorf("perr.Buf = %q, want %q", got, want)
	}
	if got, want := perr.Error(), `sdp: parse error at line 5 (time) "x=1": unexpected field: "x="`; got != want {
		t.Errorf("perr.Error() = %q, want %q", got, want)
	}

	_, err = sdp.Parse("v=1\r\n")
	if !errors.As(err, &perr) {
		t.Fatalf("sdp.Parse() error = %T, want *sdp.ParseError", err)
	}
	if perr.Grammar() {
		t.Errorf("perr.Grammar() = true, want false")
	}
}

func TestParse_EOFIsGrammarError(t *testing.T) {
	t.Parallel()

	_, err := sdp.Parse("v=0\r\n")
	if !errors.Is(err, sdp.ErrUnexpectedField) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("sdp.Parse() error = %v, want %v and %v", err, sdp.ErrUnexpectedField, io.ErrUnexpectedEOF)
	}
}

const lateMediaFields = minimalSDP +
	"m=audio 9 RTP/AVP 0\r\n" +
	"a=sendrecv\r\n" +
	"c=IN IP4 192.0.2.1\r\n" +
	"b=AS:64\r\n" +
	"a=ptime:20\r\n" +
	"k=prompt\r\n" +
	"i=late title\r\n" +
	"m=video 9 RTP/AVP 96\r\n"

func TestParser_Lenient(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &sdp.Parser{Logger: log.NewJSON(&buf, slog.LevelWarn)}

	got, err := p.Parse(lateMediaFields)
	if err != nil {
		t.Fatalf("p.Parse() error = %v, want nil", err)
	}

	want := minimalDesc()
	want.MediaDescriptions = []sdp.MediaDescription{
		{
			MediaName: sdp.MediaName{
				Media:   "audio",
				Port:    sdp.RangedPort{Value: 9},
				Protos:  []string{"RTP", "AVP"},
				Formats: []string{"0"},
			},
			Title: "late title",
			Connection: &sdp.ConnectionInformation{
				NetworkType: "IN",
				AddressType: "IP4",
				Address:     &sdp.Address{Address: "192.0.2.1"},
			},
			Bandwidths:    []sdp.Bandwidth{{Type: "AS", Value: 64}},
			EncryptionKey: "prompt",
			Attributes: []sdp.Attribute{
				sdp.NewPropertyAttribute("sendrecv"),
				sdp.NewAttribute("ptime", "20"),
			},
		},
		{
			MediaName: sdp.MediaName{
				Media:   "video",
				Port:    sdp.RangedPort{Value: 9},
				Protos:  []string{"RTP", "AVP"},
				Formats: []string{"96"},
			},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("p.Parse() = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}

	if got, want := strings.Count(buf.String(), "sdp field accepted out of order"), 3; got != want {
		t.Errorf("out of order warnings = %d, want %d\nlog:\n%s", got, want, buf.String())
	}
}

func TestParser_LenientRepeatedFields(t *testing.T) {
	t.Parallel()

	in := minimalSDP +
		"m=audio 9 RTP/AVP 0\r\n" +
		"i=first title\r\n" +
		"c=IN IP4 192.0.2.1\r\n" +
		"k=clear:first\r\n" +
		"a=sendrecv\r\n" +
		"k=prompt\r\n" +
		"i=second title\r\n" +
		"c=IN IP4 192.0.2.2\r\n" +
		"a=ptime:20\r\n" +
		"b=AS:64\r\n" +
		"b=AS:128\r\n"

	var buf bytes.Buffer
	p := &sdp.Parser{Logger: log.NewJSON(&buf, slog.LevelWarn)}

	got, err := p.Parse(in)
	if err != nil {
		t.Fatalf("p.Parse() error = %v, want nil", err)
	}

	// single valued fields keep the last value, repeatable ones append
	want := minimalDesc()
	want.MediaDescriptions = []sdp.MediaDescription{
		{
			MediaName: sdp.MediaName{
				Media:   "audio",
				Port:    sdp.RangedPort{Value: 9},
				Protos:  []string{"RTP", "AVP"},
				Formats: []string{"0"},
			},
			Title: "second title",
			Connection: &sdp.ConnectionInformation{
				NetworkType: "IN",
				AddressType: "IP4",
				Address:     &sdp.Address{Address: "192.0.2.2"},
			},
			Bandwidths:    []sdp.Bandwidth{{Type: "AS", Value: 64}, {Type: "AS", Value: 128}},
			EncryptionKey: "prompt",
			Attributes: []sdp.Attribute{
				sdp.NewPropertyAttribute("sendrecv"),
				sdp.NewAttribute("ptime", "20"),
			},
		},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("p.Parse() = %+v, want %+v\ndiff (-got +want):\n%v", got, want, diff)
	}

	if got, want := strings.Count(buf.String(), "sdp field accepted out of order"), 3; got != want {
		t.Errorf("out of order warnings = %d, want %d\nlog:\n%s", got, want, buf.String())
	}
}

func TestParser_Strict(t *testing.T) {
	t.Parallel()

	p := &sdp.Parser{Strict: true}
	got, err := p.Parse(lateMediaFields)
	if got != nil {
		t.Errorf("p.Parse() = %+v, want nil", got)
	}

	var perr *sdp.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("p.Parse() error = %v, want *sdp.ParseError", err)
	}
	if diff := cmp.Diff(perr.Err, sdp.ErrUnexpectedField, cmpopts.EquateErrors()); diff != "" {
		t.Errorf("perr.Err = %v, want %v\ndiff (-got +want):\n%v", perr.Err, sdp.ErrUnexpectedField, diff)
	}
	if perr.State != sdp.StateMediaAttr || perr.Line != 7 {
		t.Errorf("perr at %v:%d, want %v:%d", perr.State, perr.Line, sdp.StateMediaAttr, 7)
	}

	if _, err := p.Parse(fullSDP); err != nil {
		t.Errorf("p.Parse(fullSDP) error = %v, want nil", err)
	}
}

func TestParser_DebugLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &sdp.Parser{Logger: log.NewJSON(&buf, slog.LevelDebug)}
	if _, err := p.Parse(minimalSDP); err != nil {
		t.Fatalf("p.Parse() error = %v, want nil", err)
	}
	if got, want := strings.Count(buf.String(), "sdp field accepted"), 4; got != want {
		t.Errorf("debug records = %d, want %d\nlog:\n%s", got, want, buf.String())
	}
}

func TestParseReader(t *testing.T) {
	t.Parallel()

	got, err := sdp.ParseReader(strings.NewReader(fullSDP))
	if err != nil {
		t.Fatalf("sdp.ParseReader() error = %v, want nil", err)
	}
	if diff := cmp.Diff(got, fullDesc()); diff != "" {
		t.Errorf("sdp.ParseReader() = %+v, want %+v\ndiff (-got +want):\n%v", got, fullDesc(), diff)
	}
}

func TestParseReader_ReadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	r := iomock.NewMockReader(ctrl)
	gomock.InOrder(
		r.EXPECT().
			Read(gomock.Any()).
			DoAndReturn(func(p []byte) (int, error) {
				return copy(p, "v=0\r\n"), nil
			}),
		r.EXPECT().
			Read(gomock.Any()).
			Return(0, io.ErrClosedPipe),
	)

	got, err := sdp.ParseReader(r)
	if got != nil {
		t.Errorf("sdp.ParseReader() = %+v, want nil", got)
	}
	if diff := cmp.Diff(err, io.ErrClosedPipe, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("sdp.ParseReader() error = %v, want %v\ndiff (-got +want):\n%v", err, io.ErrClosedPipe, diff)
	}

	var perr *sdp.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("sdp.ParseReader() error = %T, want *sdp.ParseError", err)
	}
	if perr.State != sdp.StateOrigin || perr.Line != 2 || perr.Buf != nil {
		t.Errorf("perr = %+v, want state %v, line 2, nil buf", perr, sdp.StateOrigin)
	}
}

func TestParse_Concurrent(t *testing.T) {
	t.Parallel()

	p := &sdp.Parser{}
	done := make(chan error)
	for range 8 {
		go func() {
			got, err := p.Parse(fullSDP)
			if err == nil && got.Render() != fullSDP {
				err = errors.New("render mismatch")
			}
			done <- err
		}()
	}
	for range 8 {
		if err := <-done; err != nil {
			t.Errorf("p.Parse() error = %v, want nil", err)
		}
	}
}

func TestParse_TimeUnits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"45", 45},
		{"30s", 30},
		{"2m", 120},
		{"1h", 3600},
		{"2d", 172800},
		{"-1h", -3600},
		{"0d", 0},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			in := minimalSDP + "r=" + c.in + " " + c.in + " " + c.in + "\r\n"
			d, err := sdp.Parse(in)
			if err != nil {
				t.Fatalf("sdp.Parse(%q) error = %v, want nil", in, err)
			}
			want := []sdp.RepeatTime{{Interval: c.want, Duration: c.want, Offsets: []int64{c.want}}}
			if diff := cmp.Diff(d.TimeDescriptions[0].RepeatTimes, want); diff != "" {
				t.Errorf("sdp.Parse(%q) repeat times mismatch\ndiff (-got +want):\n%v", in, diff)
			}
		})
	}

	for _, in := range []string{"h", "1x", "9223372036854775807m"} {
		_, err := sdp.Parse(minimalSDP + "r=" + in + " 1 0\r\n")
		if err == nil {
			t.Errorf("sdp.Parse(r=%s) error = nil, want error", in)
		}
	}
}
