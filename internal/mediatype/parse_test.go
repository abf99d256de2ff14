package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   AcceptList
	}{
		{
			name:   "empty header",
			header: "",
			want:   AcceptList{},
		},
		{
			name:   "blank header",
			header: "   ",
			want:   AcceptList{},
		},
		{
			name:   "single type",
			header: "application/json",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "multiple types keep header order",
			header: "application/json, application/cbor",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
				{Type: "application", Subtype: "cbor", Quality: 1.0, Index: 1},
			},
		},
		{
			name:   "quality values",
			header: "application/json;q=0.9, application/cbor;q=0.8",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 0.9, Index: 0},
				{Type: "application", Subtype: "cbor", Quality: 0.8, Index: 1},
			},
		},
		{
			name:   "uppercase quality name",
			header: "application/json;Q=0.5",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 0.5, Index: 0},
			},
		},
		{
			name:   "type and subtype are lowercased",
			header: "Application/JSON",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "surrounding whitespace",
			header: "  application/json  ;  q=0.7 ,  */*  ",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 0.7, Index: 0},
				{Type: "*", Subtype: "*", Quality: 1.0, Index: 1},
			},
		},
		{
			name:   "params other than q are kept",
			header: "application/json; charset=UTF-8; q=0.5",
			want: AcceptList{
				{
					Type:    "application",
					Subtype: "json",
					Params:  []Param{{Name: "charset", Value: "UTF-8"}},
					Quality: 0.5,
					Index:   0,
				},
			},
		},
		{
			name:   "param name is lowercased",
			header: "text/plain; CharSet=latin1",
			want: AcceptList{
				{
					Type:    "text",
					Subtype: "plain",
					Params:  []Param{{Name: "charset", Value: "latin1"}},
					Quality: 1.0,
					Index:   0,
				},
			},
		},
		{
			name:   "quoted param with comma and semicolon",
			header: `application/json; profile="a,b;c", application/cbor`,
			want: AcceptList{
				{
					Type:    "application",
					Subtype: "json",
					Params:  []Param{{Name: "profile", Value: "a,b;c"}},
					Quality: 1.0,
					Index:   0,
				},
				{Type: "application", Subtype: "cbor", Quality: 1.0, Index: 1},
			},
		},
		{
			name:   "missing slash is skipped",
			header: "non-supported, application/json",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "empty subtype is skipped",
			header: "application/, application/cbor",
			want: AcceptList{
				{Type: "application", Subtype: "cbor", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "empty type is skipped",
			header: "/json, application/cbor",
			want: AcceptList{
				{Type: "application", Subtype: "cbor", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "wildcard type with concrete subtype is skipped",
			header: "*/json, application/cbor",
			want: AcceptList{
				{Type: "application", Subtype: "cbor", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "empty entries are ignored",
			header: ",, application/json ,",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "invalid quality falls back to default",
			header: "application/json;q=invalid",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "quality above one falls back to default",
			header: "application/json;q=1.5",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "negative quality falls back to default",
			header: "application/json;q=-0.5",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "exponent quality falls back to default",
			header: "application/json;q=1e-1",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 1.0, Index: 0},
			},
		},
		{
			name:   "zero quality is kept",
			header: "application/json;q=0",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 0, Index: 0},
			},
		},
		{
			name:   "param without value is dropped",
			header: "application/json; level; q=0.3",
			want: AcceptList{
				{Type: "application", Subtype: "json", Quality: 0.3, Index: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header))
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	headers := []string{
		"",
		"application/json",
		"text/html, application/xhtml+xml, application/xml;q=0.9, */*;q=0.8",
		`application/json; charset="utf-8"; q=0.4, garbage, application/cbor;q=x`,
	}

	for _, h := range headers {
		first := Parse(h)
		second := Parse(h)
		assert.Equal(t, first, second, "header %q", h)
	}
}

func TestParseBytes(t *testing.T) {
	raw := []byte("application/cbor;q=0.2, application/json")
	assert.Equal(t, Parse(string(raw)), ParseBytes(raw))
}

func TestParseBytes_NonUTF8Noise(t *testing.T) {
	raw := []byte("application/json; charset=\xff\xfe, application/cbor")
	list := ParseBytes(raw)

	require.Len(t, list, 2)
	assert.Equal(t, "application/json", list[0].Canonical())
	assert.Equal(t, "application/cbor", list[1].Canonical())
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		wantCanonical string
		wantCharset   string
		wantOK        bool
	}{
		{
			name:          "plain",
			value:         "application/json",
			wantCanonical: "application/json",
			wantOK:        true,
		},
		{
			name:          "with charset",
			value:         "application/json; charset=utf-8",
			wantCanonical: "application/json",
			wantCharset:   "utf-8",
			wantOK:        true,
		},
		{
			name:          "quoted charset keeps case",
			value:         `Application/Json; Charset="ISO-8859-1"`,
			wantCanonical: "application/json",
			wantCharset:   "ISO-8859-1",
			wantOK:        true,
		},
		{
			name:          "only first entry is used",
			value:         "application/cbor, application/json",
			wantCanonical: "application/cbor",
			wantOK:        true,
		},
		{
			name:   "empty",
			value:  "",
			wantOK: false,
		},
		{
			name:   "malformed",
			value:  "non-supported",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, ok := ParseContentType(tt.value)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantCanonical, mt.Canonical())
			charset, _ := mt.Param("charset")
			assert.Equal(t, tt.wantCharset, charset)
		})
	}
}

func TestParseContentType_IgnoresQuality(t *testing.T) {
	mt, ok := ParseContentType("application/json; q=0")
	require.True(t, ok)

	assert.Equal(t, DefaultQuality, mt.Quality)
	assert.Empty(t, mt.Params)
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "application/json", Canonicalize(" Application/JSON; charset=utf-8 "))
	assert.Equal(t, "application/cbor", Canonicalize("application/cbor"))
	assert.Equal(t, "garbage", Canonicalize(" GARBAGE "))
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{in: "0", want: 0, wantOK: true},
		{in: "1", want: 1, wantOK: true},
		{in: "1.0", want: 1, wantOK: true},
		{in: "0.125", want: 0.125, wantOK: true},
		{in: "1.001", wantOK: false},
		{in: ".5", wantOK: false},
		{in: "", wantOK: false},
		{in: "+0.5", wantOK: false},
		{in: "NaN", wantOK: false},
		{in: "0x1p-2", wantOK: false},
		{in: "0.5.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseQuality(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 0.0001)
			}
		})
	}
}
