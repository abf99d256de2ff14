package mediatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaType_Match(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		canonical string
		want      Specificity
	}{
		{name: "exact", entry: "application/json", canonical: "application/json", want: SpecificityExact},
		{name: "exact case-insensitive", entry: "application/json", canonical: "Application/JSON", want: SpecificityExact},
		{name: "type wildcard", entry: "application/*", canonical: "application/cbor", want: SpecificityType},
		{name: "full wildcard", entry: "*/*", canonical: "application/cbor", want: SpecificityAny},
		{name: "different subtype", entry: "application/json", canonical: "application/cbor", want: SpecificityNone},
		{name: "different type", entry: "text/*", canonical: "application/json", want: SpecificityNone},
		{name: "malformed canonical", entry: "*/*", canonical: "json", want: SpecificityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Parse(tt.entry)
			if !assert.Len(t, list, 1) {
				return
			}
			assert.Equal(t, tt.want, list[0].Match(tt.canonical))
			assert.Equal(t, tt.want != SpecificityNone, list[0].Matches(tt.canonical))
		})
	}
}

func TestMediaType_Specificity(t *testing.T) {
	assert.Equal(t, SpecificityAny, MediaType{Type: "*", Subtype: "*"}.Specificity())
	assert.Equal(t, SpecificityType, MediaType{Type: "text", Subtype: "*"}.Specificity())
	assert.Equal(t, SpecificityExact, MediaType{Type: "text", Subtype: "plain"}.Specificity())

	assert.True(t, SpecificityExact > SpecificityType)
	assert.True(t, SpecificityType > SpecificityAny)
	assert.True(t, SpecificityAny > SpecificityNone)
}

func TestSpecificity_String(t *testing.T) {
	assert.Equal(t, "none", SpecificityNone.String())
	assert.Equal(t, "any", SpecificityAny.String())
	assert.Equal(t, "type", SpecificityType.String())
	assert.Equal(t, "exact", SpecificityExact.String())
}

func TestMediaType_String(t *testing.T) {
	tests := []struct {
		name string
		mt   MediaType
		want string
	}{
		{
			name: "bare",
			mt:   MediaType{Type: "application", Subtype: "json", Quality: 1},
			want: "application/json",
		},
		{
			name: "with quality",
			mt:   MediaType{Type: "application", Subtype: "cbor", Quality: 0.5},
			want: "application/cbor; q=0.5",
		},
		{
			name: "with params",
			mt: MediaType{
				Type:    "text",
				Subtype: "plain",
				Params:  []Param{{Name: "charset", Value: "utf-8"}, {Name: "note", Value: "a b"}},
				Quality: 1,
			},
			want: `text/plain; charset=utf-8; note="a b"`,
		},
		{
			name: "escaped quote",
			mt: MediaType{
				Type:    "text",
				Subtype: "plain",
				Params:  []Param{{Name: "x", Value: `say "hi"`}},
				Quality: 1,
			},
			want: `text/plain; x="say \"hi\""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mt.String())
		})
	}
}

func TestMediaType_StringRoundTrip(t *testing.T) {
	header := `application/json; charset=utf-8; profile="x y"; q=0.25`
	list := Parse(header)
	if !assert.Len(t, list, 1) {
		return
	}

	again := Parse(list[0].String())
	assert.Equal(t, list, again)
}

func TestMediaType_Param(t *testing.T) {
	mt := MediaType{Params: []Param{{Name: "charset", Value: "UTF-8"}}}

	v, ok := mt.Param("CHARSET")
	assert.True(t, ok)
	assert.Equal(t, "UTF-8", v)

	_, ok = mt.Param("boundary")
	assert.False(t, ok)
}

func TestAcceptList_Canonicals(t *testing.T) {
	list := Parse("application/json;q=0.1, */*, text/*")
	assert.Equal(t, []string{"application/json", "*/*", "text/*"}, list.Canonicals())
}

func TestMediaType_IsWildcard(t *testing.T) {
	assert.True(t, MediaType{Type: "*", Subtype: "*"}.IsWildcard())
	assert.False(t, MediaType{Type: "application", Subtype: "*"}.IsWildcard())
}
