package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avanegotiate/internal/mediatype"
)

func TestToUTF8(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           []byte
		want           []byte
		wantTranscoded bool
	}{
		{name: "no charset", contentType: "application/json", body: []byte("caf\xe9"), want: []byte("caf\xe9")},
		{name: "utf-8", contentType: "application/json; charset=UTF-8", body: []byte("café"), want: []byte("café")},
		{name: "utf8 alias", contentType: "application/json; charset=utf8", body: []byte("café"), want: []byte("café")},
		{name: "unknown", contentType: "application/json; charset=bogus", body: []byte("caf\xe9"), want: []byte("caf\xe9")},
		{name: "empty", contentType: `application/json; charset=""`, body: []byte("x"), want: []byte("x")},
		{
			name:           "latin-1",
			contentType:    "application/json; charset=iso-8859-1",
			body:           []byte("caf\xe9"),
			want:           []byte("café"),
			wantTranscoded: true,
		},
		{
			name:           "utf-16le",
			contentType:    "application/json; charset=utf-16le",
			body:           []byte{'"', 0, 'a', 0, '"', 0},
			want:           []byte(`"a"`),
			wantTranscoded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, ok := mediatype.ParseContentType(tt.contentType)
			require.True(t, ok)

			got, transcoded, err := toUTF8(mt, tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTranscoded, transcoded)
			assert.Equal(t, tt.want, got)
		})
	}
}
