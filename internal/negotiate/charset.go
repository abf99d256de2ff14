package negotiate

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/vyrodovalexey/avanegotiate/internal/mediatype"
)

const charsetParam = "charset"

// toUTF8 transcodes body from the charset named by the Content-Type. The
// body is returned unchanged when no charset is given, when it is UTF-8, or
// when the charset is unknown.
func toUTF8(mt mediatype.MediaType, body []byte) (data []byte, transcoded bool, err error) {
	name, ok := mt.Param(charsetParam)
	if !ok || strings.TrimSpace(name) == "" {
		return body, false, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return body, false, nil
	}
	if canonical, _ := htmlindex.Name(enc); canonical == "utf-8" {
		return body, false, nil
	}

	data, err = enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, false, fmt.Errorf("transcoding from %s: %w", name, err)
	}
	return data, true, nil
}
