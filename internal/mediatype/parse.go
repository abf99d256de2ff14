package mediatype

import (
	"strconv"
	"strings"
)

// qualityParam is the name of the weighting parameter.
const qualityParam = "q"

// Parse parses an Accept header value. Entries that do not follow the
// media-range grammar are skipped. An empty or blank header yields an
// empty list.
func Parse(header string) AcceptList {
	if strings.TrimSpace(header) == "" {
		return AcceptList{}
	}

	parts := splitTopLevel(header, ',')
	result := make(AcceptList, 0, len(parts))
	for _, part := range parts {
		mt, ok := parseEntry(part, true)
		if !ok {
			continue
		}
		mt.Index = len(result)
		result = append(result, mt)
	}

	return result
}

// ParseBytes parses a raw header value as returned by the transport.
func ParseBytes(header []byte) AcceptList {
	return Parse(string(header))
}

// ParseContentType parses a Content-Type header value. Only the first entry
// is considered and any q parameter is ignored: the sender states its format,
// it does not negotiate. ok is false for a blank or malformed value.
func ParseContentType(value string) (mt MediaType, ok bool) {
	first := value
	if parts := splitTopLevel(value, ','); len(parts) > 0 {
		first = parts[0]
	}
	return parseEntry(first, false)
}

// Canonicalize returns the lowercased "type/subtype" of a media type string,
// dropping parameters. Malformed input is returned trimmed and lowercased.
func Canonicalize(s string) string {
	if mt, ok := ParseContentType(s); ok {
		return mt.Canonical()
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// parseEntry parses a single "type/subtype; name=value" entry.
func parseEntry(entry string, withQuality bool) (MediaType, bool) {
	segments := splitTopLevel(entry, ';')
	if len(segments) == 0 {
		return MediaType{}, false
	}

	typ, sub, ok := splitMediaRange(strings.TrimSpace(segments[0]))
	if !ok {
		return MediaType{}, false
	}

	mt := MediaType{
		Type:    typ,
		Subtype: sub,
		Quality: DefaultQuality,
	}

	for _, segment := range segments[1:] {
		name, value, ok := splitParam(segment)
		if !ok {
			continue
		}

		if name == qualityParam {
			if !withQuality {
				continue
			}
			if q, valid := parseQuality(value); valid {
				mt.Quality = q
			}
			continue
		}

		mt.Params = append(mt.Params, Param{Name: name, Value: value})
	}

	return mt, true
}

// splitMediaRange splits "type/subtype" into lowercased halves. A wildcard
// type is only valid together with a wildcard subtype.
func splitMediaRange(token string) (typ, sub string, ok bool) {
	typ, sub, found := strings.Cut(token, "/")
	if !found {
		return "", "", false
	}

	typ = strings.ToLower(strings.TrimSpace(typ))
	sub = strings.ToLower(strings.TrimSpace(sub))
	if !isToken(typ) || !isToken(sub) {
		return "", "", false
	}
	if typ == Wildcard && sub != Wildcard {
		return "", "", false
	}

	return typ, sub, true
}

// splitParam splits "name=value", lowercasing the name and unquoting the
// value. Parameters without a name or without '=' are rejected.
func splitParam(segment string) (name, value string, ok bool) {
	name, value, found := strings.Cut(segment, "=")
	if !found {
		return "", "", false
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if !isToken(name) {
		return "", "", false
	}

	return name, unquote(strings.TrimSpace(value)), true
}

// parseQuality parses a qvalue. Only plain decimals are accepted: no sign,
// no exponent, no hex or special values.
func parseQuality(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	dot := false
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot && digits > 0:
			dot = true
		default:
			return 0, false
		}
	}

	q, err := strconv.ParseFloat(s, 64)
	if err != nil || q < 0 || q > 1 {
		return 0, false
	}

	return q, true
}

// splitTopLevel splits s on sep, ignoring separators inside quoted strings.
// Every piece is trimmed and empty pieces are dropped.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	start := 0
	inQuote := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inQuote && c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case c == sep && !inQuote:
			parts = appendTrimmed(parts, s[start:i])
			start = i + 1
		}
	}

	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return parts
	}
	return append(parts, s)
}

// unquote removes the quotes of a quoted-string and resolves its escapes.
// Unquoted values are returned unchanged.
func unquote(v string) string {
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return v
	}

	inner := v[1 : len(v)-1]
	if strings.IndexByte(inner, '\\') < 0 {
		return inner
	}

	var sb strings.Builder
	sb.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		sb.WriteByte(inner[i])
	}
	return sb.String()
}

// isToken reports whether s is a non-empty token.
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenChar(s[i]) {
			return false
		}
	}
	return true
}
