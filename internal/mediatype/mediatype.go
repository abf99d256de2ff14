package mediatype

import (
	"strconv"
	"strings"
)

// Wildcard is the token matching any type or subtype.
const Wildcard = "*"

// DefaultQuality is the quality of an entry without a valid q parameter.
const DefaultQuality = 1.0

// Specificity ranks how precisely an entry names a media type.
type Specificity int

// Specificity levels, from least to most specific.
const (
	// SpecificityNone means the entry does not match.
	SpecificityNone Specificity = iota
	// SpecificityAny is */*.
	SpecificityAny
	// SpecificityType is type/*.
	SpecificityType
	// SpecificityExact is type/subtype.
	SpecificityExact
)

// String returns the name of the specificity level.
func (s Specificity) String() string {
	switch s {
	case SpecificityAny:
		return "any"
	case SpecificityType:
		return "type"
	case SpecificityExact:
		return "exact"
	default:
		return "none"
	}
}

// Param is a single media type parameter. Name is lowercased,
// Value keeps its original case.
type Param struct {
	Name  string
	Value string
}

// MediaType is one parsed entry of an Accept or Content-Type header.
type MediaType struct {
	// Type is the lowercased top-level type, possibly "*".
	Type string

	// Subtype is the lowercased subtype, possibly "*".
	Subtype string

	// Params holds every parameter except q, in header order.
	Params []Param

	// Quality is the client preference in [0, 1].
	Quality float64

	// Index is the position of the entry among the valid entries of the header.
	Index int
}

// AcceptList is a parsed header in the order the entries appeared.
type AcceptList []MediaType

// Canonical returns "type/subtype" without parameters.
func (m MediaType) Canonical() string {
	return m.Type + "/" + m.Subtype
}

// Param returns the value of the named parameter. The lookup is
// case-insensitive on the name.
func (m MediaType) Param(name string) (string, bool) {
	for _, p := range m.Params {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

// IsWildcard reports whether the entry is */*.
func (m MediaType) IsWildcard() bool {
	return m.Type == Wildcard && m.Subtype == Wildcard
}

// Specificity returns how precisely the entry names a media type.
func (m MediaType) Specificity() Specificity {
	switch {
	case m.Type == Wildcard:
		return SpecificityAny
	case m.Subtype == Wildcard:
		return SpecificityType
	default:
		return SpecificityExact
	}
}

// Match returns the specificity with which the entry matches the canonical
// media type, or SpecificityNone when it does not match.
func (m MediaType) Match(canonical string) Specificity {
	typ, sub, ok := strings.Cut(canonical, "/")
	if !ok {
		return SpecificityNone
	}
	if m.Type != Wildcard && !strings.EqualFold(m.Type, typ) {
		return SpecificityNone
	}
	if m.Subtype != Wildcard && !strings.EqualFold(m.Subtype, sub) {
		return SpecificityNone
	}
	return m.Specificity()
}

// Matches reports whether the entry matches the canonical media type.
func (m MediaType) Matches(canonical string) bool {
	return m.Match(canonical) != SpecificityNone
}

// String formats the entry back into header syntax. The q parameter is
// written only when it differs from the default.
func (m MediaType) String() string {
	var sb strings.Builder
	sb.WriteString(m.Canonical())
	for _, p := range m.Params {
		sb.WriteString("; ")
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(quoteIfNeeded(p.Value))
	}
	if m.Quality != DefaultQuality {
		sb.WriteString("; q=")
		sb.WriteString(strconv.FormatFloat(m.Quality, 'f', -1, 64))
	}
	return sb.String()
}

// Canonicals returns the canonical form of every entry.
func (l AcceptList) Canonicals() []string {
	out := make([]string, 0, len(l))
	for _, m := range l {
		out = append(out, m.Canonical())
	}
	return out
}

// quoteIfNeeded wraps a parameter value in quotes when it contains
// characters outside the token grammar.
func quoteIfNeeded(v string) string {
	if v == "" {
		return `""`
	}
	for i := 0; i < len(v); i++ {
		if !isTokenChar(v[i]) {
			return quote(v)
		}
	}
	return v
}

// quote renders v as an HTTP quoted-string.
func quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(v[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// isTokenChar reports whether c is a tchar (RFC 9110 section 5.6.2).
func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0
}
