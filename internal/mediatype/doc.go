// Package mediatype parses Accept and Content-Type header values into
// structured media types.
//
// Parsing is lenient: an entry that does not follow the media-range grammar
// is skipped and the rest of the header is still evaluated. A malformed
// quality value is dropped and the entry keeps the default quality of 1.
//
// # Example Usage
//
//	list := mediatype.Parse("application/json;q=0.9, application/cbor")
//	for _, mt := range list {
//	    fmt.Println(mt.Canonical(), mt.Quality)
//	}
//
//	ct, ok := mediatype.ParseContentType("application/json; charset=utf-8")
//	if ok {
//	    charset, _ := ct.Param("charset")
//	}
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package mediatype
