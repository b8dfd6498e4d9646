// Package splitter decomposes a raw url-like string into its canonical
// fields without validating it.
package splitter

import "strings"

type Query struct {
	Search string
	Hash   string
	// Remainder is the origin and path part, empty for a bare query string.
	Remainder string
}

type Origin struct {
	Protocol string
	Hostname string
	Port     string
	Pathname string
}

// SplitQuery separates search and hash from the rest of raw.
//
// Input without any '/' is taken as a bare query string: the first '?' is
// dropped and the rest is split on '#'. Otherwise everything before the first
// '?' is the remainder, and the text between the first and second '?' is split
// on '#'. Text after a second '?' or '#' is discarded.
func SplitQuery(raw string) Query {
	if !strings.Contains(raw, "/") {
		search, hash := splitHash(strings.Replace(raw, "?", "", 1))
		return Query{Search: search, Hash: hash}
	}

	remainder, rest, ok := strings.Cut(raw, "?")
	if !ok {
		return Query{Remainder: remainder}
	}

	rest, _, _ = strings.Cut(rest, "?")
	search, hash := splitHash(rest)
	return Query{Search: search, Hash: hash, Remainder: remainder}
}

func splitHash(s string) (string, string) {
	before, after, _ := strings.Cut(s, "#")
	after, _, _ = strings.Cut(after, "#")
	return before, after
}

// SplitOrigin extracts protocol, hostname, port and pathname from the
// remainder returned by SplitQuery.
//
// The protocol is whatever precedes "//", kept verbatim. When nothing follows
// the authority segment the pathname is the authority itself, so
// "https://example.com" yields Pathname "example.com".
func SplitOrigin(remainder string) Origin {
	var o Origin

	path := remainder
	if protocol, rest, ok := strings.Cut(remainder, "//"); ok {
		o.Protocol = protocol
		path, _, _ = strings.Cut(rest, "//")
	}

	segments := strings.Split(path, "/")

	authority := strings.Split(segments[0], ":")
	o.Hostname = authority[0]
	if len(authority) > 1 {
		o.Port = authority[1]
	}

	if len(segments) == 1 {
		o.Pathname = segments[0]
		return o
	}

	var b strings.Builder
	for _, s := range segments[1:] {
		b.WriteByte('/')
		b.WriteString(s)
	}
	o.Pathname = b.String()

	return o
}

// Split runs SplitQuery then SplitOrigin on its remainder.
func Split(raw string) (Origin, Query) {
	q := SplitQuery(raw)
	return SplitOrigin(q.Remainder), q
}
