// Package mutableurl holds a url-like string as six canonical fields which
// can be read, rewritten in place and serialized back on demand.
package mutableurl

import (
	"strings"

	"github.com/samber/lo"
	"github.com/tg123/mutableurl/common"
	"github.com/tg123/mutableurl/query"
	"github.com/tg123/mutableurl/splitter"
)

// URL is not safe for concurrent mutation.
type URL struct {
	protocol string
	hostname string
	port     string
	pathname string
	search   string
	hash     string
}

// Parse never fails, malformed input degrades into whatever the splitters
// make of it.
func Parse(raw string) *URL {
	origin, q := splitter.Split(raw)

	return &URL{
		protocol: origin.Protocol,
		hostname: origin.Hostname,
		port:     origin.Port,
		pathname: origin.Pathname,
		search:   q.Search,
		hash:     q.Hash,
	}
}

func FromLocation(l common.Location) *URL {
	u := &URL{}
	u.setLocation(l)
	return u
}

func (u *URL) setLocation(l common.Location) {
	u.protocol = l.Protocol
	u.hostname = l.Hostname
	u.port = l.Port
	u.pathname = l.Pathname
	u.search = l.Search
	u.hash = l.Hash
}

func (u *URL) Location() common.Location {
	return common.Location{
		Protocol: u.protocol,
		Hostname: u.hostname,
		Port:     u.port,
		Pathname: u.pathname,
		Search:   u.search,
		Hash:     u.hash,
	}
}

func (u *URL) Clone() *URL {
	c := *u
	return &c
}

func (u *URL) Hash() string     { return u.hash }
func (u *URL) Hostname() string { return u.hostname }
func (u *URL) Pathname() string { return u.pathname }
func (u *URL) Port() string     { return u.port }
func (u *URL) Protocol() string { return u.protocol }
func (u *URL) Search() string   { return u.search }

// SearchObject decodes the search on every call, changes to the result do
// not reach u until passed to SetSearchValues.
func (u *URL) SearchObject() *query.Values {
	return query.Parse(u.search)
}

// Host is hostname[:port].
func (u *URL) Host() string {
	if u.port == "" {
		return u.hostname
	}
	return u.hostname + ":" + u.port
}

// Origin is [protocol//]hostname[:port].
func (u *URL) Origin() string {
	if u.protocol == "" {
		return u.Host()
	}
	return u.protocol + "//" + u.Host()
}

func (u *URL) Href() string {
	return u.String()
}

// PathArray returns the non-empty pathname segments in a new slice.
func (u *URL) PathArray() []string {
	return lo.Compact(strings.Split(u.pathname, "/"))
}

// SetSearch replaces the whole search. The string is decoded and encoded
// again, dropping malformed pairs and collapsing duplicate keys.
func (u *URL) SetSearch(search string) {
	u.SetSearchValues(query.Parse(search))
}

func (u *URL) SetSearchValues(v *query.Values) {
	u.search = v.Encode()
}

// MergeSearch adds the pairs of search to the current ones, new values win.
func (u *URL) MergeSearch(search string) {
	u.MergeSearchValues(query.Parse(search))
}

func (u *URL) MergeSearchValues(v *query.Values) {
	current := u.SearchObject()
	current.Merge(v)
	u.search = current.Encode()
}

// DeleteSearch removes keys from the search, absent keys are ignored.
func (u *URL) DeleteSearch(keys ...string) {
	current := u.SearchObject()
	current.Del(keys...)
	u.search = current.Encode()
}

// SetHash stores hash verbatim, it must not start with '#'.
func (u *URL) SetHash(hash string) {
	u.hash = hash
}

// SetOrigin replaces protocol, hostname and port. The pathname is kept.
func (u *URL) SetOrigin(origin string) {
	o := splitter.SplitOrigin(origin)
	u.protocol = o.Protocol
	u.hostname = o.Hostname
	u.port = o.Port
}

// SetPathname stores pathname verbatim.
func (u *URL) SetPathname(pathname string) {
	u.pathname = pathname
}

// SetPathArray joins the non-empty segments with '/'. No segments gives an
// empty pathname.
func (u *URL) SetPathArray(segments []string) {
	joined := strings.Join(lo.Compact(segments), "/")
	if joined == "" {
		u.pathname = ""
		return
	}
	u.pathname = "/" + joined
}

// String reassembles the url. The search gets a '?' only after a non-empty
// pathname, so a bare query string round-trips unchanged.
func (u *URL) String() string {
	var b strings.Builder

	if u.protocol != "" {
		b.WriteString(u.protocol)
		b.WriteString("//")
	}
	b.WriteString(u.hostname)
	if u.port != "" {
		b.WriteByte(':')
		b.WriteString(u.port)
	}
	b.WriteString(u.pathname)
	if u.search != "" {
		if u.pathname != "" {
			b.WriteByte('?')
		}
		b.WriteString(u.search)
	}
	if u.hash != "" {
		b.WriteByte('#')
		b.WriteString(u.hash)
	}

	return b.String()
}

func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	*u = *Parse(string(text))
	return nil
}
