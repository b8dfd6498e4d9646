// Package query converts between a flat "key=value&key=value" string and
// an ordered key/value mapping. No percent decoding is done.
package query

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Values is an insertion ordered mapping. The first Set of a key fixes its
// position, later Sets only replace the value. Values is used through a
// pointer, Clone gives an independent copy.
type Values struct {
	keys []string
	m    map[string]string
}

func New() *Values {
	return &Values{m: make(map[string]string)}
}

// FromMap orders keys lexically, a Go map has no order of its own.
func FromMap(m map[string]string) *Values {
	keys := lo.Keys(m)
	sort.Strings(keys)

	v := New()
	for _, k := range keys {
		v.Set(k, m[k])
	}
	return v
}

// Parse drops every piece that does not split into exactly two parts on '='.
// A later duplicate key overwrites the earlier value.
func Parse(search string) *Values {
	v := New()
	for _, pair := range strings.Split(search, "&") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			continue
		}
		v.Set(kv[0], kv[1])
	}
	return v
}

func (v *Values) Set(key, value string) {
	if v.m == nil {
		v.m = make(map[string]string)
	}

	if _, ok := v.m[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.m[key] = value
}

func (v *Values) Get(key string) (string, bool) {
	if v == nil {
		return "", false
	}
	value, ok := v.m[key]
	return value, ok
}

func (v *Values) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Del removes keys, missing keys are ignored.
func (v *Values) Del(keys ...string) {
	for _, k := range keys {
		if !v.Has(k) {
			continue
		}
		delete(v.m, k)
		v.keys = lo.Without(v.keys, k)
	}
}

// Merge copies other on top of v, values from other win.
func (v *Values) Merge(other *Values) {
	for _, k := range other.Keys() {
		v.Set(k, other.m[k])
	}
}

func (v *Values) Len() int {
	if v == nil {
		return 0
	}
	return len(v.keys)
}

func (v *Values) Keys() []string {
	if v == nil {
		return nil
	}
	return append([]string(nil), v.keys...)
}

func (v *Values) Map() map[string]string {
	if v == nil {
		return map[string]string{}
	}
	return lo.Assign(map[string]string{}, v.m)
}

func (v *Values) Clone() *Values {
	c := New()
	c.Merge(v)
	return c
}

// Encode joins pairs with '&' in insertion order. A nil Values encodes to "".
func (v *Values) Encode() string {
	var b strings.Builder
	for i, k := range v.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v.m[k])
	}
	return b.String()
}

func (v *Values) String() string {
	return v.Encode()
}
