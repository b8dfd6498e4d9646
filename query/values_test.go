package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		search string
		keys   []string
		values map[string]string
	}{
		{
			name:   "empty",
			search: "",
			keys:   nil,
			values: map[string]string{},
		},
		{
			name:   "pairs",
			search: "test=test&jest=abc",
			keys:   []string{"test", "jest"},
			values: map[string]string{"test": "test", "jest": "abc"},
		},
		{
			name:   "duplicate keeps first position",
			search: "a=b&c=d&a=e",
			keys:   []string{"a", "c"},
			values: map[string]string{"a": "e", "c": "d"},
		},
		{
			name:   "malformed dropped",
			search: "a&b=c=d&e=f&=g&h=",
			keys:   []string{"e", "", "h"},
			values: map[string]string{"e": "f", "": "g", "h": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Parse(tt.search)
			assert.Equal(t, tt.keys, v.Keys())
			assert.Equal(t, tt.values, v.Map())
		})
	}
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "", New().Encode())
	assert.Equal(t, "test=test&jest=abc", Parse("test=test&jest=abc").Encode())
	assert.Equal(t, "a=e&c=d", Parse("a=b&c=d&a=e").Encode())

	var zero Values
	zero.Set("k", "v")
	assert.Equal(t, "k=v", zero.String())
}

func TestMerge(t *testing.T) {
	v := Parse("a=b")
	v.Merge(Parse("test=test&a=c"))

	assert.Equal(t, []string{"a", "test"}, v.Keys())
	assert.Equal(t, "a=c&test=test", v.Encode())
}

func TestDel(t *testing.T) {
	v := Parse("test=test&jest=abc")

	v.Del("missing")
	assert.Equal(t, "test=test&jest=abc", v.Encode())

	v.Del("test")
	assert.Equal(t, "jest=abc", v.Encode())
	assert.False(t, v.Has("test"))

	v.Del("jest", "test")
	assert.Equal(t, "", v.Encode())
	assert.Equal(t, 0, v.Len())
}

func TestFromMap(t *testing.T) {
	v := FromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, "a=1&b=2&c=3", v.Encode())

	got, ok := v.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", got)
}

func TestClone(t *testing.T) {
	v := Parse("a=b")
	c := v.Clone()
	c.Set("x", "y")

	assert.Equal(t, "a=b", v.Encode())
	assert.Equal(t, "a=b&x=y", c.Encode())

	m := v.Map()
	m["z"] = "z"
	assert.False(t, v.Has("z"))
}

func TestSharedValues(t *testing.T) {
	a := Parse("x=1&y=2")
	b := a
	b.Del("x")

	assert.Equal(t, "y=2", a.Encode())
	assert.Equal(t, 1, a.Len())
	assert.False(t, a.Has("x"))

	c := Parse("x=1")
	d := c.Clone()
	d.Set("z", "9")

	assert.Equal(t, "x=1", c.Encode())
	assert.False(t, c.Has("z"))
	assert.Equal(t, "x=1&z=9", d.Encode())
}

func TestNilValues(t *testing.T) {
	var v *Values

	assert.Equal(t, "", v.Encode())
	assert.Equal(t, 0, v.Len())
	assert.False(t, v.Has("a"))
	assert.Equal(t, map[string]string{}, v.Map())

	v.Del("a")

	w := Parse("a=b")
	w.Merge(nil)
	assert.Equal(t, "a=b", w.Encode())
}

func TestEncodeKeepsIntegerKeysInPlace(t *testing.T) {
	assert.Equal(t, "b=1&2=x", Parse("b=1&2=x").Encode())
}
