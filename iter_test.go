package luapat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, subject, pattern string) []string {
	t.Helper()
	var out []string
	it := Gmatch([]byte(subject), []byte(pattern))
	for it.Next() {
		out = append(out, string(it.Result().Text()))
	}
	require.NoError(t, it.Err())
	return out
}

func TestGmatch(t *testing.T) {
	tests := []struct {
		pattern string
		subject string
		want    []string
	}{
		{"%a+", "hello world from Lua", []string{"hello", "world", "from", "Lua"}},
		{"%d", "", nil},
		{"x*", "abc", []string{"", "", "", ""}},
		{"a*", "baaac", []string{"", "aaa", ""}},
		{"%w+=%w+", "k=v, a=1", []string{"k=v", "a=1"}},
		{"^%a", "ab", []string{"a", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, collect(t, tt.subject, tt.pattern), "Gmatch(%q, %q)", tt.subject, tt.pattern)
	}
}

func TestGmatchOffsets(t *testing.T) {
	it := Gmatch([]byte("x*"), []byte("x*"))

	var spans [][2]int
	for it.Next() {
		s, e := it.Result().Span()
		spans = append(spans, [2]int{s, e})
	}
	require.NoError(t, it.Err())
	assert.Equal(t, [][2]int{{0, 1}, {2, 2}}, spans)
}

func TestGmatchCaptures(t *testing.T) {
	it := Gmatch([]byte("from=world, to=Lua"), []byte("(%w+)=(%w+)"))

	got := map[string]string{}
	for it.Next() {
		caps := it.Result().Captures()
		require.Len(t, caps, 2)
		got[string(caps[0])] = string(caps[1])
	}
	require.NoError(t, it.Err())
	assert.Equal(t, map[string]string{"from": "world", "to": "Lua"}, got)
}

func TestIteratorResultLifecycle(t *testing.T) {
	it := Gmatch([]byte("a1"), []byte("%d"))
	assert.False(t, it.Result().Found(), "Result before Next")

	require.True(t, it.Next())
	assert.Equal(t, "1", string(it.Result().Text()))

	assert.False(t, it.Next())
	assert.False(t, it.Result().Found(), "Result after the last match")
	assert.False(t, it.Next(), "Next after exhaustion")
	assert.NoError(t, it.Err())
}

func TestIteratorError(t *testing.T) {
	it := Gmatch([]byte("abc"), []byte("(%a"))
	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrCaptureNotFinished)
	assert.False(t, it.Next(), "iteration stays stopped after an error")
}

func TestIteratorAll(t *testing.T) {
	it := Gmatch([]byte("one two three"), []byte("%a+"))

	var got []string
	for r := range it.All() {
		got = append(got, string(r.Text()))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)

	// Breaking out leaves the iterator where it stopped.
	require.True(t, it.Next())
	assert.Equal(t, "three", string(it.Result().Text()))
}

func TestIteratorEqual(t *testing.T) {
	subject := []byte("a b c")
	pattern := []byte("%a")

	a := Gmatch(subject, pattern)
	b := Gmatch(subject, pattern)
	assert.True(t, a.Equal(b))

	a.Next()
	assert.False(t, a.Equal(b))
	b.Next()
	assert.True(t, a.Equal(b))

	// Same contents in a different buffer is a different iterator.
	c := Gmatch([]byte("a b c"), pattern)
	assert.False(t, a.Equal(c))

	// Exhausted iterators over the same views compare equal.
	for a.Next() {
	}
	for b.Next() {
	}
	assert.True(t, a.Equal(b))
}

func TestGmatchWideUnits(t *testing.T) {
	subject := Runes("naïve café 日本")
	it := Gmatch(subject, []rune("[^ ]+"))

	var got []string
	for it.Next() {
		got = append(got, string(it.Result().Text()))
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []string{"naïve", "café", "日本"}, got)
}
