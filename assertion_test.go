package luapat

import (
	"reflect"
	"testing"
)

// TestAnchors tests '^' and '$'
func TestAnchors(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []int
	}{
		{"^a", "ab", []int{0, 1}},
		{"^a", "ba", nil},
		{"^", "abc", []int{0, 0}},
		{"$", "abc", []int{3, 3}},
		{"^$", "", []int{0, 0}},
		{"^$", "a", nil},
		{"^abc$", "abc", []int{0, 3}},
		{"^abc$", "abcd", nil},
		{"^%a-$", "word", []int{0, 4}},
		{"^^", "^x", []int{0, 1}},
	}

	for _, tt := range tests {
		got, err := FindStringIndex(tt.input, tt.pattern)
		if err != nil {
			t.Errorf("FindStringIndex(%q, %q) error: %v", tt.input, tt.pattern, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindStringIndex(%q, %q) = %v; want %v", tt.input, tt.pattern, got, tt.want)
		}
	}
}

// TestBalanced tests %bxy
func TestBalanced(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    string
	}{
		{"%b()", "(foo(bar))baz", "(foo(bar))"},
		{"%b()", "x(a)(b)", "(a)"},
		{"%b()", "((unclosed)", "(unclosed)"},
		{"%b()", "no parens", ""},
		{"%b{}", "f{ if {x} }g", "{ if {x} }"},
		{"%b\"\"", `say "hi" now`, `"hi"`},
		{"%b()%a+", "(x)yz", "(x)yz"},
		{"%w+%b[]", "call arr[i[j]] end", "arr[i[j]]"},
	}

	for _, tt := range tests {
		got, err := FindString(tt.input, tt.pattern)
		if err != nil {
			t.Errorf("FindString(%q, %q) error: %v", tt.input, tt.pattern, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FindString(%q, %q) = %q; want %q", tt.input, tt.pattern, got, tt.want)
		}
	}
}

// TestFrontier tests %f[set]
func TestFrontier(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    []string
	}{
		{"%f[%w]%w+", "THE (quick) fox", []string{"THE", "quick", "fox"}},
		{"%f[%a]%a+%f[%A]", "one two3 four", []string{"one", "two", "four"}},
		{"%f[%S]", "  ab", []string{""}},
		{"%f[x]", "ab", nil},
		{"%f[%d]%d", "a1b22", []string{"1", "2"}},
	}

	for _, tt := range tests {
		got, err := FindAllString(tt.input, tt.pattern, -1)
		if err != nil {
			t.Errorf("FindAllString(%q, %q) error: %v", tt.input, tt.pattern, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FindAllString(%q, %q) = %q; want %q", tt.input, tt.pattern, got, tt.want)
		}
	}
}

// TestFrontierAtEnds checks that the units before the subject and at its end
// read as NUL.
func TestFrontierAtEnds(t *testing.T) {
	idx, err := FindStringIndex("abc", "%f[%a]")
	if err != nil {
		t.Fatalf("FindStringIndex error: %v", err)
	}
	if !reflect.DeepEqual(idx, []int{0, 0}) {
		t.Errorf("frontier at start = %v; want [0 0]", idx)
	}

	idx, err = FindStringIndex("abc", "c%f[%A]")
	if err != nil {
		t.Fatalf("FindStringIndex error: %v", err)
	}
	if !reflect.DeepEqual(idx, []int{2, 3}) {
		t.Errorf("frontier before end = %v; want [2 3]", idx)
	}

	idx, err = FindStringIndex("abc", "%f[^%a]")
	if err != nil {
		t.Fatalf("FindStringIndex error: %v", err)
	}
	if !reflect.DeepEqual(idx, []int{3, 3}) {
		t.Errorf("frontier at end = %v; want [3 3]", idx)
	}
}
