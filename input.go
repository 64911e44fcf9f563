package luapat

import (
	"io"
	"unicode/utf16"
)

// CodeUnit is the set of fixed-width element types a subject, pattern or
// replacement can be made of. Values are compared as unsigned 32-bit
// integers; no Unicode decoding takes place.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32 | ~int32
}

// unit widens a code unit for comparison. int32 values (runes) are
// reinterpreted as unsigned.
func unit[T CodeUnit](c T) uint32 {
	return uint32(c)
}

// UTF16 returns s encoded as 16-bit code units, for matching against
// UTF-16 data with 16-bit patterns.
func UTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromUTF16 decodes 16-bit code units back into a string.
func FromUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}

// Runes returns s as 32-bit code units.
func Runes(s string) []rune {
	return []rune(s)
}

// ReadInput reads r fully into memory. Backtracking needs random access to
// the subject, so streaming is not supported.
func ReadInput(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// MatchReader reports whether the text read from r contains a match of
// pattern.
func MatchReader(r io.Reader, pattern string) (bool, error) {
	b, err := ReadInput(r)
	if err != nil {
		return false, err
	}
	return Match(b, []byte(pattern))
}
