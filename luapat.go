// Package luapat implements Lua-style patterns over sequences of fixed-width
// code units.
//
// A pattern is a sequence of items:
//
//   - x: a literal unit (any unit that is not one of ^$()%.[]*+-?)
//   - .: any unit
//   - %a %c %d %g %l %p %s %u %w %x: letters, control units, digits,
//     printable units except space, lowercase, punctuation, space,
//     uppercase, alphanumerics and hexadecimal digits; the uppercase
//     selector is the complement
//   - %x for a non-alphanumeric x: the unit x itself
//   - [set] and [^set]: a union of units, ranges a-z and %-classes
//   - an item followed by * (longest), + (one or more, longest),
//     - (shortest) or ? (optional)
//   - %1-%9: the text of a finished capture
//   - %bxy: a balanced run delimited by x and y
//   - %f[set]: the boundary where the previous unit is not in set and the
//     next one is
//   - ( ... ): a capture; () captures the current offset
//
// A leading ^ anchors a search at the subject start and a trailing $ at its
// end. Classification uses the C locale on units 0-255; wider units only
// match literally, by range, or through '.'.
//
// Patterns are not compiled. Every call scans the pattern text again, and
// all matching state lives in the call, so concurrent calls need no locking.
package luapat

import "strconv"

// Find returns the first match of pattern in subject. A failed search is a
// zero Result and a nil error.
func Find[S, P CodeUnit](subject []S, pattern []P) (Result[S], error) {
	ms := newMatchState(subject, pattern)
	for s := 0; s <= len(subject); s++ {
		e, err := ms.run(s)
		if err != nil {
			return Result[S]{}, err
		}
		if e != noMatch {
			if err := ms.checkCaptures(); err != nil {
				return Result[S]{}, err
			}
			return ms.result(s, e), nil
		}
		if ms.anchor {
			break
		}
	}
	return Result[S]{}, nil
}

// MatchString reports whether s contains a match of pattern.
func MatchString(s, pattern string) (bool, error) {
	r, err := Find([]byte(s), []byte(pattern))
	return r.Found(), err
}

// FindString returns the text of the first match, or "" if there is none.
func FindString(s, pattern string) (string, error) {
	r, err := Find([]byte(s), []byte(pattern))
	if err != nil || !r.Found() {
		return "", err
	}
	return s[r.start:r.end], nil
}

// FindStringIndex returns the [start, end) offsets of the first match, or
// nil if there is none.
func FindStringIndex(s, pattern string) ([]int, error) {
	r, err := Find([]byte(s), []byte(pattern))
	if err != nil || !r.Found() {
		return nil, err
	}
	return []int{r.start, r.end}, nil
}

// FindStringSubmatch returns the captures of the first match, or the whole
// match when pattern has no captures. A position capture is rendered as its
// 1-based offset. It returns nil if there is no match.
func FindStringSubmatch(s, pattern string) ([]string, error) {
	r, err := Find([]byte(s), []byte(pattern))
	if err != nil || !r.Found() {
		return nil, err
	}
	return captureStrings(s, r), nil
}

// FindAllString returns successive non-overlapping matches of pattern in s.
// n < 0 means all matches.
func FindAllString(s, pattern string, n int) ([]string, error) {
	idx, err := FindAllStringIndex(s, pattern, n)
	if err != nil || idx == nil {
		return nil, err
	}
	out := make([]string, len(idx))
	for i, m := range idx {
		out[i] = s[m[0]:m[1]]
	}
	return out, nil
}

// FindAllStringIndex is like FindAllString but returns [start, end) pairs.
func FindAllStringIndex(s, pattern string, n int) ([][]int, error) {
	return FindAllIndex([]byte(s), []byte(pattern), n)
}

func captureStrings(s string, r Result[byte]) []string {
	if len(r.caps) == 0 {
		return []string{s[r.start:r.end]}
	}
	out := make([]string, len(r.caps))
	for i, c := range r.caps {
		if c.Position {
			out[i] = strconv.Itoa(c.Start + 1)
			continue
		}
		out[i] = s[c.Start:c.End]
	}
	return out
}
