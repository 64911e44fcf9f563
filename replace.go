package luapat

import "strconv"

// replacer appends the replacement for the match [s,e) to out.
type replacer[S, P CodeUnit] func(ms *matchState[S, P], s, e int, out []S) ([]S, error)

// Gsub returns a copy of subject in which the first n matches of pattern
// (all of them if n < 0) are replaced by the template repl. In repl, "%%"
// stands for '%', "%0" for the whole match and "%1"-"%9" for a capture; a
// position capture is written as its 1-based offset. When the pattern has
// no captures, "%1" is the whole match.
func Gsub[S, P, R CodeUnit](subject []S, pattern []P, repl []R, n int) ([]S, error) {
	return gsub(subject, pattern, n, func(ms *matchState[S, P], s, e int, out []S) ([]S, error) {
		return expandTemplate(ms, out, repl, s, e)
	})
}

// GsubFunc is like Gsub but appends the units returned by fn for each match.
func GsubFunc[S, P CodeUnit](subject []S, pattern []P, fn func(Result[S]) []S, n int) ([]S, error) {
	return gsub(subject, pattern, n, func(ms *matchState[S, P], s, e int, out []S) ([]S, error) {
		return append(out, fn(ms.result(s, e))...), nil
	})
}

// GsubString is Gsub over strings.
func GsubString(s, pattern, repl string, n int) (string, error) {
	out, err := Gsub([]byte(s), []byte(pattern), []byte(repl), n)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// GsubStringFunc is GsubFunc over strings.
func GsubStringFunc(s, pattern string, fn func(Result[byte]) string, n int) (string, error) {
	out, err := GsubFunc([]byte(s), []byte(pattern), func(r Result[byte]) []byte {
		return []byte(fn(r))
	}, n)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func gsub[S, P CodeUnit](subject []S, pattern []P, n int, repl replacer[S, P]) ([]S, error) {
	ms := newMatchState(subject, pattern)
	out := make([]S, 0, len(subject))
	lastMatch := noMatch
	copied := 0

	for s := 0; s <= len(subject) && n != 0; {
		e, err := ms.run(s)
		if err != nil {
			return nil, err
		}
		if e == noMatch || e == lastMatch {
			s++
		} else {
			n--
			out = append(out, subject[copied:s]...)
			if err := ms.checkCaptures(); err != nil {
				return nil, err
			}
			if out, err = repl(ms, s, e, out); err != nil {
				return nil, err
			}
			lastMatch, copied, s = e, e, e
		}
		if ms.anchor {
			break
		}
	}
	return append(out, subject[copied:]...), nil
}

func expandTemplate[S, P, R CodeUnit](ms *matchState[S, P], out []S, repl []R, s, e int) ([]S, error) {
	for i := 0; i < len(repl); i++ {
		if repl[i] != '%' {
			out = append(out, S(repl[i]))
			continue
		}
		i++
		if i >= len(repl) {
			return nil, newError(PercentInvalidUseInReplacement, i-1)
		}
		switch d := repl[i]; {
		case d == '%':
			out = append(out, '%')
		case d == '0':
			out = append(out, ms.src[s:e]...)
		case '1' <= d && d <= '9':
			ms.installWhole(s, e)
			l := int(unit(d)) - '1'
			if l >= ms.level {
				return nil, newError(CaptureInvalidIndex, i-1)
			}
			c := ms.capture[l]
			if c.state == capPosition {
				for _, b := range strconv.AppendInt(nil, int64(c.init+1), 10) {
					out = append(out, S(b))
				}
				continue
			}
			out = append(out, ms.src[c.init:c.init+c.length]...)
		default:
			return nil, newError(PercentInvalidUseInReplacement, i-1)
		}
	}
	return out, nil
}
