package luapat

const (
	// MaxCaptures is the number of capture groups a pattern may open.
	MaxCaptures = 32

	// MaxMatchDepth bounds the nesting of the recursive matcher. Patterns
	// that need deeper backtracking fail with PatternTooComplex instead of
	// exhausting the goroutine stack.
	MaxMatchDepth = 200
)

// noMatch is the subject offset returned for an ordinary match failure.
const noMatch = -1

// matchState is the mutable context of one top-level call. It is owned by
// the caller for the duration of that call and never shared.
type matchState[S, P CodeUnit] struct {
	src     []S
	pat     []P
	begin   int  // first pattern unit after an optional '^'
	anchor  bool // pattern started with '^'
	level   int  // slots in use, finished or not
	depth   int
	capture [MaxCaptures]capture
}

func newMatchState[S, P CodeUnit](src []S, pat []P) *matchState[S, P] {
	ms := &matchState[S, P]{src: src, pat: pat}
	if len(pat) > 0 && pat[0] == '^' {
		ms.anchor = true
		ms.begin = 1
	}
	return ms
}

// reset prepares the state for a new start offset.
func (ms *matchState[S, P]) reset() {
	ms.level = 0
}

// run attempts a match starting exactly at subject offset s.
func (ms *matchState[S, P]) run(s int) (int, error) {
	ms.reset()
	return ms.match(s, ms.begin)
}

// match tries to match the pattern from p against the subject from s. It
// returns the subject offset just past the match, or noMatch.
func (ms *matchState[S, P]) match(s, p int) (int, error) {
	ms.depth++
	defer func() { ms.depth-- }()
	if ms.depth > MaxMatchDepth {
		return noMatch, newError(PatternTooComplex, p)
	}

	var err error
	for {
		if p == len(ms.pat) {
			return s, nil
		}

		switch ms.pat[p] {
		case '(':
			return ms.startCapture(s, p+1)
		case ')':
			return ms.endCapture(s, p+1)
		case '$':
			if p+1 == len(ms.pat) {
				if s == len(ms.src) {
					return s, nil
				}
				return noMatch, nil
			}
		case '%':
			if p+1 >= len(ms.pat) {
				break
			}
			switch d := ms.pat[p+1]; d {
			case 'b':
				if s, err = ms.matchBalance(s, p+2); s == noMatch || err != nil {
					return noMatch, err
				}
				p += 4
				continue
			case 'f':
				if p, err = ms.matchFrontier(s, p+2); p == noMatch || err != nil {
					return noMatch, err
				}
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
				if s, err = ms.matchBackref(s, d, p); s == noMatch || err != nil {
					return noMatch, err
				}
				p += 2
				continue
			}
		}

		// A single-unit item with an optional repetition suffix.
		ep, err := classEnd(ms.pat, p)
		if err != nil {
			return noMatch, err
		}
		var suffix P
		if isSuffix(ms.pat, ep) {
			suffix = ms.pat[ep]
		}

		if !ms.singleMatch(s, p, ep) {
			if suffix == '*' || suffix == '?' || suffix == '-' {
				p = ep + 1
				continue
			}
			return noMatch, nil
		}

		switch suffix {
		case '?':
			res, err := ms.match(s+1, ep+1)
			if res != noMatch || err != nil {
				return res, err
			}
			p = ep + 1
		case '+':
			return ms.maxExpand(s+1, p, ep)
		case '*':
			return ms.maxExpand(s, p, ep)
		case '-':
			return ms.minExpand(s, p, ep)
		default:
			s++
			p = ep
		}
	}
}

// singleMatch tests the subject unit at s against the item p[p:ep].
func (ms *matchState[S, P]) singleMatch(s, p, ep int) bool {
	if s >= len(ms.src) {
		return false
	}
	c := unit(ms.src[s])
	switch ms.pat[p] {
	case '.':
		return true
	case '%':
		return matchClass(c, unit(ms.pat[p+1]))
	case '[':
		return matchBracket(c, ms.pat, p, ep-1)
	default:
		return unit(ms.pat[p]) == c
	}
}

// maxExpand matches as many repetitions of the item as possible, then
// gives them back one at a time until the rest of the pattern matches.
func (ms *matchState[S, P]) maxExpand(s, p, ep int) (int, error) {
	i := 0
	for ms.singleMatch(s+i, p, ep) {
		i++
	}
	for ; i >= 0; i-- {
		res, err := ms.match(s+i, ep+1)
		if res != noMatch || err != nil {
			return res, err
		}
	}
	return noMatch, nil
}

// minExpand tries the rest of the pattern first and consumes one more
// repetition only when that fails.
func (ms *matchState[S, P]) minExpand(s, p, ep int) (int, error) {
	for {
		res, err := ms.match(s, ep+1)
		if res != noMatch || err != nil {
			return res, err
		}
		if !ms.singleMatch(s, p, ep) {
			return noMatch, nil
		}
		s++
	}
}

// matchBalance handles %bxy. p points at x.
func (ms *matchState[S, P]) matchBalance(s, p int) (int, error) {
	if p+1 >= len(ms.pat) {
		return noMatch, newError(BalancedNoArguments, p-2)
	}
	if s >= len(ms.src) || unit(ms.src[s]) != unit(ms.pat[p]) {
		return noMatch, nil
	}
	open, close := unit(ms.pat[p]), unit(ms.pat[p+1])
	depth := 1
	for s++; s < len(ms.src); s++ {
		switch unit(ms.src[s]) {
		case close:
			if depth--; depth == 0 {
				return s + 1, nil
			}
		case open:
			depth++
		}
	}
	return noMatch, nil
}

// matchFrontier handles %f[set]. p points at the '['; on success it returns
// the pattern offset just past the set. The unit before the subject and the
// unit at its end both read as NUL.
func (ms *matchState[S, P]) matchFrontier(s, p int) (int, error) {
	if p >= len(ms.pat) || ms.pat[p] != '[' {
		return noMatch, newError(FrontierNoOpenBracket, p-2)
	}
	ep, err := classEnd(ms.pat, p)
	if err != nil {
		return noMatch, err
	}
	var prev, cur uint32
	if s > 0 {
		prev = unit(ms.src[s-1])
	}
	if s < len(ms.src) {
		cur = unit(ms.src[s])
	}
	if !matchBracket(prev, ms.pat, p, ep-1) && matchBracket(cur, ms.pat, p, ep-1) {
		return ep, nil
	}
	return noMatch, nil
}

// result snapshots a successful match of [s,e).
func (ms *matchState[S, P]) result(s, e int) Result[S] {
	r := Result[S]{subject: ms.src, start: s, end: e, found: true}
	if ms.level > 0 {
		r.caps = make([]Capture, ms.level)
		for i, c := range ms.capture[:ms.level] {
			r.caps[i] = Capture{Start: c.init, End: c.init + c.length, Position: c.state == capPosition}
		}
	}
	return r
}
