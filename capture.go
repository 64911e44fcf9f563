package luapat

import "slices"

// captureState tags a capture slot.
type captureState uint8

const (
	capUnfinished captureState = iota // '(' seen, ')' pending
	capPosition                       // "()": records an offset only
	capFinished                       // closed; length is valid
)

type capture struct {
	init   int
	length int
	state  captureState
}

// startCapture opens slot ms.level at subject offset s and matches the rest
// of the pattern from p, which points just past the '('. A failed remainder
// undoes the open.
func (ms *matchState[S, P]) startCapture(s, p int) (int, error) {
	if ms.level >= MaxCaptures {
		return noMatch, newError(CaptureTooMany, p-1)
	}
	c := &ms.capture[ms.level]
	c.init = s
	c.length = 0
	if p < len(ms.pat) && ms.pat[p] == ')' {
		c.state = capPosition
		p++
	} else {
		c.state = capUnfinished
	}
	ms.level++

	res, err := ms.match(s, p)
	if err == nil && res == noMatch {
		ms.level--
		ms.capture[ms.level].state = capUnfinished
	}
	return res, err
}

// endCapture closes the innermost unfinished slot at subject offset s.
func (ms *matchState[S, P]) endCapture(s, p int) (int, error) {
	for l := ms.level - 1; l >= 0; l-- {
		c := &ms.capture[l]
		if c.state != capUnfinished {
			continue
		}
		c.length = s - c.init
		c.state = capFinished

		res, err := ms.match(s, p)
		if err == nil && res == noMatch {
			c.state = capUnfinished
			c.length = 0
		}
		return res, err
	}
	return noMatch, newError(CaptureInvalidPattern, p-1)
}

// matchBackref matches the text of capture d ('1'..'9') at subject offset s.
// p is the pattern offset of the '%', used for error reporting.
func (ms *matchState[S, P]) matchBackref(s int, d P, p int) (int, error) {
	l := int(unit(d)) - '1'
	if l < 0 || l >= ms.level || ms.capture[l].state == capUnfinished {
		return noMatch, newError(CaptureInvalidIndex, p)
	}
	c := ms.capture[l]
	if c.state == capPosition {
		return noMatch, nil
	}
	n := c.length
	if len(ms.src)-s < n || !slices.Equal(ms.src[c.init:c.init+n], ms.src[s:s+n]) {
		return noMatch, nil
	}
	return s + n, nil
}

// checkCaptures reports a group that was opened but never closed by a
// successful match.
func (ms *matchState[S, P]) checkCaptures() error {
	for l := 0; l < ms.level; l++ {
		if ms.capture[l].state == capUnfinished {
			return newError(CaptureNotFinished, -1)
		}
	}
	return nil
}

// installWhole records the whole match [s,e) as capture 1 when the pattern
// defined none. Replacement templates rely on it for "%1".
func (ms *matchState[S, P]) installWhole(s, e int) {
	if ms.level != 0 {
		return
	}
	ms.capture[0] = capture{init: s, length: e - s, state: capFinished}
	ms.level = 1
}
