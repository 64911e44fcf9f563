package luapat

import (
	"iter"
	"unsafe"
)

// Iterator walks the successive non-overlapping matches of a pattern. Call
// Next before reading Result. A leading '^' in the pattern is skipped and
// does not anchor the iteration.
//
//	it := luapat.Gmatch(subject, pattern)
//	for it.Next() {
//		use(it.Result())
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[S, P CodeUnit] struct {
	ms        *matchState[S, P]
	pos       int
	lastMatch int
	cur       Result[S]
	err       error
}

// Gmatch returns an iterator over the matches of pattern in subject.
func Gmatch[S, P CodeUnit](subject []S, pattern []P) *Iterator[S, P] {
	return &Iterator[S, P]{
		ms:        newMatchState(subject, pattern),
		lastMatch: noMatch,
	}
}

// Next advances to the next match. It returns false when the subject is
// exhausted or an error occurred.
func (it *Iterator[S, P]) Next() bool {
	it.cur = Result[S]{}
	if it.err != nil {
		return false
	}
	for it.pos <= len(it.ms.src) {
		e, err := it.ms.run(it.pos)
		if err != nil {
			it.fail(err)
			return false
		}
		// An empty match where the previous one ended would stall.
		if e == noMatch || e == it.lastMatch {
			it.pos++
			it.lastMatch = e
			continue
		}
		if err := it.ms.checkCaptures(); err != nil {
			it.fail(err)
			return false
		}
		it.cur = it.ms.result(it.pos, e)
		it.lastMatch = e
		it.pos = e
		return true
	}
	return false
}

func (it *Iterator[S, P]) fail(err error) {
	it.err = err
	it.pos = len(it.ms.src) + 1
}

// Result returns the current match. It is the zero Result before the first
// call to Next and after iteration ends.
func (it *Iterator[S, P]) Result() Result[S] {
	return it.cur
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[S, P]) Err() error {
	return it.err
}

// Equal reports whether both iterators walk the same subject and pattern
// views and stand at the same cursor.
func (it *Iterator[S, P]) Equal(other *Iterator[S, P]) bool {
	a, b := it.ms, other.ms
	return unsafe.SliceData(a.src) == unsafe.SliceData(b.src) && len(a.src) == len(b.src) &&
		unsafe.SliceData(a.pat) == unsafe.SliceData(b.pat) && len(a.pat) == len(b.pat) &&
		it.pos == other.pos
}

// All yields the remaining matches. Check Err afterwards.
func (it *Iterator[S, P]) All() iter.Seq[Result[S]] {
	return func(yield func(Result[S]) bool) {
		for it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}
