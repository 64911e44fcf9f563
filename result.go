package luapat

// Capture is the span of one capture group in the subject. A position
// capture "()" has Start == End and Position set; its value is the offset.
type Capture struct {
	Start    int
	End      int
	Position bool
}

// Result is the outcome of one match. The zero Result means "no match".
// It refers to the subject it was produced from and never copies it.
//
// When the pattern has no capture groups, NumCaptures reports 0 even though
// the whole match is available through Text and Span.
type Result[T CodeUnit] struct {
	subject []T
	start   int
	end     int
	found   bool
	caps    []Capture
}

// Found reports whether the pattern matched.
func (r Result[T]) Found() bool {
	return r.found
}

// Bool reports whether the result holds at least one capture.
func (r Result[T]) Bool() bool {
	return len(r.caps) > 0
}

// Start returns the offset of the first unit of the match, or -1.
func (r Result[T]) Start() int {
	if !r.found {
		return -1
	}
	return r.start
}

// End returns the offset one past the last unit of the match, or -1.
func (r Result[T]) End() int {
	if !r.found {
		return -1
	}
	return r.end
}

// Span returns Start and End.
func (r Result[T]) Span() (int, int) {
	return r.Start(), r.End()
}

// Length returns the number of units matched.
func (r Result[T]) Length() int {
	return r.end - r.start
}

// Text returns the matched units, or nil. The slice aliases the subject
// with its capacity clipped, so appending to it never writes through.
func (r Result[T]) Text() []T {
	if !r.found {
		return nil
	}
	return r.subject[r.start:r.end:r.end]
}

// NumCaptures returns the number of capture groups in the pattern.
func (r Result[T]) NumCaptures() int {
	return len(r.caps)
}

// Capture returns the text of capture i (0-based). A position capture
// yields an empty slice; use CaptureSpan to read its offset.
func (r Result[T]) Capture(i int) ([]T, error) {
	c, err := r.CaptureSpan(i)
	if err != nil {
		return nil, err
	}
	return r.subject[c.Start:c.End:c.End], nil
}

// CaptureSpan returns the span of capture i (0-based).
func (r Result[T]) CaptureSpan(i int) (Capture, error) {
	if i < 0 || i >= len(r.caps) {
		return Capture{}, newError(CaptureOutOfRange, i)
	}
	return r.caps[i], nil
}

// Captures returns the text of every capture in order.
func (r Result[T]) Captures() [][]T {
	if len(r.caps) == 0 {
		return nil
	}
	out := make([][]T, len(r.caps))
	for i, c := range r.caps {
		out[i] = r.subject[c.Start:c.End:c.End]
	}
	return out
}

// Spans returns a copy of the capture spans.
func (r Result[T]) Spans() []Capture {
	return append([]Capture(nil), r.caps...)
}
