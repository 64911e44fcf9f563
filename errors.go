package luapat

import "fmt"

// ErrorKind identifies one of the pattern, replacement or index authoring
// errors the engine reports. A failed match is not an error.
type ErrorKind int

const (
	PatternTooComplex              ErrorKind = iota // recursion ceiling exceeded
	PatternEndsWithPercent                          // trailing lone '%'
	PatternMissingClosingBracket                    // '[' without ']'
	BalancedNoArguments                             // '%b' without two delimiters
	FrontierNoOpenBracket                           // '%f' not followed by '['
	CaptureTooMany                                  // more than MaxCaptures groups
	CaptureInvalidPattern                           // ')' without an open group
	CaptureInvalidIndex                             // reference to an undefined capture
	CaptureNotFinished                              // match completed with an open group
	CaptureOutOfRange                               // Match.Capture index too large
	PercentInvalidUseInReplacement                  // bad '%' escape in a template
)

var kindNames = [...]string{
	PatternTooComplex:              "pattern too complex",
	PatternEndsWithPercent:         "malformed pattern (ends with '%')",
	PatternMissingClosingBracket:   "malformed pattern (missing ']')",
	BalancedNoArguments:            "malformed pattern (missing arguments to '%b')",
	FrontierNoOpenBracket:          "missing '[' after '%f' in pattern",
	CaptureTooMany:                 "too many captures",
	CaptureInvalidPattern:          "invalid pattern capture",
	CaptureInvalidIndex:            "invalid capture index",
	CaptureNotFinished:             "unfinished capture",
	CaptureOutOfRange:              "capture out of range",
	PercentInvalidUseInReplacement: "invalid use of '%' in replacement string",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type returned by the engine.
// Pos is the offset in the pattern (or replacement, or capture index) the
// error refers to, or -1 when no position applies.
type Error struct {
	Kind ErrorKind
	Pos  int
}

func newError(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func (e *Error) Error() string {
	if e.Pos < 0 {
		return "luapat: " + e.Kind.String()
	}
	return fmt.Sprintf("luapat: %s at %d", e.Kind, e.Pos)
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrCaptureTooMany) works regardless of Pos.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for use with errors.Is.
var (
	ErrPatternTooComplex              = newError(PatternTooComplex, -1)
	ErrPatternEndsWithPercent         = newError(PatternEndsWithPercent, -1)
	ErrPatternMissingClosingBracket   = newError(PatternMissingClosingBracket, -1)
	ErrBalancedNoArguments            = newError(BalancedNoArguments, -1)
	ErrFrontierNoOpenBracket          = newError(FrontierNoOpenBracket, -1)
	ErrCaptureTooMany                 = newError(CaptureTooMany, -1)
	ErrCaptureInvalidPattern          = newError(CaptureInvalidPattern, -1)
	ErrCaptureInvalidIndex            = newError(CaptureInvalidIndex, -1)
	ErrCaptureNotFinished             = newError(CaptureNotFinished, -1)
	ErrCaptureOutOfRange              = newError(CaptureOutOfRange, -1)
	ErrPercentInvalidUseInReplacement = newError(PercentInvalidUseInReplacement, -1)
)
