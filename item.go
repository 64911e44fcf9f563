package luapat

// ItemKind classifies one pattern item as Explain reports it.
type ItemKind int

const (
	ItemLiteral    ItemKind = iota // single code unit
	ItemAny                        // .
	ItemClass                      // %a, %d, %S ... or an escaped unit
	ItemSet                        // [...]
	ItemOpen                       // (
	ItemClose                      // )
	ItemPosition                   // ()
	ItemEnd                        // $ as the last unit
	ItemBalanced                   // %bxy
	ItemFrontier                   // %f[set]
	ItemBackref                    // %1-%9
)

var itemKindNames = [...]string{
	ItemLiteral:  "literal",
	ItemAny:      "any",
	ItemClass:    "class",
	ItemSet:      "set",
	ItemOpen:     "open",
	ItemClose:    "close",
	ItemPosition: "position",
	ItemEnd:      "end",
	ItemBalanced: "balanced",
	ItemFrontier: "frontier",
	ItemBackref:  "backref",
}

func (k ItemKind) String() string {
	if k >= 0 && int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "?"
}

// classEnd returns the offset just past the single-unit item starting at
// p[i], before any repetition suffix. It only delimits; it does not
// interpret classes or ranges.
func classEnd[P CodeUnit](p []P, i int) (int, error) {
	c := p[i]
	i++
	switch c {
	case '%':
		if i >= len(p) {
			return 0, newError(PatternEndsWithPercent, i-1)
		}
		return i + 1, nil
	case '[':
		open := i - 1
		if i < len(p) && p[i] == '^' {
			i++
		}
		// The first member is consumed unconditionally, so "[]]" is a set
		// holding ']'.
		for {
			if i >= len(p) {
				return 0, newError(PatternMissingClosingBracket, open)
			}
			c := p[i]
			i++
			if c == '%' && i < len(p) {
				i++
			}
			if i >= len(p) {
				return 0, newError(PatternMissingClosingBracket, open)
			}
			if p[i] == ']' {
				return i + 1, nil
			}
		}
	}
	return i, nil
}

// isSuffix reports whether p[i] is a repetition suffix.
func isSuffix[P CodeUnit](p []P, i int) bool {
	if i >= len(p) {
		return false
	}
	switch p[i] {
	case '*', '+', '-', '?':
		return true
	}
	return false
}
