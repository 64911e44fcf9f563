package luapat

// Class bits of the classification table. The table covers the code units
// 0-255 with C-locale meanings, so bytes 128-255 belong to no class.
const (
	clsAlpha uint16 = 1 << iota
	clsDigit
	clsLower
	clsUpper
	clsPunct
	clsCntrl
	clsSpace
	clsXDigit
	clsGraph
)

var classTable = func() (t [256]uint16) {
	for c := 0; c < 256; c++ {
		var bits uint16
		switch {
		case 'a' <= c && c <= 'z':
			bits |= clsAlpha | clsLower
		case 'A' <= c && c <= 'Z':
			bits |= clsAlpha | clsUpper
		case '0' <= c && c <= '9':
			bits |= clsDigit
		}
		if ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F') {
			bits |= clsXDigit
		}
		if c < 0x20 || c == 0x7f {
			bits |= clsCntrl
		}
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			bits |= clsSpace
		}
		if 0x21 <= c && c <= 0x7e {
			bits |= clsGraph
			if bits&(clsAlpha|clsDigit) == 0 {
				bits |= clsPunct
			}
		}
		t[c] = bits
	}
	return t
}()

func hasClass(c uint32, bits uint16) bool {
	return c < uint32(len(classTable)) && classTable[c]&bits != 0
}

// matchClass reports whether the code unit c belongs to the class named by
// the selector cl (the unit following '%'). An uppercase selector is the
// complement of its lowercase class; any other selector matches itself.
func matchClass(c, cl uint32) bool {
	var bits uint16
	switch cl | 0x20 {
	case 'a':
		bits = clsAlpha
	case 'c':
		bits = clsCntrl
	case 'd':
		bits = clsDigit
	case 'g':
		bits = clsGraph
	case 'l':
		bits = clsLower
	case 'p':
		bits = clsPunct
	case 's':
		bits = clsSpace
	case 'u':
		bits = clsUpper
	case 'w':
		bits = clsAlpha | clsDigit
	case 'x':
		bits = clsXDigit
	default:
		return cl == c
	}
	res := hasClass(c, bits)
	if hasClass(cl, clsUpper) {
		return !res
	}
	return res
}

// matchBracket reports whether c is a member of the set p[open:close], where
// p[open] is the '[' and p[close] the closing ']'. The set is assumed to be
// well formed; classEnd has already validated it.
func matchBracket[P CodeUnit](c uint32, p []P, open, close int) bool {
	i := open + 1
	found := true
	if i < close && p[i] == '^' {
		found = false
		i++
	}
	for ; i < close; i++ {
		switch {
		case p[i] == '%':
			i++
			if matchClass(c, unit(p[i])) {
				return found
			}
		case i+2 < close && p[i+1] == '-':
			if unit(p[i]) <= c && c <= unit(p[i+2]) {
				return found
			}
			i += 2
		case unit(p[i]) == c:
			return found
		}
	}
	return !found
}
