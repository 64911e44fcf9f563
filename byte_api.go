package luapat

// Match reports whether the byte slice b contains any match of pattern.
func Match(b, pattern []byte) (bool, error) {
	r, err := Find(b, pattern)
	return r.Found(), err
}

// FindIndex returns a two-element slice of integers defining the location of
// the leftmost match in b. A return value of nil indicates no match.
func FindIndex(b, pattern []byte) ([]int, error) {
	r, err := Find(b, pattern)
	if err != nil || !r.Found() {
		return nil, err
	}
	return []int{r.start, r.end}, nil
}

// FindSubmatch returns the captures of the leftmost match in b, or the whole
// match when pattern has none. Position captures come back empty.
// A return value of nil indicates no match.
func FindSubmatch(b, pattern []byte) ([][]byte, error) {
	r, err := Find(b, pattern)
	if err != nil || !r.Found() {
		return nil, err
	}
	if r.NumCaptures() == 0 {
		return [][]byte{r.Text()}, nil
	}
	return r.Captures(), nil
}

// FindAll returns a slice of all successive matches of pattern in b.
// n < 0 means return all matches.
func FindAll(b, pattern []byte, n int) ([][]byte, error) {
	indices, err := FindAllIndex(b, pattern, n)
	if err != nil || indices == nil {
		return nil, err
	}
	result := make([][]byte, len(indices))
	for i, m := range indices {
		result[i] = b[m[0]:m[1]]
	}
	return result, nil
}

// FindAllIndex returns the locations of all successive matches of pattern in
// b as two-element slices. n < 0 means return all matches.
func FindAllIndex(b, pattern []byte, n int) ([][]int, error) {
	if n == 0 {
		return nil, nil
	}
	var out [][]int
	it := Gmatch(b, pattern)
	for (n < 0 || len(out) < n) && it.Next() {
		r := it.Result()
		out = append(out, []int{r.start, r.end})
	}
	return out, it.Err()
}

// ReplaceAll replaces every match of pattern in src with the template repl.
func ReplaceAll(src, pattern, repl []byte) ([]byte, error) {
	return Gsub(src, pattern, repl, -1)
}

// ReplaceAllFunc replaces every match of pattern in src with the return
// value of fn applied to the matched bytes.
func ReplaceAllFunc(src, pattern []byte, fn func([]byte) []byte) ([]byte, error) {
	return GsubFunc(src, pattern, func(r Result[byte]) []byte {
		return fn(r.Text())
	}, -1)
}
