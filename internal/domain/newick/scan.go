package newick

// Scanner primitives shared by the annotation and subtree parsers. All of
// them operate on byte offsets into a string suffix and never allocate.

// isSpace matches the ASCII whitespace the grammar skips between tokens.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipSpaces returns the number of leading whitespace bytes in s.
func skipSpaces(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// containsChar reports whether c is a member of the character set.
func containsChar(c byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

// findIndex scans s for the first occurrence of target. If a byte from
// stopSet appears first, its offset is returned instead; the caller tells
// the two cases apart by checking s at the returned offset. Returns -1 if
// the string ends without hitting either.
func findIndex(s string, target byte, stopSet string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == target || containsChar(s[i], stopSet) {
			return i
		}
	}
	return -1
}

// extractEscaped scans s (positioned just past an opening delimiter) for the
// first closer that is not immediately preceded by a backslash, and returns
// its offset — the length of the enclosed content. Escaped closers stay part
// of the content verbatim. Returns -1 if no unescaped closer exists.
func extractEscaped(s string, closer byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == closer && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

// numeralLen returns the length of the real-number literal at the start of
// s (optional sign, integer part, optional fraction, optional exponent), or
// 0 if s does not begin with one. An exponent is consumed only when it is
// complete; "1e" parses as "1" with two trailing characters.
func numeralLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits > 0 {
			i = j
		}
	}
	return i
}
