package assembler

import "strings"

// parseToken skips leading delimiters in s and returns the token up to the
// next delimiter together with everything after that delimiter. An empty
// token means the line is exhausted.
func parseToken(s, delims string) (token, rest string) {
	start := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(delims, r)
	})
	if start < 0 {
		return "", ""
	}
	s = s[start:]
	end := strings.IndexAny(s, delims)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end+1:]
}

// operands splits the remainder of an instruction line on commas and
// whitespace.
func operands(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
