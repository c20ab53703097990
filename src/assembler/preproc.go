package assembler

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// preProc reads filename and returns its non-empty lines with comments removed.
func preProc(filename string) ([]sourceLine, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSourceOpen, filename, err)
	}
	defer file.Close()

	return readSource(file, filename)
}

func readSource(r io.Reader, filename string) ([]sourceLine, error) {
	var ret []sourceLine
	scanner := bufio.NewScanner(r)
	linum := 0
	for scanner.Scan() {
		linum++
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}
		ret = append(ret, sourceLine{
			data:     line,
			filename: filename,
			orgLinum: linum,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("In file %s, line %d: %w", filename, linum+1, err)
	}
	return ret, nil
}

// stripComment cuts line at the first '#' that is not inside a string literal.
func stripComment(line string) string {
	if !strings.Contains(line, "#") {
		return line
	}
	inString := false
	escape := false
	for i, ru := range line {
		switch {
		case escape:
			escape = false
		case inString && ru == '\\':
			escape = true
		case ru == '"':
			inString = !inString
		case ru == '#' && !inString:
			return line[:i]
		}
	}
	return line
}
