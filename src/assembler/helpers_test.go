package assembler

import (
	"bytes"
	"strings"
	"testing"
)

// assemble runs every pass over src and splits the listing into its text and
// data words.
func assemble(t *testing.T, src string, opts Options) (text, data []string, err error) {
	t.Helper()
	var out bytes.Buffer
	_, err = AssembleStream(&out, strings.NewReader(src), "test.s", opts)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			return lines[:i], lines[i+1:], err
		}
	}
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	return lines, nil, err
}

func scan(t *testing.T, src string, opts Options) (*state, error) {
	t.Helper()
	lines, err := readSource(strings.NewReader(src), "test.s")
	if err != nil {
		t.Fatal(err)
	}
	s := newState(lines, opts)
	return s, s.scanLabels()
}

func checkWords(t *testing.T, expected, actual []string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("Expected %d words; got %d: %q", len(expected), len(actual), actual)
	}
	for i := range expected {
		if expected[i] != actual[i] {
			t.Errorf("word %d: Expected %s; got %s", i, expected[i], actual[i])
		}
	}
}
