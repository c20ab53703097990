package assembler

import (
	"sort"

	"github.com/samber/lo"
)

type symbolTable struct {
	labels map[string]labelData
}

func newSymbolTable() *symbolTable {
	return &symbolTable{labels: make(map[string]labelData)}
}

// insert adds name at addr. It reports false, leaving the table unchanged, if
// name is already present.
func (t *symbolTable) insert(name string, addr int64) bool {
	if _, ok := t.labels[name]; ok {
		return false
	}
	t.labels[name] = labelData{name: name, addr: addr}
	return true
}

func (t *symbolTable) find(name string) (int64, bool) {
	l, ok := t.labels[name]
	return l.addr, ok
}

func (t *symbolTable) len() int {
	return len(t.labels)
}

// names returns the labels in address order, ties broken by name.
func (t *symbolTable) names() []string {
	names := lo.Keys(t.labels)
	sort.Slice(names, func(i, j int) bool {
		a, b := t.labels[names[i]], t.labels[names[j]]
		if a.addr != b.addr {
			return a.addr < b.addr
		}
		return a.name < b.name
	})
	return names
}

// symbols returns a copy of the table as a plain map.
func (t *symbolTable) symbols() map[string]int64 {
	return lo.MapValues(t.labels, func(l labelData, _ string) int64 {
		return l.addr
	})
}
