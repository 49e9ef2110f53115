package assembler

import (
	"sort"

	"github.com/pkg/errors"
)

// SymbolTable maps label names to unit indices in the assembly arena.
type SymbolTable struct {
	index map[string]int
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]int)}
}

// Define binds name to a unit index. A name can be bound only once.
func (st *SymbolTable) Define(name string, unit int) error {
	if _, ok := st.index[name]; ok {
		return errors.Wrapf(ErrDuplicateLabel, "%q", name)
	}
	st.index[name] = unit
	return nil
}

// Lookup returns the unit index bound to name.
func (st *SymbolTable) Lookup(name string) (int, bool) {
	i, ok := st.index[name]
	return i, ok
}

// Names returns every defined label in sorted order.
func (st *SymbolTable) Names() []string {
	names := make([]string, 0, len(st.index))
	for name := range st.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined labels.
func (st *SymbolTable) Len() int {
	return len(st.index)
}
