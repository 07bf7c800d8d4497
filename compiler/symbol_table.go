package compiler

import (
	"fmt"
	"sort"

	"github.com/deepnoodle-ai/jackc/errors"
	"github.com/deepnoodle-ai/jackc/op"
)

// Kind is the storage class of a symbol.
type Kind int

const (
	// None is reported for names that are not declared in any scope.
	None Kind = iota
	Static
	Field
	Argument
	Local
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Field:
		return "field"
	case Argument:
		return "argument"
	case Local:
		return "local"
	default:
		return "none"
	}
}

// Segment returns the memory segment that holds symbols of this kind.
// Fields live in the segment of the current object.
func (k Kind) Segment() op.Segment {
	switch k {
	case Static:
		return op.Static
	case Field:
		return op.This
	case Argument:
		return op.Argument
	case Local:
		return op.Local
	default:
		return op.InvalidSegment
	}
}

// IsClassScope reports whether symbols of this kind belong to the class
// scope rather than the subroutine scope.
func (k Kind) IsClassScope() bool {
	return k == Static || k == Field
}

// Symbol is a declared name.
type Symbol struct {
	Name  string
	Type  string
	Kind  Kind
	Index int
}

// SymbolTable holds the two scopes visible while compiling a class: the
// class scope with its static and field variables, and the scope of the
// subroutine being compiled with its arguments and locals.
type SymbolTable struct {
	class      map[string]*Symbol
	subroutine map[string]*Symbol
	counts     [Local + 1]int
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		class:      map[string]*Symbol{},
		subroutine: map[string]*Symbol{},
	}
}

// StartSubroutine discards the subroutine scope. Class scope is kept.
func (t *SymbolTable) StartSubroutine() {
	t.subroutine = map[string]*Symbol{}
	t.counts[Argument] = 0
	t.counts[Local] = 0
}

func (t *SymbolTable) scope(kind Kind) map[string]*Symbol {
	if kind.IsClassScope() {
		return t.class
	}
	return t.subroutine
}

// Define declares a name in the scope implied by kind and assigns it the
// next index of that kind. Declaring a name twice in the same scope is a
// DuplicateSymbol error.
func (t *SymbolTable) Define(name, typ string, kind Kind) (*Symbol, error) {
	if kind <= None || kind > Local {
		return nil, fmt.Errorf("cannot declare %q with storage class %s", name, kind)
	}
	scope := t.scope(kind)
	if existing, ok := scope[name]; ok {
		return nil, errors.Errorf(errors.DuplicateSymbol, errors.SourceLocation{},
			"%q is already declared as %s %s", name, existing.Kind, existing.Type)
	}
	sym := &Symbol{Name: name, Type: typ, Kind: kind, Index: t.counts[kind]}
	t.counts[kind]++
	scope[name] = sym
	return sym, nil
}

// VarCount returns the number of symbols of the given kind declared in the
// current scope.
func (t *SymbolTable) VarCount(kind Kind) int {
	if kind <= None || kind > Local {
		return 0
	}
	return t.counts[kind]
}

// Resolve looks up a name in the subroutine scope, then in the class scope.
func (t *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := t.subroutine[name]; ok {
		return sym, true
	}
	sym, ok := t.class[name]
	return sym, ok
}

// KindOf returns the storage class of a name, or None if it is not declared.
func (t *SymbolTable) KindOf(name string) Kind {
	if sym, ok := t.Resolve(name); ok {
		return sym.Kind
	}
	return None
}

// TypeOf returns the declared type of a name, or "" if it is not declared.
func (t *SymbolTable) TypeOf(name string) string {
	if sym, ok := t.Resolve(name); ok {
		return sym.Type
	}
	return ""
}

// IndexOf returns the index of a name within its storage class, or -1 if it
// is not declared.
func (t *SymbolTable) IndexOf(name string) int {
	if sym, ok := t.Resolve(name); ok {
		return sym.Index
	}
	return -1
}

// Names returns the sorted names visible from the current subroutine.
func (t *SymbolTable) Names() []string {
	seen := make(map[string]bool, len(t.class)+len(t.subroutine))
	names := make([]string, 0, len(t.class)+len(t.subroutine))
	for _, scope := range []map[string]*Symbol{t.subroutine, t.class} {
		for name := range scope {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
