package interner

import "fmt"

// Sym is a handle to a string stored in an Interner. Two symbols from the
// same Interner are equal if and only if their strings are equal.
type Sym uint32

// Reserved symbols, present in every Interner.
const (
	Empty Sym = iota
	True
	False
	Null
)

var reserved = []string{
	Empty: "",
	True:  "true",
	False: "false",
	Null:  "null",
}

// Interner maps strings to symbols. It is not safe for concurrent use; a
// parse owns its Interner for its whole duration.
type Interner struct {
	syms    map[string]Sym
	strings []string
}

func New() *Interner {
	in := &Interner{
		syms:    make(map[string]Sym, 64),
		strings: make([]string, 0, 64),
	}
	for _, s := range reserved {
		in.Intern(s)
	}
	return in
}

// Intern returns the symbol for s, allocating one if s has not been seen.
func (in *Interner) Intern(s string) Sym {
	if sym, ok := in.syms[s]; ok {
		return sym
	}
	sym := Sym(len(in.strings))
	in.strings = append(in.strings, s)
	in.syms[s] = sym
	return sym
}

// Get returns the symbol for s without allocating.
func (in *Interner) Get(s string) (Sym, bool) {
	sym, ok := in.syms[s]
	return sym, ok
}

// Resolve returns the string behind sym. It panics on a symbol that was not
// produced by this Interner.
func (in *Interner) Resolve(sym Sym) string {
	if int(sym) >= len(in.strings) {
		panic(fmt.Sprintf("interner: unknown symbol %d", sym))
	}
	return in.strings[sym]
}

// Len returns the number of interned strings, reserved ones included.
func (in *Interner) Len() int {
	return len(in.strings)
}
