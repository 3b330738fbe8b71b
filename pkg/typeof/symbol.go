package typeof

// SymbolValue is a unique token with a description. Two symbols are equal only
// when they come from the same NewSymbol call, even if the descriptions match.
type SymbolValue struct {
	s *symbol
}

type symbol struct {
	description string
}

// NewSymbol creates a new unique symbol.
func NewSymbol(description string) SymbolValue {
	return SymbolValue{s: &symbol{description: description}}
}

// Description returns the description the symbol was created with.
func (v SymbolValue) Description() string {
	if v.s == nil {
		return ""
	}
	return v.s.description
}

func (v SymbolValue) String() string {
	return "Symbol(" + v.Description() + ")"
}
