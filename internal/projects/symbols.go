package projects

import (
	"github.com/canvashq/canvas-backend/internal/messages"
)

// InvalidSymbolError reports a name that is unsafe for use as an element
// identifier in the editor frontend. Pos == -1 with a zero Rune means the
// name was empty after normalization.
type InvalidSymbolError struct {
	Name string
	Rune rune
	Pos  int
}

func (e *InvalidSymbolError) Error() string {
	if e.Pos == -1 {
		return messages.ProjectNameRequired
	}
	return messages.ProjectNameInvalidSymbols
}

// SymbolPolicy is the final acceptance gate for project names. It may
// return a further-normalized name.
type SymbolPolicy interface {
	ValidateSymbols(name string) (string, error)
}

// CSSIdentifierPolicy accepts names usable verbatim as CSS selectors and
// element ids: ASCII letters, digits, underscore and hyphen, not starting
// with a digit or hyphen. Accepted names are returned unchanged.
type CSSIdentifierPolicy struct{}

func (CSSIdentifierPolicy) ValidateSymbols(name string) (string, error) {
	if name == "" {
		return "", &InvalidSymbolError{Name: name, Pos: -1}
	}

	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':

		case r >= '0' && r <= '9', r == '-':
			if i == 0 {
				return "", &InvalidSymbolError{Name: name, Rune: r, Pos: 0}
			}

		default:
			return "", &InvalidSymbolError{Name: name, Rune: r, Pos: i}
		}
	}

	return name, nil
}
