package projects

import (
	"context"
	"fmt"
)

// UniqueNameSource answers whether a normalized name is still free for an
// owner. Backed by the pgx repository in production.
type UniqueNameSource interface {
	IsNameUnique(ctx context.Context, ownerID, name string) (bool, error)
}

// NameValidator enforces the project-naming rule: normalize the candidate,
// check owner-scoped uniqueness unless the name is unchanged, then run the
// symbol policy as the final gate.
type NameValidator struct {
	names   UniqueNameSource
	symbols SymbolPolicy
}

func NewNameValidator(names UniqueNameSource, symbols SymbolPolicy) *NameValidator {
	return &NameValidator{names: names, symbols: symbols}
}

// Validate returns the accepted form of rawName or a validation failure.
// currentName is the name the project already has; submitting it unchanged
// always skips the uniqueness query, so editing other fields of a project
// can never trip a duplicate error on its own name. Pass "" on create.
func (v *NameValidator) Validate(ctx context.Context, rawName, ownerID, currentName string) (string, error) {
	name := NormalizeName(rawName)

	recordValidation()

	if name != currentName {
		unique, err := v.names.IsNameUnique(ctx, ownerID, name)
		if err != nil {
			return "", fmt.Errorf("name uniqueness check: %w", err)
		}
		if !unique {
			recordDuplicateRejection()
			return "", ErrDuplicateName
		}
	}

	accepted, err := v.symbols.ValidateSymbols(name)
	if err != nil {
		recordSymbolRejection()
		return "", err
	}

	return accepted, nil
}
