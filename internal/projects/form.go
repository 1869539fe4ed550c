package projects

import (
	"context"
	"strings"
)

// FormInput is the raw submission of the project form plus the identity
// context the cleaners need.
type FormInput struct {
	OwnerID     string
	CurrentName string
	Name        string
	Description string
}

// CleanedForm holds the accepted field values after every cleaner ran.
type CleanedForm struct {
	Name        string
	Description string
}

// FieldError is a validation failure attributed to a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	// Err keeps the underlying error for status mapping; not serialized.
	Err error `json:"-"`
}

// FieldCleaner validates and normalizes one field. Cleaners run in the
// order they are registered and each has an explicit input/output contract,
// replacing name-convention dispatch.
type FieldCleaner struct {
	Field string
	Clean func(ctx context.Context, in FormInput, out *CleanedForm) error
}

// Form is the ordered validation pipeline for the create/update project
// form. It is a plain value; nothing is mutated on shared field objects.
type Form struct {
	cleaners []FieldCleaner
}

// NewForm builds the project form pipeline: the name runs through the
// NameValidator, then the description is trimmed.
func NewForm(v *NameValidator) *Form {
	return &Form{
		cleaners: []FieldCleaner{
			{
				Field: "name",
				Clean: func(ctx context.Context, in FormInput, out *CleanedForm) error {
					accepted, err := v.Validate(ctx, in.Name, in.OwnerID, in.CurrentName)
					if err != nil {
						return err
					}
					out.Name = accepted
					return nil
				},
			},
			{
				Field: "description",
				Clean: func(_ context.Context, in FormInput, out *CleanedForm) error {
					out.Description = strings.TrimSpace(in.Description)
					return nil
				},
			},
		},
	}
}

// Clean runs every cleaner in order and collects one error per failing
// field. A field that fails leaves its output zero-valued; later cleaners
// still run so the caller can report all problems at once.
func (f *Form) Clean(ctx context.Context, in FormInput) (CleanedForm, []FieldError) {
	var out CleanedForm
	var errs []FieldError

	for _, c := range f.cleaners {
		if err := c.Clean(ctx, in, &out); err != nil {
			errs = append(errs, FieldError{Field: c.Field, Message: err.Error(), Err: err})
		}
	}

	return out, errs
}
