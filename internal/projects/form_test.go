package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_CleanAcceptsAndTrims(t *testing.T) {
	form := NewForm(newValidator(&fakeNames{}))

	out, errs := form.Clean(context.Background(), FormInput{
		OwnerID:     "owner-1",
		Name:        "  my   project ",
		Description: "  a canvas for ideas  ",
	})

	require.Empty(t, errs)
	assert.Equal(t, "my_project", out.Name)
	assert.Equal(t, "a canvas for ideas", out.Description)
}

func TestForm_CleanReportsNameFieldError(t *testing.T) {
	names := &fakeNames{taken: map[string]map[string]bool{
		"owner-1": {"Alpha": true},
	}}
	form := NewForm(newValidator(names))

	out, errs := form.Clean(context.Background(), FormInput{
		OwnerID:     "owner-1",
		CurrentName: "Beta",
		Name:        "Alpha",
		Description: " keep me ",
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.ErrorIs(t, errs[0].Err, ErrDuplicateName)

	// later cleaners still ran
	assert.Equal(t, "keep me", out.Description)
	assert.Empty(t, out.Name)
}

func TestForm_CleanersRunInRegistrationOrder(t *testing.T) {
	var order []string
	form := &Form{cleaners: []FieldCleaner{
		{Field: "name", Clean: func(context.Context, FormInput, *CleanedForm) error {
			order = append(order, "name")
			return nil
		}},
		{Field: "description", Clean: func(context.Context, FormInput, *CleanedForm) error {
			order = append(order, "description")
			return nil
		}},
	}}

	_, errs := form.Clean(context.Background(), FormInput{})
	require.Empty(t, errs)
	assert.Equal(t, []string{"name", "description"}, order)
}
