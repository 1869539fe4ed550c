package projects

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvashq/canvas-backend/internal/messages"
)

// fakeNames is an in-memory UniqueNameSource that records every query.
type fakeNames struct {
	taken map[string]map[string]bool // owner -> name -> taken
	calls int
	err   error
}

func (f *fakeNames) IsNameUnique(_ context.Context, ownerID, name string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return !f.taken[ownerID][name], nil
}

func newValidator(names *fakeNames) *NameValidator {
	return NewNameValidator(names, CSSIdentifierPolicy{})
}

func TestNameValidator_AcceptsFreshName(t *testing.T) {
	names := &fakeNames{}
	v := newValidator(names)

	got, err := v.Validate(context.Background(), "NewProj", "owner-1", "OldProj")
	require.NoError(t, err)
	assert.Equal(t, "NewProj", got)
	assert.Equal(t, 1, names.calls)
}

func TestNameValidator_NormalizesBeforeChecking(t *testing.T) {
	names := &fakeNames{}
	v := newValidator(names)

	got, err := v.Validate(context.Background(), "  my   project  ", "owner-1", "")
	require.NoError(t, err)
	assert.Equal(t, "my_project", got)
}

func TestNameValidator_DuplicateRejected(t *testing.T) {
	names := &fakeNames{taken: map[string]map[string]bool{
		"owner-1": {"Alpha": true},
	}}
	v := newValidator(names)

	_, err := v.Validate(context.Background(), "Alpha", "owner-1", "Beta")
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, messages.ProjectNameMustBeUnique, err.Error())
}

func TestNameValidator_SelfExclusionSkipsChecker(t *testing.T) {
	// even a name the checker would flag passes when it is the current one
	names := &fakeNames{taken: map[string]map[string]bool{
		"owner-1": {"Alpha": true},
	}}
	v := newValidator(names)

	got, err := v.Validate(context.Background(), "  Alpha  ", "owner-1", "Alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got)
	assert.Zero(t, names.calls, "uniqueness checker must not run for an unchanged name")
}

func TestNameValidator_IdempotentOnAcceptedName(t *testing.T) {
	names := &fakeNames{}
	v := newValidator(names)

	first, err := v.Validate(context.Background(), "  my   project  ", "owner-1", "")
	require.NoError(t, err)

	// re-submitting the accepted name as its own current name bypasses the
	// checker and returns the same string
	second, err := v.Validate(context.Background(), first, "owner-1", first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, names.calls)
}

func TestNameValidator_SymbolRejectionWinsOverUniqueness(t *testing.T) {
	names := &fakeNames{}
	v := newValidator(names)

	_, err := v.Validate(context.Background(), "proj#1", "owner-1", "")

	var symErr *InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, 1, names.calls, "uniqueness still consulted before the symbol gate")
}

func TestNameValidator_WhitespaceOnlyRejectedBySymbolGate(t *testing.T) {
	names := &fakeNames{}
	v := newValidator(names)

	_, err := v.Validate(context.Background(), " \t\n ", "owner-1", "SomeName")

	var symErr *InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, messages.ProjectNameRequired, err.Error())
}

func TestNameValidator_CheckerErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	names := &fakeNames{err: boom}
	v := newValidator(names)

	_, err := v.Validate(context.Background(), "NewProj", "owner-1", "")
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicateName)
}

func TestNameValidator_Metrics(t *testing.T) {
	ResetMetrics()
	defer ResetMetrics()

	names := &fakeNames{taken: map[string]map[string]bool{
		"owner-1": {"Alpha": true},
	}}
	v := newValidator(names)

	_, _ = v.Validate(context.Background(), "Fresh", "owner-1", "")
	_, _ = v.Validate(context.Background(), "Alpha", "owner-1", "")
	_, _ = v.Validate(context.Background(), "bad name!", "owner-1", "")

	m := GetMetrics()
	assert.Equal(t, int64(3), m.Validations())
	assert.Equal(t, int64(1), m.DuplicateRejections())
	assert.Equal(t, int64(1), m.SymbolRejections())
	assert.InDelta(t, 66.6, m.RejectionRate(), 0.1)
}
