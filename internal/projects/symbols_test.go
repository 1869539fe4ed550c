package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canvashq/canvas-backend/internal/messages"
)

func TestCSSIdentifierPolicy(t *testing.T) {
	policy := CSSIdentifierPolicy{}

	t.Run("accepts safe names unchanged", func(t *testing.T) {
		for _, name := range []string{"MyProject", "my_project", "proj-2", "a", "_hidden", "Alpha99"} {
			got, err := policy.ValidateSymbols(name)
			require.NoError(t, err, "expected %q to be accepted", name)
			assert.Equal(t, name, got)
		}
	})

	t.Run("rejects disallowed characters with position", func(t *testing.T) {
		_, err := policy.ValidateSymbols("proj#1")

		var symErr *InvalidSymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, '#', symErr.Rune)
		assert.Equal(t, 4, symErr.Pos)
		assert.Equal(t, messages.ProjectNameInvalidSymbols, err.Error())
	})

	t.Run("rejects spaces and unicode punctuation", func(t *testing.T) {
		for _, name := range []string{"my project", "proj.1", "proj/1", "projée!"} {
			_, err := policy.ValidateSymbols(name)
			assert.Error(t, err, "expected %q to be rejected", name)
		}
	})

	t.Run("rejects leading digit or hyphen", func(t *testing.T) {
		for _, name := range []string{"1project", "-project"} {
			_, err := policy.ValidateSymbols(name)

			var symErr *InvalidSymbolError
			require.ErrorAs(t, err, &symErr)
			assert.Equal(t, 0, symErr.Pos)
		}
	})

	t.Run("interior digits and hyphens are fine", func(t *testing.T) {
		got, err := policy.ValidateSymbols("p1-2_3")
		require.NoError(t, err)
		assert.Equal(t, "p1-2_3", got)
	})

	t.Run("empty name rejected with the required message", func(t *testing.T) {
		_, err := policy.ValidateSymbols("")

		var symErr *InvalidSymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, -1, symErr.Pos)
		assert.Equal(t, messages.ProjectNameRequired, err.Error())
	})
}
