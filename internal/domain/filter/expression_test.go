package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/core/apperror"
)

func TestCompileEmptyMatchesEverything(t *testing.T) {
	x, err := Compile("")
	require.NoError(t, err)
	assert.Nil(t, x)

	ok, err := x.Match(map[string]any{"status": "pending"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchComparesStringsAndNumbers(t *testing.T) {
	x, err := Compile(`item.status == "completed" && item.amount > 100.0`)
	require.NoError(t, err)

	ok, err := x.Match(map[string]any{"status": "completed", "amount": 1299.0})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = x.Match(map[string]any{"status": "completed", "amount": 99.5})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompileRejectsSyntaxErrors(t *testing.T) {
	_, err := Compile(`item.status ==`)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestCompileRejectsNonBoolResult(t *testing.T) {
	_, err := Compile(`"completed"`)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestMatchMissingFieldIsValidationError(t *testing.T) {
	x, err := Compile(`item.nope == 1`)
	require.NoError(t, err)

	_, err = x.Match(map[string]any{"status": "pending"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestApplyKeepsOrder(t *testing.T) {
	x, err := Compile(`item.stock < 10`)
	require.NoError(t, err)

	type row struct {
		name  string
		stock int64
	}
	rows := []row{{"a", 3}, {"b", 40}, {"c", 9}}

	kept, err := Apply(x, rows, func(r row) map[string]any {
		return map[string]any{"name": r.name, "stock": r.stock}
	})
	require.NoError(t, err)
	assert.Equal(t, []row{{"a", 3}, {"c", 9}}, kept)
}
