package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	t.Run(`starts clean`, func(t *testing.T) {
		var v Validator
		require.False(t, v.HasErrors())
	})

	t.Run(`Check collects messages`, func(t *testing.T) {
		var v Validator
		v.Check(false, "first")
		v.Check(true, "ignored")
		v.Check(false, "second")
		require.True(t, v.HasErrors())
		require.Equal(t, []string{"first", "second"}, v.Errors)
	})

	t.Run(`CheckField keeps the first message per field`, func(t *testing.T) {
		var v Validator
		v.CheckField(false, "email", "cannot be blank")
		v.CheckField(false, "email", "overwritten?")
		require.Equal(t, "cannot be blank", v.FieldErrors["email"])
	})
}

func TestHelpers(t *testing.T) {
	require.True(t, NotBlank("x"))
	require.False(t, NotBlank("   "))
	require.False(t, NotBlank(""))

	require.True(t, In("od", "od", "leave"))
	require.False(t, In("vacation", "od", "leave"))

	require.True(t, Between(5, 1, 10))
	require.False(t, Between(11, 1, 10))

	require.True(t, MinRunes("héllo", 5))
	require.False(t, MaxRunes("héllo", 4))

	require.True(t, NoDuplicates([]string{"a", "b"}))
	require.False(t, NoDuplicates([]string{"a", "a"}))
}
