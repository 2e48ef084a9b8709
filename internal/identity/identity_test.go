package identity

import (
	"testing"

	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/stretchr/testify/require"
)

func testPolicy() Policy {
	return Policy{EmailDomain: "gmail.com", SharedPassword: "password"}
}

func TestDeriveDisplayName(t *testing.T) {
	t.Run(`separators become spaces, words are capitalized`, func(t *testing.T) {
		require.Equal(t, "A B", DeriveDisplayName("a.b@gmail.com"))
		require.Equal(t, "John Doe", DeriveDisplayName("john_doe@gmail.com"))
		require.Equal(t, "Priya", DeriveDisplayName("priya@gmail.com"))
	})

	t.Run(`mixed separators`, func(t *testing.T) {
		require.Equal(t, "Anu K R", DeriveDisplayName("anu.k_r@gmail.com"))
	})
}

func TestDeriveUserID(t *testing.T) {
	t.Run(`deterministic`, func(t *testing.T) {
		require.Equal(t, DeriveUserID("a.b@gmail.com"), DeriveUserID("a.b@gmail.com"))
	})

	t.Run(`distinct emails get distinct ids`, func(t *testing.T) {
		require.NotEqual(t, DeriveUserID("a.b@gmail.com"), DeriveUserID("c.d@gmail.com"))
	})

	t.Run(`short and free of padding characters`, func(t *testing.T) {
		id := DeriveUserID("someone.with.a.long.address@gmail.com")
		require.LessOrEqual(t, len(id), 8)
		require.NotContains(t, id, "=")
		require.NotContains(t, id, "+")
		require.NotContains(t, id, "/")
	})
}

func TestLogin(t *testing.T) {
	t.Run(`student login builds the full identity`, func(t *testing.T) {
		sess, err := testPolicy().Login("a.b@gmail.com", "password", model.RoleStudent, "Computer Science and Engineering", "21CS001")
		require.NoError(t, err)
		require.Equal(t, "A B", sess.DisplayName)
		require.Equal(t, "a.b@gmail.com", sess.Email)
		require.Equal(t, model.RoleStudent, sess.Role)
		require.Equal(t, DeriveUserID("a.b@gmail.com"), sess.UserID)
		require.NotNil(t, sess.RollNumber)
		require.Equal(t, "21CS001", *sess.RollNumber)
	})

	t.Run(`hod login needs no roll number`, func(t *testing.T) {
		sess, err := testPolicy().Login("hod.cse@gmail.com", "password", model.RoleHOD, "Computer Science and Engineering", "")
		require.NoError(t, err)
		require.Nil(t, sess.RollNumber)
	})

	t.Run(`non-institutional email fails with invalid credentials`, func(t *testing.T) {
		_, err := testPolicy().Login("a.b@outlook.com", "password", model.RoleStudent, "Civil Engineering", "21CE002")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run(`bare domain fails`, func(t *testing.T) {
		_, err := testPolicy().Login("@gmail.com", "password", model.RoleStudent, "Civil Engineering", "21CE002")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run(`wrong password fails with invalid credentials`, func(t *testing.T) {
		_, err := testPolicy().Login("a.b@gmail.com", "hunter2", model.RoleStudent, "Civil Engineering", "21CE002")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run(`missing department`, func(t *testing.T) {
		_, err := testPolicy().Login("a.b@gmail.com", "password", model.RoleStudent, "", "21CE002")
		require.ErrorIs(t, err, model.ErrMissingDepartment)
	})

	t.Run(`student missing roll number`, func(t *testing.T) {
		_, err := testPolicy().Login("a.b@gmail.com", "password", model.RoleStudent, "Civil Engineering", "")
		require.ErrorIs(t, err, model.ErrMissingRollNumber)
	})

	t.Run(`configured domain is honored`, func(t *testing.T) {
		policy := Policy{EmailDomain: "college.edu", SharedPassword: "password"}

		_, err := policy.Login("a.b@gmail.com", "password", model.RoleHOD, "Civil Engineering", "")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)

		sess, err := policy.Login("a.b@college.edu", "password", model.RoleHOD, "Civil Engineering", "")
		require.NoError(t, err)
		require.Equal(t, "A B", sess.DisplayName)
	})
}
