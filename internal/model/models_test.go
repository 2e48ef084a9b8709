package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run(`student session carries the roll number`, func(t *testing.T) {
		sess, err := NewSession("YS5iQGdt", "a.b@gmail.com", RoleStudent, "A B", "Computer Science and Engineering", "21CS001")
		require.NoError(t, err)
		require.Equal(t, "YS5iQGdt", sess.UserID)
		require.Equal(t, "a.b@gmail.com", sess.Email)
		require.Equal(t, RoleStudent, sess.Role)
		require.Equal(t, "A B", sess.DisplayName)
		require.Equal(t, "Computer Science and Engineering", sess.Department)
		require.NotNil(t, sess.RollNumber)
		require.Equal(t, "21CS001", *sess.RollNumber)
	})

	t.Run(`student without roll number is rejected`, func(t *testing.T) {
		_, err := NewSession("id", "a.b@gmail.com", RoleStudent, "A B", "Information Technology", "")
		require.ErrorIs(t, err, ErrMissingRollNumber)
	})

	t.Run(`hod never carries a roll number`, func(t *testing.T) {
		sess, err := NewSession("id", "hod.cse@gmail.com", RoleHOD, "Hod Cse", "Computer Science and Engineering", "21CS001")
		require.NoError(t, err)
		require.Nil(t, sess.RollNumber)
	})

	t.Run(`blank department is rejected for any role`, func(t *testing.T) {
		_, err := NewSession("id", "a.b@gmail.com", RoleStudent, "A B", "", "21CS001")
		require.ErrorIs(t, err, ErrMissingDepartment)

		_, err = NewSession("id", "hod@gmail.com", RoleHOD, "Hod", "", "")
		require.ErrorIs(t, err, ErrMissingDepartment)
	})

	t.Run(`unknown role is rejected`, func(t *testing.T) {
		_, err := NewSession("id", "a.b@gmail.com", Role("dean"), "A B", "Civil Engineering", "")
		require.ErrorIs(t, err, ErrUnknownRole)
	})
}

func TestRole(t *testing.T) {
	require.True(t, RoleStudent.Valid())
	require.True(t, RoleHOD.Valid())
	require.False(t, Role("").Valid())
	require.False(t, Role("admin").Valid())
}

func TestRequestKind(t *testing.T) {
	require.True(t, KindOD.Valid())
	require.True(t, KindLeave.Valid())
	require.False(t, RequestKind("vacation").Valid())
}

func TestStatus(t *testing.T) {
	t.Run(`only approved and rejected are terminal`, func(t *testing.T) {
		require.False(t, StatusPending.Terminal())
		require.True(t, StatusApproved.Terminal())
		require.True(t, StatusRejected.Terminal())
	})

	t.Run(`labels and colors are pure derivations`, func(t *testing.T) {
		require.Equal(t, "Pending", StatusPending.Label())
		require.Equal(t, "Approved", StatusApproved.Label())
		require.Equal(t, "Rejected", StatusRejected.Label())
		require.Equal(t, "Unknown", Status("").Label())

		require.Equal(t, "yellow", StatusPending.Color())
		require.Equal(t, "green", StatusApproved.Color())
		require.Equal(t, "red", StatusRejected.Color())
		require.Equal(t, "gray", Status("").Color())
	})
}

func TestErrors(t *testing.T) {
	err := NewError("Request", ErrNotFound)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, "request: not found", err.Error())
	require.False(t, errors.Is(err, ErrAlreadyDecided))
}
