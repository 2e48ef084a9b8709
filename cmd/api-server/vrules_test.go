package main

import (
	"testing"

	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/campuskit/leave-tracker/internal/validator"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginInput(t *testing.T) {
	t.Run(`complete input passes`, func(t *testing.T) {
		var v validator.Validator
		validateLoginInput(&v, requestLogin{
			Email: "a.b@gmail.com", Password: "password",
			Role: "student", Department: "Computer Science and Engineering", RollNumber: "21CS001",
		})
		require.False(t, v.HasErrors())
	})

	t.Run(`blank fields and unknown roles are flagged`, func(t *testing.T) {
		var v validator.Validator
		validateLoginInput(&v, requestLogin{Role: "dean"})
		require.True(t, v.HasErrors())
		require.Contains(t, v.FieldErrors, "email")
		require.Contains(t, v.FieldErrors, "password")
		require.Contains(t, v.FieldErrors, "role")
	})
}

func TestValidateSubmitInput(t *testing.T) {
	validOD := requestSubmit{
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
		Reason:    "Conference",
	}

	validLeave := requestSubmit{
		StartDate:   "2024-01-10",
		EndDate:     "2024-01-12",
		Reason:      "Family function",
		FromTime:    "09:00",
		ToTime:      "16:30",
		PhoneNumber: "9876543210",
	}

	t.Run(`valid od input passes without leave fields`, func(t *testing.T) {
		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, validOD)
		require.False(t, v.HasErrors())
	})

	t.Run(`valid leave input passes`, func(t *testing.T) {
		var v validator.Validator
		validateSubmitInput(&v, model.KindLeave, validLeave)
		require.False(t, v.HasErrors())
	})

	t.Run(`end date must not precede start date`, func(t *testing.T) {
		input := validOD
		input.StartDate, input.EndDate = "2024-01-12", "2024-01-10"

		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, input)
		require.Contains(t, v.FieldErrors, "endDate")
	})

	t.Run(`same-day requests are allowed`, func(t *testing.T) {
		input := validOD
		input.EndDate = input.StartDate

		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, input)
		require.False(t, v.HasErrors())
	})

	t.Run(`malformed dates are flagged`, func(t *testing.T) {
		input := validOD
		input.StartDate = "10/01/2024"

		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, input)
		require.Contains(t, v.FieldErrors, "startDate")
	})

	t.Run(`blank reason is flagged`, func(t *testing.T) {
		input := validOD
		input.Reason = "   "

		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, input)
		require.Contains(t, v.FieldErrors, "reason")
	})

	t.Run(`leave requires times and a 10-digit phone number`, func(t *testing.T) {
		var v validator.Validator
		validateSubmitInput(&v, model.KindLeave, validOD)
		require.Contains(t, v.FieldErrors, "fromTime")
		require.Contains(t, v.FieldErrors, "toTime")
		require.Contains(t, v.FieldErrors, "phoneNumber")
	})

	t.Run(`phone numbers with the wrong length or characters fail`, func(t *testing.T) {
		for _, phone := range []string{"987654321", "98765432101", "98765o4321", "+919876543210"} {
			input := validLeave
			input.PhoneNumber = phone

			var v validator.Validator
			validateSubmitInput(&v, model.KindLeave, input)
			require.Contains(t, v.FieldErrors, "phoneNumber", "phone %q should fail", phone)
		}
	})

	t.Run(`od input ignores leave-only fields`, func(t *testing.T) {
		input := validOD
		input.PhoneNumber = "not-a-phone"

		var v validator.Validator
		validateSubmitInput(&v, model.KindOD, input)
		require.False(t, v.HasErrors())
	})
}

func TestValidateDecideInput(t *testing.T) {
	for _, decision := range []string{"approved", "rejected"} {
		var v validator.Validator
		validateDecideInput(&v, requestDecide{Decision: decision})
		require.False(t, v.HasErrors())
	}

	for _, decision := range []string{"", "pending", "maybe"} {
		var v validator.Validator
		validateDecideInput(&v, requestDecide{Decision: decision})
		require.Contains(t, v.FieldErrors, "decision")
	}
}

func TestNormalizeComments(t *testing.T) {
	require.Nil(t, normalizeComments(nil))

	blank := ""
	require.Nil(t, normalizeComments(&blank))

	comments := "Approved, submit report"
	got := normalizeComments(&comments)
	require.NotNil(t, got)
	require.Equal(t, comments, *got)
}
