package main

import (
	"regexp"
	"time"

	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/campuskit/leave-tracker/internal/validator"
)

// Validation rules

const (
	_dateLayout = "2006-01-02"
	_timeLayout = "15:04"
)

var _rgxPhoneNumber = regexp.MustCompile(`^[0-9]{10}$`)

func validateLoginInput(v *validator.Validator, input requestLogin) {
	v.CheckField(validator.NotBlank(input.Email), "email", "cannot be blank")
	v.CheckField(validator.NotBlank(input.Password), "password", "cannot be blank")
	v.CheckField(
		validator.In(model.Role(input.Role), model.RoleStudent, model.RoleHOD),
		"role",
		"must be student or hod",
	)
}

func validateSubmitInput(v *validator.Validator, kind model.RequestKind, input requestSubmit) {
	validateDate(v, "startDate", input.StartDate)
	validateDate(v, "endDate", input.EndDate)
	v.CheckField(validator.NotBlank(input.Reason), "reason", "cannot be blank")

	start, startErr := time.Parse(_dateLayout, input.StartDate)
	end, endErr := time.Parse(_dateLayout, input.EndDate)
	if startErr == nil && endErr == nil {
		v.CheckField(!end.Before(start), "endDate", "must not precede start date")
	}

	if kind == model.KindLeave {
		validateTimeOfDay(v, "fromTime", input.FromTime)
		validateTimeOfDay(v, "toTime", input.ToTime)
		v.CheckField(
			_rgxPhoneNumber.MatchString(input.PhoneNumber),
			"phoneNumber",
			"must be exactly 10 digits",
		)
	}
}

func validateDecideInput(v *validator.Validator, input requestDecide) {
	v.CheckField(
		validator.In(model.Status(input.Decision), model.StatusApproved, model.StatusRejected),
		"decision",
		"must be approved or rejected",
	)
}

func validateDate(v *validator.Validator, field, value string) {
	if !validator.NotBlank(value) {
		v.CheckField(false, field, "cannot be blank")
		return
	}

	_, err := time.Parse(_dateLayout, value)
	v.CheckField(err == nil, field, "must be a date in the form 2006-01-02")
}

func validateTimeOfDay(v *validator.Validator, field, value string) {
	if !validator.NotBlank(value) {
		v.CheckField(false, field, "cannot be blank")
		return
	}

	_, err := time.Parse(_timeLayout, value)
	v.CheckField(err == nil, field, "must be a time in the form 15:04")
}
