package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrExists         = errors.New("already exists")
	ErrAlreadyDecided = errors.New("already decided")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingDepartment  = errors.New("department is required")
	ErrMissingRollNumber  = errors.New("roll number is required")
	ErrUnknownRole        = errors.New("unknown role")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}
