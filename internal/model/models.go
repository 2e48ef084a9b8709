package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleHOD     Role = "hod"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleHOD
}

// Session is the identity resolved from a login token. It is built only
// through NewSession, which ties the roll number to the student role.
type Session struct {
	Token     string    `json:"-" db:"token"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	UserID      string  `json:"userId" db:"user_id"`
	Email       string  `json:"email" db:"email"`
	Role        Role    `json:"role" db:"role"`
	DisplayName string  `json:"displayName" db:"display_name"`
	Department  string  `json:"department" db:"department"`
	RollNumber  *string `json:"rollNumber,omitempty" db:"roll_number"`
}

func NewSession(userID, email string, role Role, displayName, department, rollNumber string) (Session, error) {
	if !role.Valid() {
		return Session{}, NewError("session", ErrUnknownRole)
	}
	if department == "" {
		return Session{}, NewError("session", ErrMissingDepartment)
	}

	sess := Session{
		UserID:      userID,
		Email:       email,
		Role:        role,
		DisplayName: displayName,
		Department:  department,
	}

	switch role {
	case RoleStudent:
		if rollNumber == "" {
			return Session{}, NewError("session", ErrMissingRollNumber)
		}
		sess.RollNumber = &rollNumber
	case RoleHOD:
		// HODs carry no roll number, whatever the form sent.
	}

	return sess, nil
}

type RequestKind string

const (
	KindOD    RequestKind = "od"
	KindLeave RequestKind = "leave"
)

func (k RequestKind) Valid() bool {
	return k == KindOD || k == KindLeave
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status can no longer transition.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Color returns the display classification the front end maps the
// status to.
func (s Status) Color() string {
	switch s {
	case StatusPending:
		return "yellow"
	case StatusApproved:
		return "green"
	case StatusRejected:
		return "red"
	default:
		return "gray"
	}
}

// Request is one leave or OD request. Student fields are a snapshot of
// the submitter's session at submission time and are never re-derived.
// Dates and times keep the form's string layouts ("2006-01-02",
// "15:04") so the serialized collection round-trips unchanged.
type Request struct {
	ID string `json:"id"`

	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	RollNumber  string `json:"rollNumber"`
	Department  string `json:"department"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`

	// Leave requests only.
	FromTime    string `json:"fromTime,omitempty"`
	ToTime      string `json:"toTime,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`

	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	HodComments *string   `json:"hodComments,omitempty"`
}
