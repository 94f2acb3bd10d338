package utils

import "errors"

var (
	// authentication / account
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidManagerRef  = errors.New("manager_id must reference a manager")
	ErrUserNotFound       = errors.New("user not found")

	// forbidden, one sentinel per reason so callers see distinct messages
	ErrManagerOnly       = errors.New("manager role required")
	ErrEmployeeOnly      = errors.New("employee role required")
	ErrNotYourTeamMember = errors.New("not your team member")
	ErrNotAllowed        = errors.New("not allowed")

	// not found; ownership misses collapse into these on mutation paths
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrRequestNotFound  = errors.New("feedback request not found")

	// invalid request
	ErrNoManagerAssigned = errors.New("no manager assigned")

	ErrDatabaseError = errors.New("database error")
)
