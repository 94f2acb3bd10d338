// Package access holds the authorization rules gating every domain
// operation: who may read, write, or mutate which record.
package access

import (
	"github.com/google/uuid"

	"teampulse/internal/models/db_models"
	"teampulse/pkg/utils"
)

// Principal is the authenticated caller as carried by the bearer token.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func RequireManager(p Principal) error {
	if p.Role != db_models.RoleManager {
		return utils.ErrManagerOnly
	}
	return nil
}

func RequireEmployee(p Principal) error {
	if p.Role != db_models.RoleEmployee {
		return utils.ErrEmployeeOnly
	}
	return nil
}

// CanReadEmployeeFeedback allows a manager to read their own team
// member's feedback and an employee to read their own.
func CanReadEmployeeFeedback(p Principal, employee *db_models.User) error {
	switch p.Role {
	case db_models.RoleManager:
		if employee.ManagerID == nil || *employee.ManagerID != p.UserID {
			return utils.ErrNotYourTeamMember
		}
		return nil
	case db_models.RoleEmployee:
		if p.UserID != employee.ID {
			return utils.ErrNotAllowed
		}
		return nil
	default:
		return utils.ErrNotAllowed
	}
}

// OwnsFeedback reports whether the principal is the manager that
// authored the feedback. Callers surface a miss as not-found so
// non-owners cannot probe for existence.
func OwnsFeedback(p Principal, fb *db_models.Feedback) bool {
	return p.Role == db_models.RoleManager && fb.ManagerID == p.UserID
}

// CanAcknowledge allows only the employee the feedback is about.
func CanAcknowledge(p Principal, fb *db_models.Feedback) bool {
	return p.Role == db_models.RoleEmployee && fb.EmployeeID == p.UserID
}

// OwnsRequest reports whether the principal is the manager the
// request is addressed to.
func OwnsRequest(p Principal, req *db_models.FeedbackRequest) bool {
	return p.Role == db_models.RoleManager && req.ManagerID == p.UserID
}
