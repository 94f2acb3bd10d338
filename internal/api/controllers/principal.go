package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teampulse/internal/access"
)

// principalFromContext rebuilds the authenticated principal stored by
// the JWT middleware.
func principalFromContext(c *gin.Context) (access.Principal, error) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return access.Principal{}, errors.New("missing principal in context")
	}
	return access.Principal{
		UserID: userID,
		Role:   c.GetString("role"),
	}, nil
}
