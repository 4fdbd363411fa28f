package handlers

import (
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "current_user"

// CurrentUser returns the operator resolved by the user middleware.
func CurrentUser(c *gin.Context) domain.CurrentUser {
	if v, ok := c.Get(CurrentUserKey); ok {
		if user, ok := v.(domain.CurrentUser); ok {
			return user
		}
	}
	return domain.CurrentUser{}
}
