// File: internal/common/context_helpers.go
package common

import (
	"github.com/gin-gonic/gin"
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. Returns 0 if the request carries no authenticated user.
func GetUserIDFromContext(c *gin.Context) int64 {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0
	}
	userID, ok := val.(int64)
	if !ok {
		return 0
	}
	return userID
}
