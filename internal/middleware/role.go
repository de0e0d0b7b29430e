package middleware

import (
	"fmt"
	"net/http"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/domain/staff"
	"github.com/AyushiSrivastava11/VRV-Backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware gates a route to the listed roles. It must run after
// AuthMiddleware so the principal is present.
func RoleMiddleware(allowedRoles ...staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := Principal(c)
		if account == nil {
			utils.ErrorResponse(c, http.StatusForbidden, "Role not found in context")
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if account.Role == allowed {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden,
			fmt.Sprintf("Role (%s) is not allowed to access this resource", account.Role))
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RoleMiddleware(staff.RoleAdmin)
}
