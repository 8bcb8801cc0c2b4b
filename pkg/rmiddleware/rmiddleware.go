package rmiddleware

import (
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through only when the identity set by AuthMiddleware carries
// one of the required roles.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := common.IdentityFromContext(c)
		if id.Anonymous() {
			responses.Unauthorized(c, "")
			return
		}

		for _, role := range requiredRoles {
			if strings.EqualFold(id.Role, role) {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminMiddleware is a convenience middleware for admin-only access.
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(common.RoleAdmin)
}
