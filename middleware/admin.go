package middleware

import (
	"crypto/subtle"

	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const AdminAccessHeader = "X-Admin-Access"

// RequireAdmin gates the privileged endpoints: the caller must hold the admin
// role and present the fixed access header. Runs after AuthMiddleware.
func RequireAdmin(accessKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != model.RoleAdmin {
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		provided := c.GetHeader(AdminAccessHeader)
		if accessKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(accessKey)) != 1 {
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
