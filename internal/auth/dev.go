package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// DevIdentity trusts identity headers instead of verifying tokens. Only
// wired when AUTH_MODE=dev; never enable it in production.
func DevIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		fuid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if fuid == "" {
			fuid = "demo-user"
		}

		c.Set(CtxFirebaseUID, fuid)
		c.Set(CtxUserEmail, c.GetHeader("X-User-Email"))
		c.Set(CtxUserName, c.GetHeader("X-User-Name"))
		c.Set(CtxUserPhoto, c.GetHeader("X-User-Photo"))
		c.Next()
	}
}
