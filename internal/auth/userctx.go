package auth

import (
	"net/http"
	"strings"

	"github.com/canvashq/canvas-backend/internal/users"
	"github.com/gin-gonic/gin"
)

const (
	CtxFirebaseUID = "firebase_uid"
	CtxUserEmail   = "email"
	CtxUserName    = "display_name"
	CtxUserPhoto   = "photo_url"
	CtxUserDBID    = "user_db_id"
)

// WithUser resolves the authenticated identity (set by the firebase or dev
// middleware) to a users table row, creating it on first sight, and stores
// the database id for handlers.
func WithUser(userRepo *users.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		fuid := strings.TrimSpace(c.GetString(CtxFirebaseUID))
		if fuid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
			c.Abort()
			return
		}

		uid, err := userRepo.EnsureUser(c.Request.Context(), users.UpsertUser{
			FirebaseUID: fuid,
			Email:       c.GetString(CtxUserEmail),
			DisplayName: c.GetString(CtxUserName),
			PhotoURL:    c.GetString(CtxUserPhoto),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "ensure user: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(CtxUserDBID, uid)
		c.Next()
	}
}

// UserDBID returns the database id of the authenticated user, set by
// WithUser. Empty means the middleware did not run.
func UserDBID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserDBID))
}

// UserFirebaseUID returns the external identity of the authenticated user.
func UserFirebaseUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxFirebaseUID))
}
