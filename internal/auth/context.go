package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxAdminUID   = "admin_uid"
	CtxAdminEmail = "admin_email"
)

// AdminUID returns the uid set by the admin guard, or "" when the guard is
// off or keyed by API key.
func AdminUID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxAdminUID))
}
