package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tableturnerr/dashboard-api/internal/session"
	appErrors "github.com/tableturnerr/dashboard-api/pkg/errors"
	"github.com/tableturnerr/dashboard-api/pkg/response"
)

// LoginPath is the navigation target for anonymous sessions.
const LoginPath = "/login"

type sessionStatus interface {
	Status() session.Status
}

// Guard gates protected routes on the process-wide session status. It reads
// the status exactly once per request and never retries or polls: an
// unresolved session answers 503 with a retry hint and no navigation, an
// anonymous session issues exactly one redirect to the login view, and an
// authenticated session lets the request through.
func Guard(sessions sessionStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch sessions.Status() {
		case session.StatusUnresolved:
			c.Header("Retry-After", "1")
			response.Error(c, appErrors.ErrSessionUnresolved)
			c.Abort()
		case session.StatusAnonymous:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}
