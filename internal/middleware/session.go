package middleware

import (
	"net/http"
	"time"

	"premier-properties/internal/errors"
	"premier-properties/internal/repositories"
	"premier-properties/internal/services"
	"premier-properties/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "browser_session"

// SessionOptions configures the visitor cookie.
type SessionOptions struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

// SessionMiddleware attaches the visitor's session to the request, creating
// one (and its cookie) on first visit or after expiry.
func SessionMiddleware(repo repositories.SessionRepository, newSession func(id string) *services.Session, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var session *services.Session
		if id, err := c.Cookie(opts.CookieName); err == nil {
			if _, perr := uuid.Parse(id); perr == nil {
				session, _ = repo.Get(ctx, id)
			}
		}
		if session == nil {
			session = newSession(uuid.NewString())
			if err := repo.Save(ctx, session); err != nil {
				_ = c.Error(errors.NewAppError("failed to store session", errors.MsgInternalError,
					errors.ErrCodeInternal, http.StatusInternalServerError, err))
				c.Abort()
				return
			}
			logger.GlobalLogger.Debugf("New session: id=%s, client_ip=%s", session.ID(), c.ClientIP())
		}

		session.Touch(time.Now())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(opts.CookieName, session.ID(), int(opts.MaxAge.Seconds()), "/", "", opts.Secure, true)
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// CurrentSession returns the session attached by SessionMiddleware.
func CurrentSession(c *gin.Context) (*services.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*services.Session)
	return s, ok
}
