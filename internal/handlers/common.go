package handlers

import (
	"net/http"

	"premier-properties/internal/errors"
	"premier-properties/internal/middleware"
	"premier-properties/internal/services"

	"github.com/gin-gonic/gin"
)

func currentSession(c *gin.Context) (*services.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		_ = c.Error(errors.NewAppError("no session attached to request", errors.MsgInternalError,
			errors.ErrCodeInternal, http.StatusInternalServerError, nil))
	}
	return s, ok
}

// dispatch applies ev to the visitor's session and redirects back to the
// page, so a reload never repeats the action.
func dispatch(c *gin.Context, ev services.Event) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if err := s.Dispatch(c.Request.Context(), ev); err != nil {
		_ = c.Error(err)
		return
	}
	backToPage(c)
}

// ReturnCookie marks the GET that follows an action's redirect. A page
// request without it is a fresh page load.
const ReturnCookie = "pp_return"

func backToPage(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ReturnCookie, "1", 60, "/", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// returnedFromAction reports and consumes the mark left by backToPage.
func returnedFromAction(c *gin.Context) bool {
	if _, err := c.Cookie(ReturnCookie); err != nil {
		return false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ReturnCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	return true
}
