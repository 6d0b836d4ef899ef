package handlers

import (
	"premier-properties/internal/errors"
	"premier-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit sends the contact form. Field errors are kept on the form and shown
// after the redirect; only state violations surface as error pages.
func (h *ContactHandler) Submit(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		_ = c.Error(errors.NewInvalidParametersError("failed to bind contact form", err))
		return
	}

	s, ok := currentSession(c)
	if !ok {
		return
	}
	err := s.Dispatch(c.Request.Context(), services.SubmitContactEvent{Input: in})
	if err != nil && !errors.HasCode(err, errors.ErrCodeInvalidParameters) {
		_ = c.Error(err)
		return
	}
	backToPage(c)
}
