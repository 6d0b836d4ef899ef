package handlers

import (
	"strconv"

	"premier-properties/internal/errors"
	"premier-properties/internal/services"

	"github.com/gin-gonic/gin"
)

type DetailHandler struct{}

func NewDetailHandler() *DetailHandler {
	return &DetailHandler{}
}

func (h *DetailHandler) Close(c *gin.Context) {
	dispatch(c, services.CloseDetailEvent{})
}

func (h *DetailHandler) SelectPhoto(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		_ = c.Error(errors.NewInvalidParametersError("invalid photo index", err))
		return
	}
	dispatch(c, services.SelectPhotoEvent{Index: index})
}

func (h *DetailHandler) OpenContact(c *gin.Context) {
	dispatch(c, services.OpenContactEvent{})
}

func (h *DetailHandler) CloseContact(c *gin.Context) {
	dispatch(c, services.CloseContactEvent{})
}
