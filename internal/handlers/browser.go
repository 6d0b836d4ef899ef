package handlers

import (
	"net/http"
	"strconv"
	"time"

	"premier-properties/internal/errors"
	"premier-properties/internal/models"
	"premier-properties/internal/services"
	"premier-properties/internal/transformers"
	"premier-properties/internal/views"

	"github.com/gin-gonic/gin"
)

type BrowserHandler struct {
	cards   transformers.CardTransformer
	details transformers.DetailTransformer
	maps    transformers.MapTransformer
	now     func() time.Time
}

func NewBrowserHandler(cards transformers.CardTransformer, details transformers.DetailTransformer, maps transformers.MapTransformer) *BrowserHandler {
	return &BrowserHandler{cards: cards, details: details, maps: maps, now: time.Now}
}

// Page renders the listing browser. Returning from an action shows the
// session as the action left it; any other visit starts a fresh page load.
func (h *BrowserHandler) Page(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	if returnedFromAction(c) {
		s.Init(c.Request.Context())
	} else {
		s.Reload(c.Request.Context())
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, views.PageTemplate, views.NewPage(s.Snapshot(), h.cards, h.details, h.now().Year()))
}

func (h *BrowserHandler) ApplyFilters(c *gin.Context) {
	var in services.FilterInput
	if err := c.ShouldBind(&in); err != nil {
		_ = c.Error(errors.NewInvalidParametersError("failed to bind filter form", err))
		return
	}
	dispatch(c, services.ApplyFiltersEvent{Input: in})
}

func (h *BrowserHandler) ResetFilters(c *gin.Context) {
	dispatch(c, services.ResetFiltersEvent{})
}

func (h *BrowserHandler) SetViewMode(c *gin.Context) {
	dispatch(c, services.ToggleViewEvent{Mode: models.ViewMode(c.Param("mode"))})
}

func (h *BrowserHandler) SelectProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = c.Error(errors.NewInvalidParametersError("invalid property id "+strconv.Quote(c.Param("id")), err))
		return
	}
	dispatch(c, services.SelectPropertyEvent{PropertyID: id})
}

// MapView returns the marker set of the current results for the map widget.
func (h *BrowserHandler) MapView(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	s.Init(c.Request.Context())

	snap := s.Snapshot()
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, h.maps.ToMap(snap.Properties))
}
