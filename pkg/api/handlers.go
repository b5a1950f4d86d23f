package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mccabemgmt/site/pkg/components"
	"github.com/mccabemgmt/site/pkg/models"
	"github.com/mccabemgmt/site/pkg/services"
	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/view"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	intentService services.ContactIntentService
	variant       site.Variant
	defaultTheme  view.Theme
	logger        zerolog.Logger
	now           func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(intentService services.ContactIntentService, variant site.Variant, defaultTheme view.Theme, logger zerolog.Logger) *Handlers {
	if _, ok := view.ParseTheme(string(defaultTheme)); !ok {
		defaultTheme = view.ThemeDark
	}

	return &Handlers{
		intentService: intentService,
		variant:       variant,
		defaultTheme:  defaultTheme,
		logger:        logger,
		now:           time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the whole site with the visitor's theme
func (h *Handlers) LandingPage(c *gin.Context) {
	state := view.State{Theme: h.themeFromRequest(c)}
	page := components.LandingPage(h.variant, state, h.now().Year())

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Error().Err(err).Msg("Error rendering landing page")
	}
}

// SubmitArtist answers the artists form with a redirect to the mail intent
func (h *Handlers) SubmitArtist(c *gin.Context) {
	var sub models.ArtistSubmission
	if !h.bind(c, &sub) {
		return
	}
	c.Redirect(http.StatusSeeOther, h.intentService.ArtistIntent(sub))
}

// SubmitVenue answers the venues form with a redirect to the mail intent
func (h *Handlers) SubmitVenue(c *gin.Context) {
	var enq models.VenueEnquiry
	if !h.bind(c, &enq) {
		return
	}
	c.Redirect(http.StatusSeeOther, h.intentService.VenueIntent(enq))
}

// ArtistIntent returns the artists mail intent as JSON
func (h *Handlers) ArtistIntent(c *gin.Context) {
	var sub models.ArtistSubmission
	if !h.bind(c, &sub) {
		return
	}
	c.JSON(http.StatusOK, models.IntentResponse{URI: h.intentService.ArtistIntent(sub)})
}

// VenueIntent returns the venues mail intent as JSON
func (h *Handlers) VenueIntent(c *gin.Context) {
	var enq models.VenueEnquiry
	if !h.bind(c, &enq) {
		return
	}
	c.JSON(http.StatusOK, models.IntentResponse{URI: h.intentService.VenueIntent(enq)})
}

// ToggleTheme flips the visitor's theme and sends them back to the page
func (h *Handlers) ToggleTheme(c *gin.Context) {
	adapter := newCookieAdapter(c)
	ctrl := view.NewController(view.State{Theme: h.themeFromRequest(c)}, adapter, view.Sections)
	ctrl.ToggleTheme()

	c.Redirect(http.StatusSeeOther, adapter.location())
}

// NavigateSection redirects to a section anchor. Unknown sections get 204 so
// the browser stays where it is.
func (h *Handlers) NavigateSection(c *gin.Context) {
	adapter := newCookieAdapter(c)
	ctrl := view.NewController(view.State{Theme: h.themeFromRequest(c)}, adapter, view.Sections)

	if !ctrl.Navigate(c.Param("section")) {
		c.Status(http.StatusNoContent)
		return
	}

	c.Redirect(http.StatusSeeOther, adapter.location())
}

// bind decodes the form or JSON body. The browser enforces required fields,
// so a failure here means a hand-crafted request.
func (h *Handlers) bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		h.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected contact request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return false
	}
	return true
}

func (h *Handlers) themeFromRequest(c *gin.Context) view.Theme {
	if raw, err := c.Cookie(themeCookie); err == nil {
		if theme, ok := view.ParseTheme(raw); ok {
			return theme
		}
	}
	return h.defaultTheme
}
