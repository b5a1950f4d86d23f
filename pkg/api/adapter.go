package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccabemgmt/site/pkg/view"
)

const (
	themeCookie = "theme"
	// one year
	themeCookieMaxAge = 365 * 24 * 60 * 60
)

// cookieAdapter carries view side effects over HTTP: the theme becomes a
// cookie and scrolling becomes a fragment on the redirect target.
type cookieAdapter struct {
	c       *gin.Context
	section string
}

func newCookieAdapter(c *gin.Context) *cookieAdapter {
	return &cookieAdapter{c: c}
}

func (a *cookieAdapter) ScrollToSection(id string) {
	a.section = id
}

func (a *cookieAdapter) SetTheme(mode view.Theme) {
	a.c.SetSameSite(http.SameSiteLaxMode)
	a.c.SetCookie(themeCookie, string(mode), themeCookieMaxAge, "/", "", false, true)
}

func (a *cookieAdapter) location() string {
	if a.section == "" {
		return "/"
	}
	return "/#" + a.section
}
