package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mccabemgmt/site/pkg/components"
	"github.com/mccabemgmt/site/pkg/middleware"
)

// NewRouter registers every route on a fresh gin engine
func NewRouter(handlers *Handlers, corsOrigin string, logger zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	router.GET("/", handlers.LandingPage)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/go/:section", handlers.NavigateSection)
	router.POST("/theme", handlers.ToggleTheme)

	router.POST(components.ArtistsAction, handlers.SubmitArtist)
	router.POST(components.VenuesAction, handlers.SubmitVenue)

	intents := router.Group("/api/intents")
	intents.Use(middleware.CORS(corsOrigin))
	intents.POST("/artists", handlers.ArtistIntent)
	intents.POST("/venues", handlers.VenueIntent)
	intents.OPTIONS("/*any", func(*gin.Context) {})

	return router
}
