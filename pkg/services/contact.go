package services

import (
	"github.com/rs/zerolog"

	"github.com/mccabemgmt/site/pkg/mailto"
	"github.com/mccabemgmt/site/pkg/models"
	"github.com/mccabemgmt/site/pkg/site"
	"github.com/mccabemgmt/site/pkg/utils"
)

// ContactIntentService turns contact form records into mail deep links
type ContactIntentService interface {
	ArtistIntent(sub models.ArtistSubmission) string
	VenueIntent(enq models.VenueEnquiry) string
}

type contactIntentServiceImpl struct {
	variant site.Variant
	logger  zerolog.Logger
}

// NewContactIntentService creates a service addressing the variant's inboxes
func NewContactIntentService(variant site.Variant, logger zerolog.Logger) ContactIntentService {
	return &contactIntentServiceImpl{
		variant: variant,
		logger:  logger.With().Str("component", "contact").Logger(),
	}
}

func (s *contactIntentServiceImpl) ArtistIntent(sub models.ArtistSubmission) string {
	uri := mailto.Build(s.variant.ArtistsEmail(), sub.Subject(), sub.Fields())
	s.logIntent("artist", sub.Email, uri)
	return uri
}

func (s *contactIntentServiceImpl) VenueIntent(enq models.VenueEnquiry) string {
	uri := mailto.Build(s.variant.BookingsEmail(), enq.Subject(), enq.Fields())
	s.logIntent("venue", enq.Email, uri)
	return uri
}

func (s *contactIntentServiceImpl) logIntent(form, email, uri string) {
	s.logger.Debug().
		Str("form", form).
		Str("sender", utils.Fingerprint(email)).
		Int("uri_len", len(uri)).
		Msg("Built mail intent")
}
