package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mccabemgmt/site/pkg/models"
	"github.com/mccabemgmt/site/pkg/services"
	"github.com/mccabemgmt/site/pkg/site"
)

var intentVariant string

var (
	artist models.ArtistSubmission
	venue  models.VenueEnquiry
)

var errMissingField = errors.New("missing required field")

var intentCmd = &cobra.Command{
	Use:   "intent",
	Short: "Print the mail link a contact form would open",
}

var artistIntentCmd = &cobra.Command{
	Use:   "artist",
	Short: "Mail link for an artist submission",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFields(cmd.Flags(), "name", "email"); err != nil {
			return err
		}
		svc, err := intentService()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), svc.ArtistIntent(artist))
		return nil
	},
}

var venueIntentCmd = &cobra.Command{
	Use:   "venue",
	Short: "Mail link for a venue enquiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFields(cmd.Flags(), "venue", "contact", "email"); err != nil {
			return err
		}
		svc, err := intentService()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), svc.VenueIntent(venue))
		return nil
	},
}

func init() {
	intentCmd.PersistentFlags().StringVar(&intentVariant, "variant", site.DefaultKey, "site variant whose inboxes receive the mail ("+strings.Join(site.Keys(), ", ")+")")

	af := artistIntentCmd.Flags()
	af.StringVar(&artist.Name, "name", "", "artist or band name")
	af.StringVar(&artist.Email, "email", "", "reply address")
	af.StringVar(&artist.Links, "links", "", "Spotify, YouTube, EPK links")
	af.StringVar(&artist.Availability, "availability", "", "when the artist can play")
	af.StringVar(&artist.Notes, "notes", "", "short intro, tech needs, set length")

	vf := venueIntentCmd.Flags()
	vf.StringVar(&venue.Venue, "venue", "", "venue name")
	vf.StringVar(&venue.Contact, "contact", "", "contact name")
	vf.StringVar(&venue.Email, "email", "", "reply address")
	vf.StringVar(&venue.Dates, "dates", "", "dates wanted")
	vf.StringVar(&venue.Budget, "budget", "", "budget")
	vf.StringVar(&venue.Notes, "notes", "", "room size, genres, set times")

	intentCmd.AddCommand(artistIntentCmd, venueIntentCmd)
	rootCmd.AddCommand(intentCmd)
}

func requireFields(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		if v, _ := flags.GetString(name); v == "" {
			return fmt.Errorf("%w: --%s", errMissingField, name)
		}
	}
	return nil
}

func intentService() (services.ContactIntentService, error) {
	variant, err := site.Lookup(intentVariant)
	if err != nil {
		return nil, err
	}
	return services.NewContactIntentService(variant, zerolog.Nop()), nil
}
