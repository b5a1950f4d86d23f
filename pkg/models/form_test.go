package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtistSubmissionFields(t *testing.T) {
	sub := ArtistSubmission{Name: "Jane Doe", Email: "jane@x.com", Notes: "hi"}

	labels := []string{}
	for _, f := range sub.Fields() {
		labels = append(labels, f.Label)
	}

	assert.Equal(t, []string{"Name", "Email", "Links", "Availability", "Notes"}, labels)
	assert.Equal(t, "hi", sub.Fields()[4].Value)
	assert.Equal(t, "Artist submission: Jane Doe", sub.Subject())
}

func TestVenueEnquiryFields(t *testing.T) {
	enq := VenueEnquiry{Venue: "The Hall", Contact: "Sam", Email: "sam@hall.com", Budget: "£200"}

	labels := []string{}
	for _, f := range enq.Fields() {
		labels = append(labels, f.Label)
	}

	assert.Equal(t, []string{"Venue", "Contact", "Email", "Dates", "Budget", "Notes"}, labels)
	assert.Equal(t, "£200", enq.Fields()[4].Value)
	assert.Equal(t, "Venue enquiry: The Hall", enq.Subject())
}
