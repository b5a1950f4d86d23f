package models

import "github.com/mccabemgmt/site/pkg/mailto"

// ArtistSubmission represents the data coming from the artists contact form
type ArtistSubmission struct {
	Name         string `form:"name" json:"name" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required"`
	Links        string `form:"links" json:"links"`
	Availability string `form:"availability" json:"availability"`
	Notes        string `form:"notes" json:"notes"`
}

// Subject renders the subject line of the submission email
func (a ArtistSubmission) Subject() string {
	return "Artist submission: " + a.Name
}

// Fields returns the labelled values in the order they appear in the email body
func (a ArtistSubmission) Fields() []mailto.Field {
	return []mailto.Field{
		{Label: "Name", Value: a.Name},
		{Label: "Email", Value: a.Email},
		{Label: "Links", Value: a.Links},
		{Label: "Availability", Value: a.Availability},
		{Label: "Notes", Value: a.Notes},
	}
}

// VenueEnquiry represents the data coming from the venues contact form
type VenueEnquiry struct {
	Venue   string `form:"venue" json:"venue" binding:"required"`
	Contact string `form:"contact" json:"contact" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required"`
	Dates   string `form:"dates" json:"dates"`
	Budget  string `form:"budget" json:"budget"`
	Notes   string `form:"notes" json:"notes"`
}

func (v VenueEnquiry) Subject() string {
	return "Venue enquiry: " + v.Venue
}

func (v VenueEnquiry) Fields() []mailto.Field {
	return []mailto.Field{
		{Label: "Venue", Value: v.Venue},
		{Label: "Contact", Value: v.Contact},
		{Label: "Email", Value: v.Email},
		{Label: "Dates", Value: v.Dates},
		{Label: "Budget", Value: v.Budget},
		{Label: "Notes", Value: v.Notes},
	}
}

// IntentResponse is returned by the JSON intent endpoints
type IntentResponse struct {
	URI string `json:"uri"`
}
