// Package site holds the content variants of the agency site. Both variants
// share one page structure; they differ only in the data below.
package site

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed variants.yaml
var variantsYAML []byte

var ErrUnknownVariant = errors.New("unknown site variant")

// DefaultKey is the variant served when none is configured
const DefaultKey = "management"

// Copy is the text of one contact section
type Copy struct {
	Intro       string `yaml:"intro"`
	Kicker      string `yaml:"kicker"`
	Heading     string `yaml:"heading"`
	Pitch       string `yaml:"pitch"`
	SubmitLabel string `yaml:"submit_label"`
}

// Variant is one deployable copy of the site
type Variant struct {
	Key          string `yaml:"key"`
	AgencyName   string `yaml:"agency_name"`
	City         string `yaml:"city"`
	Domain       string `yaml:"domain"`
	SubmitIcon   string `yaml:"submit_icon"`
	Tagline      string `yaml:"tagline"`
	About        string `yaml:"about"`
	Artists      Copy   `yaml:"artists"`
	Venues       Copy   `yaml:"venues"`
	InstagramURL string `yaml:"instagram_url"`
	WebsiteURL   string `yaml:"website_url"`
}

func (v Variant) HelloEmail() string    { return "hello@" + v.Domain }
func (v Variant) ArtistsEmail() string  { return "artists@" + v.Domain }
func (v Variant) BookingsEmail() string { return "bookings@" + v.Domain }

// Load decodes a list of variants
func Load(data []byte) ([]Variant, error) {
	var variants []Variant
	if err := yaml.Unmarshal(data, &variants); err != nil {
		return nil, fmt.Errorf("error parsing variants: %w", err)
	}

	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		if v.Key == "" || v.Domain == "" {
			return nil, fmt.Errorf("variant %q: key and domain are required", v.Key)
		}
		if seen[v.Key] {
			return nil, fmt.Errorf("variant %q defined twice", v.Key)
		}
		seen[v.Key] = true
	}

	return variants, nil
}

// All returns the embedded variants in file order
func All() []Variant {
	variants, err := Load(variantsYAML)
	if err != nil {
		panic(err)
	}
	return variants
}

// Keys lists the embedded variant keys
func Keys() []string {
	variants := All()
	keys := make([]string, len(variants))
	for i, v := range variants {
		keys[i] = v.Key
	}
	return keys
}

// Lookup finds an embedded variant by key
func Lookup(key string) (Variant, error) {
	for _, v := range All() {
		if v.Key == key {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, key)
}
