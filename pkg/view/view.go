// Package view holds the page's UI state and the navigation rules that act on
// it. Side effects go through an Adapter so the rules run without a browser.
package view

// Theme is the colour mode of the page
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Section ids present in the rendered document
const (
	SectionHome           = "home"
	SectionAbout          = "about"
	SectionContactArtists = "contact-artists"
	SectionContactVenues  = "contact-venues"
)

// Sections lists every section id in document order
var Sections = []string{SectionHome, SectionAbout, SectionContactArtists, SectionContactVenues}

// ParseTheme accepts "dark" or "light"
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), true
	}
	return "", false
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ToggleLabel is the text of the toggle button: the mode it switches to.
func (t Theme) ToggleLabel() string {
	if t == ThemeDark {
		return "Light"
	}
	return "Dark"
}

// Adapter performs the document side effects of the page
type Adapter interface {
	ScrollToSection(id string)
	SetTheme(mode Theme)
}

// State is owned by the top-level view and passed to the components
type State struct {
	Theme Theme
}

// Controller applies user actions to a State
type Controller struct {
	state    State
	adapter  Adapter
	sections map[string]struct{}
}

func NewController(state State, adapter Adapter, sections []string) *Controller {
	known := make(map[string]struct{}, len(sections))
	for _, id := range sections {
		known[id] = struct{}{}
	}
	if _, ok := ParseTheme(string(state.Theme)); !ok {
		state.Theme = ThemeDark
	}

	return &Controller{
		state:    state,
		adapter:  adapter,
		sections: known,
	}
}

func (c *Controller) State() State {
	return c.state
}

// ToggleTheme flips the theme and pushes it to the adapter
func (c *Controller) ToggleTheme() Theme {
	c.state.Theme = c.state.Theme.Toggle()
	c.adapter.SetTheme(c.state.Theme)
	return c.state.Theme
}

// Navigate scrolls to a known section. Unknown ids do nothing.
func (c *Controller) Navigate(id string) bool {
	if _, ok := c.sections[id]; !ok {
		return false
	}
	c.adapter.ScrollToSection(id)
	return true
}
