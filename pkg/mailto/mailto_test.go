package mailto

import (
	"net/url"
	"strings"
	"testing"
	"unicode"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "JaneDoe", "JaneDoe"},
		{"space", "Jane Doe", "Jane%20Doe"},
		{"unreserved marks", "-_.!~*'()", "-_.!~*'()"},
		{"reserved", "a&b?c=d/e#f+g", "a%26b%3Fc%3Dd%2Fe%23f%2Bg"},
		{"newline", "a\nb", "a%0Ab"},
		{"at sign", "jane@x.com", "jane%40x.com"},
		{"pound sign", "£200", "%C2%A3200"},
		{"percent", "100%", "100%25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeComponent(tt.in))
		})
	}
}

func TestBody(t *testing.T) {
	body := Body([]Field{
		{Label: "Name", Value: "Jane Doe"},
		{Label: "Links", Value: ""},
	})
	assert.Equal(t, "Name: Jane Doe\nLinks: ", body)
	assert.Equal(t, "", Body(nil))
}

func TestLink(t *testing.T) {
	link := Link("artists@example.com", "Hi there", "Name: A&B")
	assert.Equal(t, "mailto:artists@example.com?subject=Hi%20there&body=Name%3A%20A%26B", link)
}

func TestBuildParsesWithNetURL(t *testing.T) {
	link := Build("bookings@example.com", "Venue enquiry: The Hall", []Field{
		{Label: "Venue", Value: "The Hall"},
		{Label: "Budget", Value: "£200"},
	})

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "mailto", u.Scheme)
	assert.Equal(t, "bookings@example.com", u.Opaque)
	assert.Equal(t, "Venue: The Hall\nBudget: £200", u.Query().Get("body"))
}

func TestParse(t *testing.T) {
	msg, err := Parse("mailto:a@b.com?subject=S%20x&body=L1%0AL2&cc=ignored")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", msg.To)
	assert.Equal(t, "S x", msg.Subject)
	assert.Equal(t, []string{"L1", "L2"}, msg.Lines())

	msg, err = Parse("mailto:a@b.com")
	require.NoError(t, err)
	assert.Equal(t, Message{To: "a@b.com"}, msg)

	_, err = Parse("https://example.com")
	assert.ErrorIs(t, err, ErrNotMailto)

	_, err = Parse("mailto:a@b.com?body=%zz")
	assert.Error(t, err)
}

func TestRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("subject and body survive encoding", prop.ForAll(
		func(subject, body string) bool {
			msg, err := Parse(Link("x@y.com", subject, body))
			if err != nil {
				return false
			}
			return msg.To == "x@y.com" && msg.Subject == subject && msg.Body == body
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("encoded output has no reserved characters", prop.ForAll(
		func(s string) bool {
			return !strings.ContainsAny(EncodeComponent(s), "&?=# +\n/:")
		},
		gen.AnyString(),
	))

	properties.Property("body keeps one line per field in order", prop.ForAll(
		func(a, b, c string) bool {
			fields := []Field{{"A", a}, {"B", b}, {"C", c}}
			msg, err := Parse(Build("x@y.com", "s", fields))
			if err != nil {
				return false
			}
			lines := msg.Lines()
			if len(lines) != len(fields) {
				return false
			}
			for i, f := range fields {
				if lines[i] != f.Label+": "+f.Value {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.RegexMatch(`^[a-z&?= ]*$`),
		gen.UnicodeString(unicode.Latin),
	))

	properties.TestingRun(t)
}
