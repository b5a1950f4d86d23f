// Package mailto composes and parses mail deep links of the form
// mailto:<to>?subject=<subject>&body=<body>.
package mailto

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const scheme = "mailto:"

var (
	ErrNotMailto = errors.New("not a mailto link")
)

// Field is one labelled line of a message body
type Field struct {
	Label string
	Value string
}

// Message is the decoded content of a mail deep link
type Message struct {
	To      string
	Subject string
	Body    string
}

// Lines splits the body back into its newline-separated lines
func (m Message) Lines() []string {
	return strings.Split(m.Body, "\n")
}

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s with the same unreserved set as
// ECMAScript's encodeURIComponent.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Body renders fields as "Label: value" lines joined by newlines, in order.
func Body(fields []Field) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = f.Label + ": " + f.Value
	}
	return strings.Join(lines, "\n")
}

// Link builds the deep link. The recipient is used verbatim.
func Link(to, subject, body string) string {
	return scheme + to + "?subject=" + EncodeComponent(subject) + "&body=" + EncodeComponent(body)
}

// Build renders the body from fields and returns the deep link
func Build(to, subject string, fields []Field) string {
	return Link(to, subject, Body(fields))
}

// Parse decodes a deep link produced by Link. Unknown query keys are ignored.
func Parse(uri string) (Message, error) {
	if !strings.HasPrefix(uri, scheme) {
		return Message{}, ErrNotMailto
	}

	rest := strings.TrimPrefix(uri, scheme)
	to, rawQuery, _ := strings.Cut(rest, "?")

	msg := Message{To: to}
	if rawQuery == "" {
		return msg, nil
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		key, raw, _ := strings.Cut(pair, "=")
		value, err := url.PathUnescape(raw)
		if err != nil {
			return Message{}, fmt.Errorf("error decoding %s: %w", key, err)
		}

		switch strings.ToLower(key) {
		case "subject":
			msg.Subject = value
		case "body":
			msg.Body = value
		}
	}

	return msg, nil
}
