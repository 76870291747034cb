// Package notify renders and dispatches new-movie notifications to the
// subscriber list via a pluggable mail sender.
package notify

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

// mocks stay in this package, Message would cause an import cycle otherwise
//go:generate moq -out sender_moq.go -skip-ensure -fmt goimports . Sender
//go:generate moq -out subscribers_moq.go -skip-ensure -fmt goimports . SubscriberProvider

// Sender delivers a rendered message and reports the message id
type Sender interface {
	Send(ctx context.Context, msg Message) (messageID string, err error)
}

// SubscriberProvider supplies the current notification list
type SubscriberProvider interface {
	GetSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

// Message is a fully rendered notification ready for transport
type Message struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

// Notifier builds one notification per batch of new movies and sends it to all
// current subscribers at once
type Notifier struct {
	subscribers SubscriberProvider
	sender      Sender
	policy      *bluemonday.Policy
	now         func() time.Time
}

// New creates a notifier
func New(subscribers SubscriberProvider, sender Sender) *Notifier {
	return &Notifier{
		subscribers: subscribers,
		sender:      sender,
		policy:      bluemonday.StrictPolicy(),
		now:         time.Now,
	}
}

// movieRow is one rendered table row
type movieRow struct {
	N        int
	Name     string
	Variant  string
	Category string
	Position int
	Tag      string
}

var htmlTmpl = template.Must(template.New("notification").Parse(`
<div style="font-family: Arial, sans-serif; color: #333;">
  <h2 style="color: #4CAF50;">New Movie Notification</h2>
  <p>The following movie(s) have just been added:</p>
  <table style="border-collapse: collapse; width: 100%; margin-top: 10px;">
    <thead>
      <tr style="background-color: #f2f2f2;">
        <th style="padding: 8px; border: 1px solid #ddd;">#</th>
        <th style="padding: 8px; border: 1px solid #ddd;">Name</th>
        <th style="padding: 8px; border: 1px solid #ddd;">Variant</th>
        <th style="padding: 8px; border: 1px solid #ddd;">Category</th>
        <th style="padding: 8px; border: 1px solid #ddd;">Position</th>
        <th style="padding: 8px; border: 1px solid #ddd;">Tag</th>
      </tr>
    </thead>
    <tbody>
    {{- range . }}
      <tr>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .N }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .Name }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .Variant }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .Category }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .Position }}</td>
        <td style="padding: 8px; border: 1px solid #ddd;">{{ .Tag }}</td>
      </tr>
    {{- end }}
    </tbody>
  </table>
</div>
`))

// Notify sends a single notification covering the whole batch. An empty
// subscriber list is a no-op success, not an error. Transport failures are
// returned to the caller; persistence already done is never rolled back.
func (n *Notifier) Notify(ctx context.Context, movies []domain.Movie) (string, error) {
	if len(movies) == 0 {
		return "", nil
	}

	subs, err := n.subscribers.GetSubscribers(ctx)
	if err != nil {
		return "", fmt.Errorf("load subscribers: %w", err)
	}
	if len(subs) == 0 {
		lgr.Printf("[INFO] no subscribers, skipping notification for %d new movies", len(movies))
		return "", nil
	}

	to := make([]string, 0, len(subs))
	for _, s := range subs {
		to = append(to, s.Email)
	}

	htmlBody, err := n.renderHTML(movies)
	if err != nil {
		return "", fmt.Errorf("render notification: %w", err)
	}

	msg := Message{
		To:      to,
		Subject: fmt.Sprintf("%d new movie(s) added | %s", len(movies), n.now().UTC().Format(time.RFC1123)),
		Text:    n.renderText(movies),
		HTML:    htmlBody,
	}

	id, err := n.sender.Send(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("send notification: %w", err)
	}

	lgr.Printf("[INFO] notification %s sent to %d subscribers for %d new movies", id, len(to), len(movies))
	return id, nil
}

// renderHTML builds the tabular notification body with 1-indexed rows
func (n *Notifier) renderHTML(movies []domain.Movie) (string, error) {
	rows := make([]movieRow, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, movieRow{
			N:        i + 1,
			Name:     n.stripMarkup(m.Name),
			Variant:  n.stripMarkup(m.Variant),
			Category: n.stripMarkup(m.Category),
			Position: m.Position,
			Tag:      n.stripMarkup(m.Tag),
		})
	}

	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// stripMarkup drops any markup from a scraped value and returns plain text.
// bluemonday entity-escapes its output, so unescape here and let html/template
// escape exactly once at render time.
func (n *Notifier) stripMarkup(s string) string {
	return html.UnescapeString(n.policy.Sanitize(s))
}

// renderText builds the plain-text fallback body from the raw field values,
// no HTML escaping in a non-HTML body
func (n *Notifier) renderText(movies []domain.Movie) string {
	names := make([]string, 0, len(movies))
	for _, m := range movies {
		names = append(names, m.Name)
	}
	return "New movies added: " + strings.Join(names, ", ")
}
