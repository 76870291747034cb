package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

func TestNotifier_Notify(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return []domain.Subscriber{
				{ID: 1, Email: "one@example.com"},
				{ID: 2, Email: "two@example.com"},
			}, nil
		},
	}
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, msg Message) (string, error) {
			return "msg-123", nil
		},
	}

	n := New(subscribers, sender)
	n.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	movies := []domain.Movie{
		{MovieID: "A1", Name: "Movie A", Variant: "IMAX", Category: "now-showing", Position: 1, Tag: "3D"},
		{MovieID: "B2", Name: "Movie B", Variant: "2D", Category: "coming-soon", Position: 2},
	}

	id, err := n.Notify(context.Background(), movies)
	require.NoError(t, err)
	assert.Equal(t, "msg-123", id)

	require.Len(t, sender.SendCalls(), 1)
	msg := sender.SendCalls()[0].Msg

	assert.Equal(t, []string{"one@example.com", "two@example.com"}, msg.To)
	assert.Equal(t, "2 new movie(s) added | Fri, 28 Aug 2026 10:00:00 UTC", msg.Subject)
	assert.Equal(t, "New movies added: Movie A, Movie B", msg.Text)

	// html body carries one row per movie, 1-indexed
	assert.Contains(t, msg.HTML, "New Movie Notification")
	assert.Contains(t, msg.HTML, "Movie A")
	assert.Contains(t, msg.HTML, "IMAX")
	assert.Contains(t, msg.HTML, "now-showing")
	assert.Contains(t, msg.HTML, "Movie B")
	assert.Contains(t, msg.HTML, "coming-soon")
}

func TestNotifier_Notify_EmptyBatch(t *testing.T) {
	subscribers := &SubscriberProviderMock{}
	sender := &SenderMock{}

	n := New(subscribers, sender)
	id, err := n.Notify(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, id)

	// nothing loaded, nothing sent
	assert.Empty(t, subscribers.GetSubscribersCalls())
	assert.Empty(t, sender.SendCalls())
}

func TestNotifier_Notify_NoSubscribers(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return nil, nil
		},
	}
	sender := &SenderMock{}

	n := New(subscribers, sender)
	id, err := n.Notify(context.Background(), []domain.Movie{{MovieID: "A1", Name: "Movie A"}})
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Empty(t, sender.SendCalls())
}

func TestNotifier_Notify_SubscriberLoadError(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return nil, errors.New("db down")
		},
	}
	sender := &SenderMock{}

	n := New(subscribers, sender)
	_, err := n.Notify(context.Background(), []domain.Movie{{MovieID: "A1", Name: "Movie A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load subscribers")
	assert.Empty(t, sender.SendCalls())
}

func TestNotifier_Notify_SendError(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return []domain.Subscriber{{ID: 1, Email: "one@example.com"}}, nil
		},
	}
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, msg Message) (string, error) {
			return "", errors.New("smtp timeout")
		},
	}

	n := New(subscribers, sender)
	_, err := n.Notify(context.Background(), []domain.Movie{{MovieID: "A1", Name: "Movie A"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send notification")
}

func TestNotifier_Notify_SanitizesFields(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return []domain.Subscriber{{ID: 1, Email: "one@example.com"}}, nil
		},
	}
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, msg Message) (string, error) {
			return "msg-1", nil
		},
	}

	n := New(subscribers, sender)
	movies := []domain.Movie{
		{MovieID: "A1", Name: `<script>alert("x")</script>Movie A`, Variant: "<b>IMAX</b>"},
	}

	_, err := n.Notify(context.Background(), movies)
	require.NoError(t, err)

	require.Len(t, sender.SendCalls(), 1)
	msg := sender.SendCalls()[0].Msg
	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "<b>")
	assert.Contains(t, msg.HTML, "Movie A")
	assert.Contains(t, msg.HTML, "IMAX")
}

func TestNotifier_Notify_EscapesSpecialCharactersOnce(t *testing.T) {
	subscribers := &SubscriberProviderMock{
		GetSubscribersFunc: func(ctx context.Context) ([]domain.Subscriber, error) {
			return []domain.Subscriber{{ID: 1, Email: "one@example.com"}}, nil
		},
	}
	sender := &SenderMock{
		SendFunc: func(ctx context.Context, msg Message) (string, error) {
			return "msg-1", nil
		},
	}

	n := New(subscribers, sender)
	movies := []domain.Movie{
		{MovieID: "A1", Name: "Fast & Furious", Variant: `3D <"deluxe">`},
	}

	_, err := n.Notify(context.Background(), movies)
	require.NoError(t, err)

	require.Len(t, sender.SendCalls(), 1)
	msg := sender.SendCalls()[0].Msg

	// plain-text body stays plain, no entities
	assert.Equal(t, "New movies added: Fast & Furious", msg.Text)

	// html body escapes exactly once
	assert.Contains(t, msg.HTML, "Fast &amp; Furious")
	assert.NotContains(t, msg.HTML, "&amp;amp;")
	assert.NotContains(t, msg.HTML, "&amp;lt;")
	assert.NotContains(t, msg.HTML, "&amp;#34;")
}
