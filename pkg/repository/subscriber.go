package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/dewmyth/screenwatch/pkg/domain"
)

// SubscriberRepository handles the notification list
type SubscriberRepository struct {
	db *sqlx.DB
}

// subscriberSQL represents a subscriber for SQL operations
type subscriberSQL struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(database *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: database}
}

// Subscribe adds an email address to the notification list. The existence check
// runs against the subscribers table, and the unique constraint on email backs
// it up if two requests race.
func (r *SubscriberRepository) Subscribe(ctx context.Context, email string) (domain.SubscribeOutcome, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", fmt.Errorf("email is empty")
	}

	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM subscribers WHERE email = ?)", email)
	if err != nil {
		return "", fmt.Errorf("check subscriber exists: %w", err)
	}
	if exists {
		return domain.SubscribeExists, nil
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	err = retrier.Do(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO subscribers (email, created_at) VALUES (?, ?)", email, time.Now().UTC())
		if err != nil {
			if isLockError(err) {
				return err // repeater will retry this
			}
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				return &criticalError{err: errAlreadySubscribed}
			}
			return &criticalError{err: fmt.Errorf("create subscriber: %w", err)}
		}
		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), errAlreadySubscribed.Error()) {
			return domain.SubscribeExists, nil
		}
		return "", err
	}

	return domain.SubscribeCreated, nil
}

var errAlreadySubscribed = fmt.Errorf("email already subscribed")

// GetSubscribers returns the full notification list, oldest first
func (r *SubscriberRepository) GetSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var sqlSubs []subscriberSQL
	err := r.db.SelectContext(ctx, &sqlSubs, "SELECT * FROM subscribers ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("get subscribers: %w", err)
	}

	subs := make([]domain.Subscriber, 0, len(sqlSubs))
	for _, s := range sqlSubs {
		subs = append(subs, domain.Subscriber{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt})
	}
	return subs, nil
}
