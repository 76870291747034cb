package domain

import "time"

// Subscriber represents one email address on the notification list
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}

// SubscribeOutcome reports the result of a subscription attempt
type SubscribeOutcome string

const (
	// SubscribeCreated means the address was added to the list
	SubscribeCreated SubscribeOutcome = "created"
	// SubscribeExists means the address was already on the list
	SubscribeExists SubscribeOutcome = "already-subscribed"
)
