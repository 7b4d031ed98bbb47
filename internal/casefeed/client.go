package casefeed

import "firportal/backend/internal/models"

// Client is the interface for one feed subscriber. It abstracts the
// underlying connection so the hub can manage subscribers uniformly
// and tests can plug in fakes.
type Client interface {
	// GetID returns the unique identifier of this connection.
	GetID() string
	// GetUserID returns the id of the officer behind the connection.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes events into.
	// It is a send-only channel.
	GetSendChannel() chan<- models.FIREvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's connection and channels.
	Close()
}
