package casefeed_test

import (
	"firportal/backend/internal/models"
)

type MockClient struct {
	id          string
	userID      string
	closed      bool
	RecvChannel chan models.FIREvent
}

func newMockClient(id, userID string, buffer int) *MockClient {
	return &MockClient{
		id:          id,
		userID:      userID,
		RecvChannel: make(chan models.FIREvent, buffer),
	}
}

func (c *MockClient) GetID() string {
	return c.id
}

func (c *MockClient) GetUserID() string {
	return c.userID
}

func (c *MockClient) GetSendChannel() chan<- models.FIREvent {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}
