package protocol

import (
	"context"
	"errors"
	"sync"
)

var ErrChannelClosed = errors.New("channel closed")

// Channel is an unbuffered, in-memory conduit for messages. It implements
// both Sender and Receiver.
type Channel struct {
	messages chan Message
	done     chan struct{}
	once     sync.Once
}

var (
	_ Sender   = (*Channel)(nil)
	_ Receiver = (*Channel)(nil)
)

// NewChannel creates a new open channel.
func NewChannel() *Channel {
	return &Channel{
		messages: make(chan Message),
		done:     make(chan struct{}),
	}
}

// Send blocks until a receiver takes msg, the channel is closed, or ctx
// is done.
func (c *Channel) Send(ctx context.Context, msg Message) error {
	// a closed channel must never accept, even if a receiver is waiting
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}

	select {
	case c.messages <- msg:
		return nil
	case <-c.done:
		return ErrChannelClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive blocks until a message is sent, the channel is closed, or ctx
// is done.
func (c *Channel) Receive(ctx context.Context) (Message, error) {
	select {
	case msg := <-c.messages:
		return msg, nil
	case <-c.done:
		return nil, ErrChannelClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close closes the channel. Pending and future sends fail with
// ErrChannelClosed. Close is idempotent.
func (c *Channel) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}
