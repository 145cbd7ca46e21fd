// Package protocoltest provides utilities for testing protocol apps.
package protocoltest

import (
	"context"
	"sync"

	"github.com/lambda-feedback/replica/protocol"
)

// Recorder is a protocol.Sender that records every message it accepts.
type Recorder struct {
	mu       sync.Mutex
	messages []protocol.Message
	attempts int

	// FailAt makes the n-th send attempt (1-based) fail with Err.
	// Zero disables failures.
	FailAt int

	// Err is returned by the failing send attempt.
	Err error
}

var _ protocol.Sender = (*Recorder)(nil)

// NewRecorder returns a recorder that accepts every message.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewFailingRecorder returns a recorder that fails the n-th send with err.
func NewFailingRecorder(n int, err error) *Recorder {
	return &Recorder{FailAt: n, Err: err}
}

func (r *Recorder) Send(ctx context.Context, msg protocol.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts++

	if r.FailAt > 0 && r.attempts == r.FailAt {
		return r.Err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	r.messages = append(r.messages, msg)
	return nil
}

// Messages returns the accepted messages in send order.
func (r *Recorder) Messages() []protocol.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]protocol.Message(nil), r.messages...)
}

// Attempts returns the number of send attempts, including failed ones.
func (r *Recorder) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.attempts
}

// NopReceiver is a receiver that never yields a message.
var NopReceiver protocol.Receiver = protocol.ReceiveFunc(
	func(ctx context.Context) (protocol.Message, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	},
)
