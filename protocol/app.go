package protocol

import (
	"context"
	"net/http"
)

// Scope describes an inbound request. Apps may ignore it.
type Scope struct {
	// ID is a unique identifier assigned to the request by the transport
	ID string

	// Method is the upper-case http method
	Method string

	// Path is the unescaped request path
	Path string

	// Query is the raw query string, without the leading '?'
	Query string

	// Header holds the request headers
	Header http.Header

	// RemoteAddr is the network address of the client
	RemoteAddr string

	// Protocol is the http protocol version, e.g. HTTP/1.1
	Protocol string
}

// Sender accepts outbound messages, one at a time and in order. Send may
// block until the message is accepted or ctx is done.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Receiver yields inbound messages.
type Receiver interface {
	Receive(ctx context.Context) (Message, error)
}

// SendFunc adapts a function to the Sender interface.
type SendFunc func(ctx context.Context, msg Message) error

func (f SendFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// ReceiveFunc adapts a function to the Receiver interface.
type ReceiveFunc func(ctx context.Context) (Message, error)

func (f ReceiveFunc) Receive(ctx context.Context) (Message, error) {
	return f(ctx)
}

// App handles a single request by sending a response through send.
// Errors returned by send are returned to the transport unchanged.
type App func(ctx context.Context, scope Scope, receive Receiver, send Sender) error
