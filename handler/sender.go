package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/lambda-feedback/replica/protocol"
)

var (
	ErrResponseNotStarted     = errors.New("response body sent before response start")
	ErrResponseAlreadyStarted = errors.New("response already started")
	ErrResponseComplete       = errors.New("response already complete")
	ErrUnknownMessage         = errors.New("unknown message")
)

type responseState int

const (
	stateIdle responseState = iota
	stateStarted
	stateComplete
)

// responseSender writes protocol messages to a http.ResponseWriter. It
// accepts exactly one ResponseStart followed by exactly one ResponseBody.
type responseSender struct {
	mu    sync.Mutex
	w     http.ResponseWriter
	state responseState
}

var _ protocol.Sender = (*responseSender)(nil)

func newResponseSender(w http.ResponseWriter) *responseSender {
	return &responseSender{w: w}
}

func (s *responseSender) Send(ctx context.Context, msg protocol.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	switch m := msg.(type) {
	case protocol.ResponseStart:
		return s.start(m)
	case protocol.ResponseBody:
		return s.body(m)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownMessage, msg)
	}
}

func (s *responseSender) start(msg protocol.ResponseStart) error {
	switch s.state {
	case stateStarted:
		return ErrResponseAlreadyStarted
	case stateComplete:
		return ErrResponseComplete
	}

	header := s.w.Header()
	for _, h := range msg.Headers {
		header.Add(string(h.Name), string(h.Value))
	}

	s.w.WriteHeader(msg.StatusCode)
	s.state = stateStarted

	return nil
}

func (s *responseSender) body(msg protocol.ResponseBody) error {
	switch s.state {
	case stateIdle:
		return ErrResponseNotStarted
	case stateComplete:
		return ErrResponseComplete
	}

	// the response counts as complete even if the write fails, a
	// partially written body cannot be retried
	s.state = stateComplete

	if _, err := s.w.Write(msg.Body); err != nil {
		return fmt.Errorf("error writing response body: %w", err)
	}

	return nil
}

func (s *responseSender) started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state != stateIdle
}

func (s *responseSender) complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == stateComplete
}

// bodyReceiver yields the request body as a single RequestBody message.
// Once the body was delivered, Receive blocks until ctx is done.
type bodyReceiver struct {
	mu   sync.Mutex
	body io.Reader
	read bool
}

var _ protocol.Receiver = (*bodyReceiver)(nil)

func newBodyReceiver(body io.Reader) *bodyReceiver {
	return &bodyReceiver{body: body}
}

func (r *bodyReceiver) Receive(ctx context.Context) (protocol.Message, error) {
	r.mu.Lock()

	if r.read || r.body == nil {
		r.mu.Unlock()
		<-ctx.Done()
		return nil, ctx.Err()
	}

	defer r.mu.Unlock()

	r.read = true

	data, err := io.ReadAll(r.body)
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}

	return protocol.RequestBody{Body: data}, nil
}
