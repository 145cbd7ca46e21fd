// Package protocol defines the message based interface between request
// handling apps and the transport serving them.
package protocol

// MessageType discriminates the messages exchanged between an App and the
// transport serving it.
type MessageType string

const (
	// TypeRequestBody is the inbound message carrying the request body.
	TypeRequestBody MessageType = "http.request"

	// TypeResponseStart is the outbound message carrying status and headers.
	TypeResponseStart MessageType = "http.response.start"

	// TypeResponseBody is the outbound message carrying the response body.
	TypeResponseBody MessageType = "http.response.body"
)

func (t MessageType) String() string {
	return string(t)
}

// Message is a single protocol message.
type Message interface {
	Type() MessageType
}

// Header is a single response header. Names and values are raw bytes and
// are written in the order they appear.
type Header struct {
	Name  []byte
	Value []byte
}

// NewHeader creates a header from string name and value.
func NewHeader(name, value string) Header {
	return Header{Name: []byte(name), Value: []byte(value)}
}

// ResponseStart opens a response. Exactly one ResponseStart is sent per
// request, before the body.
type ResponseStart struct {
	StatusCode int
	Headers    []Header
}

func (ResponseStart) Type() MessageType { return TypeResponseStart }

// ResponseBody carries the complete response body.
type ResponseBody struct {
	Body []byte
}

func (ResponseBody) Type() MessageType { return TypeResponseBody }

// RequestBody carries the complete request body.
type RequestBody struct {
	Body []byte
}

func (RequestBody) Type() MessageType { return TypeRequestBody }

var (
	_ Message = ResponseStart{}
	_ Message = ResponseBody{}
	_ Message = RequestBody{}
)
