package replica

import (
	"context"

	"github.com/lambda-feedback/replica/protocol"
)

// Health answers liveness probes.
func Health(
	ctx context.Context,
	_ protocol.Scope,
	_ protocol.Receiver,
	send protocol.Sender,
) error {
	return respond(ctx, send, "text/plain", []byte("OK\n"))
}

// respond sends a complete 200 response with the given content type.
func respond(ctx context.Context, send protocol.Sender, contentType string, body []byte) error {
	err := send.Send(ctx, protocol.ResponseStart{
		StatusCode: 200,
		Headers: []protocol.Header{
			protocol.NewHeader("content-type", contentType),
		},
	})
	if err != nil {
		return err
	}

	return send.Send(ctx, protocol.ResponseBody{Body: body})
}
