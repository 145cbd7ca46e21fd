package replica

import (
	"context"

	"github.com/lambda-feedback/replica/protocol"
)

var fastResponseBody = []byte("Fast async response")

// FastResponse emits a fixed plain text response as two messages: the
// response start, then the body. The body is only sent once the start was
// accepted. Send errors are returned as-is.
func FastResponse(
	ctx context.Context,
	_ protocol.Scope,
	_ protocol.Receiver,
	send protocol.Sender,
) error {
	err := send.Send(ctx, protocol.ResponseStart{
		StatusCode: 200,
		Headers: []protocol.Header{
			protocol.NewHeader("content-type", "text/plain"),
		},
	})
	if err != nil {
		return err
	}

	return send.Send(ctx, protocol.ResponseBody{
		Body: fastResponseBody,
	})
}

var _ protocol.App = FastResponse
