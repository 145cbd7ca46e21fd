package replica

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lambda-feedback/replica/protocol"
	"github.com/lambda-feedback/replica/replica/schema"
)

// InfoMessage is the payload of the replica info endpoint.
type InfoMessage struct {
	Message string `json:"message"`
}

// NewInfoMessage creates the info payload for the given port.
func NewInfoMessage(port int) InfoMessage {
	return InfoMessage{
		Message: fmt.Sprintf("Replica on port %d", port),
	}
}

// NewInfo returns an app answering every request with the replica info
// payload for cfg.AdvertisedPort. The payload is encoded and validated
// once.
func NewInfo(cfg Config) (protocol.App, error) {
	if cfg.AdvertisedPort < 1 || cfg.AdvertisedPort > 65535 {
		return nil, fmt.Errorf("invalid advertised port: %d", cfg.AdvertisedPort)
	}

	body, err := json.Marshal(NewInfoMessage(cfg.AdvertisedPort))
	if err != nil {
		return nil, err
	}

	infoSchema, err := schema.NewInfoSchema()
	if err != nil {
		return nil, fmt.Errorf("error compiling info schema: %w", err)
	}

	if err := infoSchema.Validate(body); err != nil {
		return nil, fmt.Errorf("error validating info payload: %w", err)
	}

	return func(
		ctx context.Context,
		_ protocol.Scope,
		_ protocol.Receiver,
		send protocol.Sender,
	) error {
		return respond(ctx, send, "application/json", body)
	}, nil
}
