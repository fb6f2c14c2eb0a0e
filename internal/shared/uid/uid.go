// Package uid generates the identifiers this service mints: gateway request
// ids and transaction ids (UUID v7) and broker message ids (Snowflake or UUID v7).
package uid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

type Options struct {
	Strategy Strategy

	// NodeID must be unique per running instance, 0-1023. Snowflake only.
	NodeID int64
}

// UIDGenerator is safe for concurrent use.
type UIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

// IsUUID reports whether id is a well-formed UUID, the format the gateway
// uses for request ids.
func IsUUID(id string) bool {
	return uuid.Validate(id) == nil
}
