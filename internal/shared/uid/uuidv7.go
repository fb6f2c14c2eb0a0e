package uid

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

var _ UIDGenerator = UUIDv7{}

// UUIDv7 generates time-ordered UUIDs.
type UUIDv7 struct{}

func NewUUIDv7() UUIDv7 {
	return UUIDv7{}
}

func (UUIDv7) Generate(context.Context) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: generate uuid v7: %w", err)
	}
	return id.String(), nil
}
