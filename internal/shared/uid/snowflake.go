package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var _ UIDGenerator = (*Snowflake)(nil)

// Snowflake generates 64-bit ids unique across nodes with distinct node ids.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: create snowflake node %d: %w", nodeID, err)
	}
	return &Snowflake{node: node}, nil
}

// Generate never fails; node.Generate is already serialised internally.
func (g *Snowflake) Generate(context.Context) (string, error) {
	return g.node.Generate().String(), nil
}
