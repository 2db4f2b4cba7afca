package id

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

var errNotInitialized = errors.New("snowflake node not initialized")

// Init initializes the Snowflake node with the given node ID.
// Only the first call has any effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// NewRequestID returns a time-ordered request id in base58.
// Entity ids come from the database; these only correlate logs and events.
func NewRequestID() (string, error) {
	if node == nil {
		return "", errNotInitialized
	}
	return node.Generate().Base58(), nil
}
