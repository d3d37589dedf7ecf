package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Node ids per process kind. Two processes sharing a node id can mint the
// same id in the same millisecond.
const (
	NodeServer int64 = 1
	NodeWorker int64 = 2
	NodeSeed   int64 = 3
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init configures the process-wide Snowflake node. Only the first call has effect.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
		if err != nil {
			err = fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
		}
	})
	return err
}

// New returns a time-ordered int64 id. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}
