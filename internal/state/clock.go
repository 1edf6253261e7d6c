package state

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource hands out shape ids. Ids are never reused.
type IDSource func() string

// NewID is the default IDSource: a random uuid per shape.
func NewID() string {
	return uuid.NewString()
}

// SequentialIDs returns an IDSource yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) IDSource {
	var n uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddUint64(&n, 1))
	}
}
