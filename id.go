package finance

import (
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"
)

var idCounter atomic.Uint64

// NewID returns a new record identifier. It combines the current time, a
// session counter and a random tail, all in base36, so identifiers are unique
// within a session and do not collide across restarts.
func NewID() string {
	now := strconv.FormatInt(time.Now().UnixMilli(), 36)
	seq := strconv.FormatUint(idCounter.Add(1), 36)
	tail := strconv.FormatUint(uint64(rand.Uint32()), 36)
	return now + seq + tail
}
