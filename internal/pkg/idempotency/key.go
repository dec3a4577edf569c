package idempotency

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewKey builds a key for one logical send attempt. Retries of the same
// attempt reuse the key so the storage layer can absorb a duplicate insert.
// Uniqueness only has to hold over the retry lifetime of a single send, so
// sender + wall clock + a random component is enough.
func NewKey(senderID string) string {
	return fmt.Sprintf("%s:%d:%s", senderID, time.Now().UnixNano(), uuid.NewString())
}
