package retry

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation = "23505"
	pqQueryCanceled   = "57014"
)

// Storage classifies errors from the Postgres collaborator. Resource
// exhaustion (class 53, "too many connections" included), admin-initiated
// shutdowns (class 57 except query_canceled, which is retried too), and
// connection-level failures (class 08) are transient. Constraint violations
// and permission errors are terminal.
func Storage(err error) Class {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", "53":
			return ClassRetryable
		}
		if string(pqErr.Code) == pqQueryCanceled {
			return ClassRetryable
		}
		return ClassTerminal
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ClassRetryable
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return ClassRetryable
	}

	return ClassTerminal
}
