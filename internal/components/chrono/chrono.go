package chrono

import (
	"context"
	"time"
)

// TimestampLayout matches the `datetime` strings served by worldtimeapi.org,
// ex. 2025-06-01T14:03:12.532118+00:00.
const TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// TimestampAPI is the interface that anything stamping records with the
// current time should use.
type TimestampAPI interface {
	// Timestamp returns the current UTC time as an ISO-8601 string.
	Timestamp(ctx context.Context) (string, error)
}

// StandardClock is an implementation of TimestampAPI using the local system
// clock.
type StandardClock struct {
	now func() time.Time
}

func NewStandardClock() StandardClock {
	return StandardClock{now: time.Now}
}

func (c StandardClock) Timestamp(ctx context.Context) (string, error) {
	now := c.now
	if now == nil {
		now = time.Now
	}
	return now().UTC().Format(TimestampLayout), nil
}
