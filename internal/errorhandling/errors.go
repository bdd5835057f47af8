package errorhandling

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetriable marks an error worth another attempt.
var ErrRetriable = errors.New("retriable error")

const (
	attempts   = 3
	difference = 2 * time.Second
)

var initialDelay = time.Second

func isRetriable(err error) bool {
	return errors.Is(err, ErrRetriable)
}

// Retry calls f until it succeeds, returns a non-retriable error
// or the attempts are exhausted. Delays grow linearly between attempts.
func Retry(ctx context.Context, f func() error) error {
	var (
		try   int
		delay = initialDelay
		err   error
	)

	for try <= attempts {
		err = f()
		if err == nil {
			return nil
		}

		if !isRetriable(err) {
			return err
		}

		if try == attempts {
			break
		}

		timer := time.NewTimer(delay)

		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
			delay += difference
			try++
		}
	}

	return fmt.Errorf("%w: all retries failed", err)
}
