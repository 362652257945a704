package intents

import (
	"context"
	"fmt"
	"time"
)

const (
	DefaultPollTimeout  = 600 * time.Second
	DefaultPollInterval = 5 * time.Second
)

// PollOptions configures PollUntilComplete
type PollOptions struct {
	Memo           string
	Interval       time.Duration
	Timeout        time.Duration
	OnStatusChange func(*StatusResult)
}

// PollUntilComplete checks the status immediately and then every interval
// until the swap reaches a complete status, the timeout elapses or ctx is done.
// OnStatusChange only fires when the status differs from the last one seen.
// Unlike the payment controller, request errors end the poll.
func PollUntilComplete(ctx context.Context, client StatusClient, depositAddress string, opts PollOptions) (*StatusResult, error) {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultPollTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	var lastStatus ExecutionStatus
	for {
		status, err := client.GetStatus(ctx, depositAddress, opts.Memo)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
			}
			return nil, err
		}
		if status == nil {
			return nil, fmt.Errorf("empty status response")
		}

		if status.Status != lastStatus {
			lastStatus = status.Status
			if opts.OnStatusChange != nil {
				opts.OnStatusChange(status)
			}
		}

		if status.IsComplete {
			return status, nil
		}

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
