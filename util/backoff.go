// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

import (
	"context"
	"math"
	"time"
)

const (
	minBackoffDuration = 250 * time.Millisecond
	maxBackoffDuration = 5 * time.Second
	base               = 2.0
)

// GetExponentialBackoff returns a Duration that increases exponentially with
// the number of attempts.
func GetExponentialBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return minBackoffDuration
	}
	durationf := float64(minBackoffDuration) * math.Pow(base, float64(attempt))
	if durationf > math.MaxInt64 {
		return maxBackoffDuration
	}
	duration := time.Duration(durationf)
	if duration > maxBackoffDuration {
		return maxBackoffDuration
	}
	return duration
}

// WaitBackoff blocks for the backoff of the specified attempt, or until the context is done.
func WaitBackoff(ctx context.Context, attempt int) error {
	t := time.NewTimer(GetExponentialBackoff(attempt))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
