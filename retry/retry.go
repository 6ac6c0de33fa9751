// Package retry is an opt-in helper for callers that want to retry API
// calls. The client's dispatch core never retries on its own; wrap the
// call site instead:
//
//	result, err := retry.Do(ctx, retry.DefaultConfig(), func(ctx context.Context) (*api.Result[account.Account], error) {
//		return accounts.Info(ctx)
//	})
//
// Only transport failures and HTTP 429/5xx outcomes are retried;
// business errors and other client errors are permanent.
package retry

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/yellinzero/funiqai-go/api"
)

// Config bounds the retry loop.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultConfig returns conservative defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     5 * time.Second,
	}
}

// Retryable reports whether an error is worth retrying: transport
// failures (no response at all) and HTTP 429 or 5xx. Business errors
// carry a semantic outcome and are never retried.
func Retryable(err error) bool {
	httpErr, ok := api.AsHttpError(err)
	if !ok {
		// no normalized outcome means the request never completed
		return true
	}
	if httpErr.Body != nil && httpErr.Body.Code != api.CodeOK {
		return false
	}
	return httpErr.Status == http.StatusTooManyRequests || httpErr.Status >= 500
}

// Do runs op under exponential backoff until it succeeds, fails with a
// permanent error, exhausts the retry budget, or ctx is done.
func Do[T any](ctx context.Context, cfg Config, op func(ctx context.Context) (T, error)) (T, error) {
	var last T

	expo := backoff.NewExponentialBackOff()
	if cfg.InitialInterval > 0 {
		expo.InitialInterval = cfg.InitialInterval
	}
	if cfg.MaxInterval > 0 {
		expo.MaxInterval = cfg.MaxInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, cfg.MaxRetries), ctx)

	err := backoff.Retry(func() error {
		v, err := op(ctx)
		if err != nil {
			if !Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		last = v
		return nil
	}, policy)

	return last, err
}
