package retry_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yellinzero/funiqai-go/api"
	"github.com/yellinzero/funiqai-go/retry"
)

func fastConfig() retry.Config {
	return retry.Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func TestRetryable(t *testing.T) {
	// transport failures never produced a normalized outcome
	require.True(t, retry.Retryable(errors.New("connection refused")))

	require.True(t, retry.Retryable(&api.HttpError{Code: "500", Status: http.StatusInternalServerError}))
	require.True(t, retry.Retryable(&api.HttpError{Code: "429", Status: http.StatusTooManyRequests}))

	require.False(t, retry.Retryable(&api.HttpError{Code: "404", Status: http.StatusNotFound}))
	require.False(t, retry.Retryable(&api.HttpError{Code: "401", Status: http.StatusUnauthorized}))

	// a business outcome is permanent even on a 5xx status
	require.False(t, retry.Retryable(&api.HttpError{
		Code:   api.CodeInternalServerError,
		Status: http.StatusInternalServerError,
		Body:   &api.Envelope{Code: api.CodeInternalServerError},
	}))
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	result, err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", &api.HttpError{Code: "503", Status: http.StatusServiceUnavailable}
		}
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", result)
	require.Equal(t, 3, calls)
}

func TestDoStopsOnPermanentError(t *testing.T) {
	permanent := &api.HttpError{
		Code:   api.CodeAccountNotActive,
		Status: http.StatusOK,
		Body:   &api.Envelope{Code: api.CodeAccountNotActive},
	}

	calls := 0
	_, err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) (string, error) {
		calls++
		return "", permanent
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)

	httpErr, ok := api.AsHttpError(err)
	require.True(t, ok)
	require.True(t, httpErr.IsCode(api.CodeAccountNotActive))
}

func TestDoExhaustsRetryBudget(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), fastConfig(), func(ctx context.Context) (string, error) {
		calls++
		return "", &api.HttpError{Code: "500", Status: http.StatusInternalServerError}
	})
	require.Error(t, err)
	require.Equal(t, 4, calls) // initial attempt + MaxRetries
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := retry.Do(ctx, fastConfig(), func(ctx context.Context) (string, error) {
		calls++
		return "", &api.HttpError{Code: "500", Status: http.StatusInternalServerError}
	})
	require.Error(t, err)
	require.LessOrEqual(t, calls, 1)
}
