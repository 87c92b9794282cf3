// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL, "test/0.1", zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGet_NonSuccessIsStatusError(t *testing.T) {
	for _, code := range []int{http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		}))

		_, err := Get(context.Background(), ts.Client(), ts.URL, "", zerolog.Nop())
		ts.Close()

		var se *StatusError
		require.True(t, errors.As(err, &se), "code %d", code)
		assert.Equal(t, code, se.StatusCode)
		assert.Contains(t, err.Error(), "returned HTTP")
	}
}

func TestGet_NoRetry(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "", zerolog.Nop())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "", zerolog.Nop())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGet_BadURL(t *testing.T) {
	_, err := Get(context.Background(), http.DefaultClient, "://bad", "", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating request")
}
